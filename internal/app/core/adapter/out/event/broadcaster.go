// Package event 提供帳務事件的發布 adapter
package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// Handler 行程內的事件處理函式
type Handler func(ev domain.Event)

// Broadcaster 行程內的事件派送
// 事件只會在帳務異動確認寫入後送達，handler 內的 panic 不得影響帳務流程
type Broadcaster struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *zap.Logger
}

func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{logger: logger}
}

// Subscribe 註冊 handler，在每個事件發布時被呼叫
func (b *Broadcaster) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish 同步把事件送給所有 handler
func (b *Broadcaster) Publish(ctx context.Context, ev domain.Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(h, ev)
	}
	return nil
}

func (b *Broadcaster) dispatch(h Handler, ev domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event_type", ev.Type.String()),
				zap.Any("panic", r),
			)
		}
	}()
	h(ev)
}

var _ usecase.EventPublisher = (*Broadcaster)(nil)
