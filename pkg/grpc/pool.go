// Package grpc 提供共用的 gRPC 客戶端連線池
package grpc

import (
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Pool 管理通往多個目標的 gRPC 客戶端連線
// 執行緒安全，每個目標地址只維護一個連線實例
type Pool struct {
	conns sync.Map // map[string]*grpc.ClientConn
	mu    sync.Mutex
}

// NewPool 建立連線池
func NewPool() *Pool {
	return &Pool{}
}

// Get 取得現有連線，或為指定目標建立新連線
// 內部服務通訊走私有網路，預設不加密
func (p *Pool) Get(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	// Fast path: 既有連線仍可用就直接回傳
	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	// Double-check locking，避免並發重複建立
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	defaultOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
	}
	finalOpts := append(defaultOpts, opts...)

	// grpc.NewClient 建立的是 lazy connection，真正連線發生在第一次呼叫
	conn, err := grpc.NewClient(target, finalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client for target %s: %w", target, err)
	}

	p.conns.Store(target, conn)
	return conn, nil
}

// Close 關閉池中所有連線，回傳第一個發生的錯誤
func (p *Pool) Close() error {
	var firstErr error
	p.conns.Range(func(key, value any) bool {
		conn := value.(*grpc.ClientConn)
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conns.Delete(key)
		return true
	})
	return firstErr
}
