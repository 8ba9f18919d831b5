package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
)

// AccountStore 帳戶持久層介面
// 所有操作在單筆記錄層級各自原子；錯誤一律往上回報，不得吞掉換成預設值
type AccountStore interface {
	// Exists 帳戶是否存在
	Exists(ctx context.Context, id string) (bool, error)
	// Get 取得帳戶，不存在時回傳 domain.ErrAccountNotFound
	Get(ctx context.Context, id string) (*domain.Account, error)
	// GetByName 以顯示名稱查詢 (展示用途，不保證唯一)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	// Create 建立帳戶，已存在時回傳 domain.ErrAccountAlreadyExists
	Create(ctx context.Context, account *domain.Account) error
	// UpdateBalance 更新餘額與異動時間，不存在時回傳 domain.ErrAccountNotFound
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
	// Delete 刪除帳戶，不存在時回傳 domain.ErrAccountNotFound
	Delete(ctx context.Context, id string) error
	// TopByBalance 餘額由高到低，同額以 id 排序保持穩定
	TopByBalance(ctx context.Context, limit int) ([]domain.Account, error)
	// ByBalanceRange 餘額落在 [min, max] 的帳戶
	ByBalanceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Account, error)
	// Count 帳戶總數
	Count(ctx context.Context) (int64, error)
	// SumBalances 全體餘額總和 (由儲存層彙總，不載入全部記錄)
	SumBalances(ctx context.Context) (decimal.Decimal, error)
}

// AccountCache 帳戶快取介面
// 快取內容是值複本，永遠不是持久性的依據
type AccountCache interface {
	// Get 取得未過期的快取項目，過期項目視同不存在並就地淘汰
	Get(id string) (domain.Account, bool)
	// Put 寫入快取並重設該項目的插入時間
	Put(account domain.Account)
	// Invalidate 移除單一項目
	Invalidate(id string)
	// Clear 清空快取
	Clear()
	// Size 目前項目數
	Size() int
	// SetTTL 更新有效時間 (設定重載時使用)
	SetTTL(ttl time.Duration)
}

// EventPublisher 帳務事件發布介面
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
