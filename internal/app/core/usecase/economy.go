package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/pkg/keylock"
)

// SettingsLoader 重新載入設定用的函式
// 回傳新的經濟參數與快取 TTL
type SettingsLoader func() (Settings, time.Duration, error)

// Economy 帳務核心邏輯層
//
// 讀取順序: cache (未過期) → store 並回填 cache
// 寫入順序: store 先確認成功，才更新 cache (write-through)
// 同一帳戶的異動透過 keylock 序列化，避免並發 read-modify-write 互相覆蓋
type Economy struct {
	store  AccountStore
	cache  AccountCache
	events EventPublisher
	locks  *keylock.KeyLock
	logger *zap.Logger
	reload SettingsLoader

	mu       sync.RWMutex
	settings Settings
}

// NewEconomy 建立 Economy
//
// 參數:
//
//	store: AccountStore - 持久層 adapter
//	cache: AccountCache - 快取 adapter (停用快取時傳入 cache.Disabled)
//	events: EventPublisher - 事件發布 adapter，可為 nil
//	settings: Settings - 初始經濟參數
//	reload: SettingsLoader - ReloadSettings 使用的載入函式，可為 nil
//	logger: *zap.Logger
func NewEconomy(store AccountStore, cache AccountCache, events EventPublisher, settings Settings, reload SettingsLoader, logger *zap.Logger) *Economy {
	return &Economy{
		store:    store,
		cache:    cache,
		events:   events,
		locks:    keylock.New(0),
		logger:   logger,
		reload:   reload,
		settings: settings,
	}
}

// Start 啟動服務
func (e *Economy) Start(ctx context.Context) error {
	count, err := e.store.Count(ctx)
	if err != nil {
		return err
	}
	e.logger.Info("economy service started",
		zap.Int64("accounts", count),
		zap.String("starting_balance", e.Settings().StartingBalance.String()),
	)
	return nil
}

// Stop 停止服務並清空快取
func (e *Economy) Stop() {
	e.cache.Clear()
	e.logger.Info("economy service stopped")
}

// Settings 取得目前的參數快照
func (e *Economy) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// ReloadSettings 重新載入經濟參數並清空整個快取
// 舊參數下算出的快取餘額不可信任，必須全部丟棄
func (e *Economy) ReloadSettings() error {
	if e.reload == nil {
		return errors.New("no settings loader configured")
	}
	settings, ttl, err := e.reload()
	if err != nil {
		e.logger.Error("failed to reload settings", zap.Error(err))
		return err
	}

	e.mu.Lock()
	e.settings = settings
	e.mu.Unlock()

	e.cache.SetTTL(ttl)
	e.cache.Clear()
	e.logger.Info("economy settings reloaded, cache cleared")
	return nil
}

// HasAccount 帳戶是否存在
// 快取命中 (未過期) 直接回傳 true，否則問 store
func (e *Economy) HasAccount(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, domain.ErrEmptyAccountID
	}
	if _, ok := e.cache.Get(id); ok {
		return true, nil
	}
	exists, err := e.store.Exists(ctx, id)
	if err != nil {
		e.logger.Error("account existence check failed", zap.String("account_id", id), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CreateAccount 建立帳戶，初始餘額為設定的 starting balance
// 同一 id 只會建立一次，重複建立回傳 domain.ErrAccountAlreadyExists
func (e *Economy) CreateAccount(ctx context.Context, id, displayName string) (*domain.Account, error) {
	if id == "" {
		return nil, domain.ErrEmptyAccountID
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	exists, err := e.HasAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAccountAlreadyExists
	}

	account := domain.NewAccount(id, displayName, e.Settings().StartingBalance)
	if err := e.store.Create(ctx, account); err != nil {
		if !errors.Is(err, domain.ErrAccountAlreadyExists) {
			e.logger.Error("account creation failed", zap.String("account_id", id), zap.Error(err))
		}
		return nil, err
	}

	e.cache.Put(account.Clone())
	e.logger.Info("account created",
		zap.String("account_id", id),
		zap.String("display_name", displayName),
	)
	return account, nil
}

// GetAccount 取得帳戶記錄 (read-through)
func (e *Economy) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	if id == "" {
		return domain.Account{}, domain.ErrEmptyAccountID
	}
	return e.getAccount(ctx, id)
}

func (e *Economy) getAccount(ctx context.Context, id string) (domain.Account, error) {
	if cached, ok := e.cache.Get(id); ok {
		return cached, nil
	}

	account, err := e.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			e.logger.Error("account read failed", zap.String("account_id", id), zap.Error(err))
		}
		return domain.Account{}, err
	}

	e.cache.Put(account.Clone())
	return account.Clone(), nil
}

// GetBalance 取得餘額
// 帳戶不存在回傳 domain.ErrAccountNotFound，不會以 0 偽裝
func (e *Economy) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	account, err := e.GetAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// Has 餘額是否足以支付 amount
func (e *Economy) Has(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	balance, err := e.GetBalance(ctx, id)
	if err != nil {
		return false, err
	}
	return balance.GreaterThanOrEqual(amount), nil
}

// Withdraw 提款
// 負數金額在任何 I/O 前拒絕；餘額不足或低於下限時失敗且不留任何異動
func (e *Economy) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if id == "" {
		return decimal.Zero, domain.ErrEmptyAccountID
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	account, err := e.getAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if !account.HasBalance(amount) {
		return decimal.Zero, domain.ErrInsufficientBalance
	}

	newBalance := account.Balance.Sub(amount)
	if newBalance.LessThan(e.Settings().MinBalance) {
		return decimal.Zero, domain.ErrBalanceOutOfRange
	}

	if err := e.setBalance(ctx, id, newBalance); err != nil {
		return decimal.Zero, err
	}

	e.emit(ctx, domain.NewWithdrawEvent(id, amount, newBalance))
	return newBalance, nil
}

// Deposit 存款
// 負數金額在任何 I/O 前拒絕；超過餘額上限時失敗且不留任何異動
func (e *Economy) Deposit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if id == "" {
		return decimal.Zero, domain.ErrEmptyAccountID
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	account, err := e.getAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := account.Balance.Add(amount)
	if newBalance.GreaterThan(e.Settings().MaxBalance) {
		return decimal.Zero, domain.ErrBalanceOutOfRange
	}

	if err := e.setBalance(ctx, id, newBalance); err != nil {
		return decimal.Zero, err
	}

	e.emit(ctx, domain.NewDepositEvent(id, amount, newBalance))
	return newBalance, nil
}

// SetBalance 直接設定餘額 (管理用途)
func (e *Economy) SetBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	if id == "" {
		return domain.ErrEmptyAccountID
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	return e.setBalance(ctx, id, balance)
}

// setBalance 寫入新餘額，呼叫端需已持有該帳戶的 lock
// store 確認成功後才更新快取複本並刷新 TTL (write-through，不做 invalidate-and-reload)
func (e *Economy) setBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	settings := e.Settings()
	if !settings.InRange(balance) {
		return domain.ErrBalanceOutOfRange
	}

	now := time.Now().UTC()
	if err := e.store.UpdateBalance(ctx, id, balance, now); err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			e.logger.Error("balance update failed", zap.String("account_id", id), zap.Error(err))
		}
		return err
	}

	if cached, ok := e.cache.Get(id); ok {
		cached.Balance = balance
		cached.UpdatedAt = now
		e.cache.Put(cached)
	}
	return nil
}

// DeleteAccount 刪除帳戶，store 確認成功後淘汰快取項目
func (e *Economy) DeleteAccount(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrEmptyAccountID
	}

	unlock := e.locks.Lock(id)
	defer unlock()

	if err := e.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			e.logger.Error("account deletion failed", zap.String("account_id", id), zap.Error(err))
		}
		return err
	}

	e.cache.Invalidate(id)
	e.logger.Info("account deleted", zap.String("account_id", id))
	return nil
}

// GetAccountByName 以顯示名稱查詢 (不走快取)
func (e *Economy) GetAccountByName(ctx context.Context, name string) (domain.Account, error) {
	account, err := e.store.GetByName(ctx, name)
	if err != nil {
		return domain.Account{}, err
	}
	return account.Clone(), nil
}

// TopAccounts 餘額排行
// 聚合查詢直接委派給 store，per-key 快取對全體查詢沒有幫助
func (e *Economy) TopAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	return e.store.TopByBalance(ctx, limit)
}

// AccountsInRange 餘額區間查詢
func (e *Economy) AccountsInRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Account, error) {
	return e.store.ByBalanceRange(ctx, min, max)
}

// TotalAccounts 帳戶總數
func (e *Economy) TotalAccounts(ctx context.Context) (int64, error) {
	return e.store.Count(ctx)
}

// TotalValue 全體餘額總和 (儲存層彙總)
func (e *Economy) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	return e.store.SumBalances(ctx)
}

// CacheSize 目前快取項目數
func (e *Economy) CacheSize() int {
	return e.cache.Size()
}

// ClearCache 清空快取
func (e *Economy) ClearCache() {
	e.cache.Clear()
}

// FormatAmount 格式化金額 (純函式，無 I/O)
func (e *Economy) FormatAmount(v decimal.Decimal) string {
	return e.Settings().Format(v)
}

// emit 發布帳務事件
// 事件發布失敗不影響已完成的帳務異動，只記錄診斷
func (e *Economy) emit(ctx context.Context, ev domain.Event) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(ctx, ev); err != nil {
		e.logger.Warn("event publish failed",
			zap.String("event_type", ev.Type.String()),
			zap.String("account_id", ev.AccountID),
			zap.Error(err),
		)
	}
}
