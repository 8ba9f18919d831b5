// Package syncapi 提供同步阻塞式的門面，給不方便處理 context 與 error 的呼叫端
// (例如外掛橋接層) 使用。每個呼叫有獨立的超時；超時或失敗一律回傳安全預設值
// (false / 零值)，絕不憑空回報成功。
package syncapi

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

const defaultTimeout = 5 * time.Second

type SyncAPI struct {
	economy  *usecase.Economy
	transfer *usecase.TransferCoordinator
	timeout  time.Duration
	logger   *zap.Logger
}

func New(economy *usecase.Economy, transfer *usecase.TransferCoordinator, timeout time.Duration, logger *zap.Logger) *SyncAPI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SyncAPI{
		economy:  economy,
		transfer: transfer,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *SyncAPI) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// HasAccount 帳戶是否存在，查詢失敗視為不存在
func (s *SyncAPI) HasAccount(id string) bool {
	ctx, cancel := s.ctx()
	defer cancel()

	ok, err := s.economy.HasAccount(ctx, id)
	if err != nil {
		s.logger.Warn("sync HasAccount failed", zap.String("account_id", id), zap.Error(err))
		return false
	}
	return ok
}

// CreateAccount 建立帳戶，回傳是否成功
func (s *SyncAPI) CreateAccount(id, displayName string) bool {
	ctx, cancel := s.ctx()
	defer cancel()

	if _, err := s.economy.CreateAccount(ctx, id, displayName); err != nil {
		s.logger.Warn("sync CreateAccount failed", zap.String("account_id", id), zap.Error(err))
		return false
	}
	return true
}

// GetBalance 查詢餘額，帳戶不存在或失敗時回傳零
func (s *SyncAPI) GetBalance(id string) decimal.Decimal {
	ctx, cancel := s.ctx()
	defer cancel()

	balance, err := s.economy.GetBalance(ctx, id)
	if err != nil {
		return decimal.Zero
	}
	return balance
}

// Has 餘額是否足以支付 amount
func (s *SyncAPI) Has(id string, amount decimal.Decimal) bool {
	ctx, cancel := s.ctx()
	defer cancel()

	ok, err := s.economy.Has(ctx, id, amount)
	if err != nil {
		return false
	}
	return ok
}

// Deposit 存款，回傳 (交易後餘額, 是否成功)
func (s *SyncAPI) Deposit(id string, amount decimal.Decimal) (decimal.Decimal, bool) {
	ctx, cancel := s.ctx()
	defer cancel()

	balance, err := s.economy.Deposit(ctx, id, amount)
	if err != nil {
		return decimal.Zero, false
	}
	return balance, true
}

// Withdraw 提款，回傳 (交易後餘額, 是否成功)
func (s *SyncAPI) Withdraw(id string, amount decimal.Decimal) (decimal.Decimal, bool) {
	ctx, cancel := s.ctx()
	defer cancel()

	balance, err := s.economy.Withdraw(ctx, id, amount)
	if err != nil {
		return decimal.Zero, false
	}
	return balance, true
}

// SetBalance 直接設定餘額
func (s *SyncAPI) SetBalance(id string, balance decimal.Decimal) bool {
	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.economy.SetBalance(ctx, id, balance); err != nil {
		return false
	}
	return true
}

// Transfer 轉帳，超時視為失敗 (實際異動仍以儲存層為準)
func (s *SyncAPI) Transfer(fromID, toID string, amount decimal.Decimal) bool {
	ctx, cancel := s.ctx()
	defer cancel()

	result, err := s.transfer.Transfer(ctx, fromID, toID, amount)
	if err != nil {
		if usecase.IsDoubleFault(err) {
			s.logger.Error("sync Transfer compensation failed",
				zap.String("from_account_id", fromID),
				zap.String("to_account_id", toID),
				zap.String("amount", amount.String()),
			)
		}
		return false
	}
	return result.Succeeded()
}

// FormatAmount 依目前設定格式化金額
func (s *SyncAPI) FormatAmount(v decimal.Decimal) string {
	return s.economy.FormatAmount(v)
}
