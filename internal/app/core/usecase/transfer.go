package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
)

// TransferCoordinator 兩段式轉帳協議
//
// 1. 自轉出方提款；失敗 → Rejected，沒有任何異動
// 2. 向轉入方存款；成功 → Completed 並發出轉帳事件
// 3. 入帳失敗 → Compensating: 把金額補回轉出方
//   - 補償成功 → Failed (轉帳沒有發生，資金完好)
//   - 補償失敗 → double-fault: 資金已扣除且無法自動回復，以最高嚴重度記錄
//
// 單一故障下保證「不轉」或「全轉」；兩帳戶同時被其他呼叫端操作時不保證原子性，
// 步驟之間行程當掉也無法回復 (轉帳本身沒有 WAL，只有每筆餘額寫入的持久化)
type TransferCoordinator struct {
	economy *Economy
	logger  *zap.Logger
}

// NewTransferCoordinator 建立轉帳協調器
func NewTransferCoordinator(economy *Economy, logger *zap.Logger) *TransferCoordinator {
	return &TransferCoordinator{
		economy: economy,
		logger:  logger,
	}
}

// Transfer 轉帳
//
// 回傳:
//
//	domain.TransferResult: 終局狀態與失敗原因
//	error: 與 result.Err 相同，方便呼叫端直接判斷
func (t *TransferCoordinator) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (domain.TransferResult, error) {
	result := domain.TransferResult{
		FromID: fromID,
		ToID:   toID,
		Amount: amount,
		State:  domain.TransferStateStart,
	}

	// 前置檢查，任何失敗都在 I/O 之前拒絕
	if !amount.IsPositive() {
		return t.reject(result, domain.ErrAmountMustBePositive)
	}
	if fromID == "" || toID == "" {
		return t.reject(result, domain.ErrEmptyAccountID)
	}
	if fromID == toID {
		return t.reject(result, domain.ErrSameAccountTransfer)
	}

	// Step 1: 提款
	if _, err := t.economy.Withdraw(ctx, fromID, amount); err != nil {
		return t.reject(result, err)
	}
	result.State = domain.TransferStateWithdrawn

	// Step 2: 入帳
	if _, err := t.economy.Deposit(ctx, toID, amount); err != nil {
		return t.compensate(ctx, result, err)
	}

	result.State = domain.TransferStateCompleted
	t.economy.emit(ctx, domain.NewTransferEvent(fromID, toID, amount))
	return result, nil
}

func (t *TransferCoordinator) reject(result domain.TransferResult, err error) (domain.TransferResult, error) {
	result.State = domain.TransferStateRejected
	result.Err = err
	return result, err
}

// compensate 入帳失敗後把金額補回轉出方
func (t *TransferCoordinator) compensate(ctx context.Context, result domain.TransferResult, cause error) (domain.TransferResult, error) {
	result.State = domain.TransferStateCompensating

	if _, rbErr := t.economy.Deposit(ctx, result.FromID, result.Amount); rbErr != nil {
		// double-fault: 轉出方已扣款、轉入方未入帳、回補也失敗
		// 這不是普通的操作失敗，需要人工介入，來源帳戶與金額必須留在記錄裡
		t.logger.Error("transfer compensation failed, funds unrecoverable",
			zap.String("from_account_id", result.FromID),
			zap.String("to_account_id", result.ToID),
			zap.String("amount", result.Amount.String()),
			zap.NamedError("deposit_error", cause),
			zap.NamedError("compensation_error", rbErr),
		)
		result.Err = domain.ErrCompensationFailed
		return result, domain.ErrCompensationFailed
	}

	result.State = domain.TransferStateFailed
	result.Err = cause
	t.logger.Warn("transfer failed, compensation applied",
		zap.String("from_account_id", result.FromID),
		zap.String("to_account_id", result.ToID),
		zap.String("amount", result.Amount.String()),
		zap.Error(cause),
	)
	return result, cause
}

// IsDoubleFault 判斷錯誤是否為補償失敗
func IsDoubleFault(err error) bool {
	return errors.Is(err, domain.ErrCompensationFailed)
}
