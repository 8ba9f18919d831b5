package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType 事件類型
type EventType uint8

const (
	// 存款完成
	EventTypeDeposit EventType = 1
	// 提款完成
	EventTypeWithdraw EventType = 2
	// 轉帳完成
	EventTypeTransfer EventType = 3
)

func (t EventType) String() string {
	switch t {
	case EventTypeDeposit:
		return "deposit"
	case EventTypeWithdraw:
		return "withdraw"
	case EventTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Event 帳務事件
// 只在對應的 store 寫入確認成功後才發出，失敗的操作不產生事件
type Event struct {
	// EventID: 事件追蹤號 (UUID)
	EventID uuid.UUID
	// Type: 事件類型
	Type EventType
	// AccountID: 主要帳戶 (存款/提款帳戶，轉帳時為轉出方)
	AccountID string
	// ToAccountID: 轉帳時的轉入方，其餘類型為空
	ToAccountID string
	// Amount: 異動金額
	Amount decimal.Decimal
	// NewBalance: 異動後餘額 (轉帳事件不帶餘額)
	NewBalance decimal.Decimal
	// OccurredAt: 事件時間
	OccurredAt time.Time
}

// NewDepositEvent 建立存款事件
func NewDepositEvent(accountID string, amount, newBalance decimal.Decimal) Event {
	return Event{
		EventID:    uuid.New(),
		Type:       EventTypeDeposit,
		AccountID:  accountID,
		Amount:     amount,
		NewBalance: newBalance,
		OccurredAt: time.Now().UTC(),
	}
}

// NewWithdrawEvent 建立提款事件
func NewWithdrawEvent(accountID string, amount, newBalance decimal.Decimal) Event {
	return Event{
		EventID:    uuid.New(),
		Type:       EventTypeWithdraw,
		AccountID:  accountID,
		Amount:     amount,
		NewBalance: newBalance,
		OccurredAt: time.Now().UTC(),
	}
}

// NewTransferEvent 建立轉帳事件
func NewTransferEvent(fromID, toID string, amount decimal.Decimal) Event {
	return Event{
		EventID:     uuid.New(),
		Type:        EventTypeTransfer,
		AccountID:   fromID,
		ToAccountID: toID,
		Amount:      amount,
		OccurredAt:  time.Now().UTC(),
	}
}
