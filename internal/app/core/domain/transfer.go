package domain

import "github.com/shopspring/decimal"

// TransferState 轉帳協議狀態機
//
// 成功路徑: Start → Withdrawn → Completed
// 入帳失敗: Start → Withdrawn → Compensating → Failed
// 前置檢查失敗或提款失敗: Rejected (未發生任何異動)
type TransferState uint8

const (
	TransferStateStart TransferState = iota
	TransferStateWithdrawn
	TransferStateCompensating
	TransferStateCompleted
	TransferStateFailed
	TransferStateRejected
)

func (s TransferState) String() string {
	switch s {
	case TransferStateStart:
		return "start"
	case TransferStateWithdrawn:
		return "withdrawn"
	case TransferStateCompensating:
		return "compensating"
	case TransferStateCompleted:
		return "completed"
	case TransferStateFailed:
		return "failed"
	case TransferStateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TransferResult 轉帳結果
// State 為 Compensating 且 Err 為 ErrCompensationFailed 時代表 double-fault，
// 資金已自轉出方扣除且無法自動回復
type TransferResult struct {
	FromID string
	ToID   string
	Amount decimal.Decimal
	State  TransferState
	Err    error
}

// Succeeded 轉帳是否完整完成
func (r TransferResult) Succeeded() bool {
	return r.State == TransferStateCompleted
}
