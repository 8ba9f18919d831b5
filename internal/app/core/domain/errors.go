package domain

import "errors"

var (
	// ErrNegativeAmount 金額不可為負數
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrAmountMustBePositive 金額必須為正數 (轉帳用)
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrBalanceOutOfRange 餘額超出設定的上下限
	ErrBalanceOutOfRange = errors.New("balance out of configured range")

	// ErrSameAccountTransfer 轉入轉出帳戶不可相同
	ErrSameAccountTransfer = errors.New("source and destination must differ")

	// ErrEmptyAccountID 帳戶 ID 不可為空
	ErrEmptyAccountID = errors.New("account id must not be empty")

	// ErrCompensationFailed 補償入帳失敗 (double-fault)
	// 提款已生效但回補失敗，資金處於不一致狀態，需人工介入
	ErrCompensationFailed = errors.New("transfer compensation failed: manual intervention required")
)
