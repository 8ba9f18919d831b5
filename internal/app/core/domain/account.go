package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 帳戶實體
// Balance 使用 decimal 避免浮點數誤差 (金額運算禁止使用 float64)
type Account struct {
	// ID: 帳戶唯一識別碼 (UUID 字串)，建立後不可變更
	ID string
	// DisplayName: 顯示名稱，僅供展示，不影響查詢正確性
	DisplayName string
	// Balance: 當前餘額
	Balance decimal.Decimal
	// CreatedAt, UpdatedAt: 建立 / 最後異動時間
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount 建立一個新帳戶，created/updated 設為當下時間
func NewAccount(id string, displayName string, balance decimal.Decimal) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:          id,
		DisplayName: displayName,
		Balance:     balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone 回傳帳戶的值複本
// Cache 層持有的是複本，外部修改回傳值不會影響快取內容
func (a *Account) Clone() Account {
	return *a
}

// HasBalance 餘額是否足夠
func (a *Account) HasBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
