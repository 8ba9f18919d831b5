package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/config"
)

var one = decimal.NewFromInt(1)

// Settings 經濟系統參數快照
// Economy 持有一份副本，ReloadSettings 時整份替換
type Settings struct {
	StartingBalance  decimal.Decimal
	MinBalance       decimal.Decimal
	MaxBalance       decimal.Decimal
	FractionalDigits int
	CurrencySingular string
	CurrencyPlural   string
}

// SettingsFromConfig 由設定檔區段建立 Settings
func SettingsFromConfig(cfg config.EconomyConfig) Settings {
	return Settings{
		StartingBalance:  decimal.NewFromFloat(cfg.StartingBalance),
		MinBalance:       decimal.NewFromFloat(cfg.MinBalance),
		MaxBalance:       decimal.NewFromFloat(cfg.MaxBalance),
		FractionalDigits: cfg.Digits(),
		CurrencySingular: cfg.CurrencySingular,
		CurrencyPlural:   cfg.CurrencyPlural,
	}
}

// InRange 餘額是否落在設定的上下限內
func (s Settings) InRange(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(s.MinBalance) && v.LessThanOrEqual(s.MaxBalance)
}

// Format 格式化金額
// 小數位數依 FractionalDigits (0 表示整數顯示)；幣別名稱在金額恰等於 1 時用單數
func (s Settings) Format(v decimal.Decimal) string {
	name := s.CurrencyPlural
	if v.Equal(one) {
		name = s.CurrencySingular
	}
	return v.StringFixed(int32(s.FractionalDigits)) + " " + name
}
