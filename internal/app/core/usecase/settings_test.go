package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

func TestFormatAmount(t *testing.T) {
	s := testSettings()

	cases := []struct {
		in   string
		want string
	}{
		{"1", "1.00 MagCoin"},
		{"1.00", "1.00 MagCoin"},
		{"0", "0.00 MagCoins"},
		{"1.5", "1.50 MagCoins"},
		{"1234.567", "1234.57 MagCoins"},
		{"-3", "-3.00 MagCoins"},
	}
	for _, c := range cases {
		v, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("NewFromString(%s): %v", c.in, err)
		}
		if got := s.Format(v); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatIntegerDisplay(t *testing.T) {
	s := testSettings()
	s.FractionalDigits = 0

	if got := s.Format(decimal.NewFromInt(1)); got != "1 MagCoin" {
		t.Errorf("Format(1) = %q, want %q", got, "1 MagCoin")
	}
	if got := s.Format(decimal.NewFromFloat(2.4)); got != "2 MagCoins" {
		t.Errorf("Format(2.4) = %q, want %q", got, "2 MagCoins")
	}
}

func TestInRange(t *testing.T) {
	s := usecase.Settings{
		MinBalance: decimal.Zero,
		MaxBalance: decimal.NewFromInt(100),
	}

	for _, v := range []int64{0, 1, 100} {
		if !s.InRange(decimal.NewFromInt(v)) {
			t.Errorf("InRange(%d) = false, want true", v)
		}
	}
	for _, v := range []int64{-1, 101} {
		if s.InRange(decimal.NewFromInt(v)) {
			t.Errorf("InRange(%d) = true, want false", v)
		}
	}
}
