package syncapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/in/syncapi"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/cache"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

func testSettings() usecase.Settings {
	return usecase.Settings{
		StartingBalance:  decimal.NewFromInt(1000),
		MinBalance:       decimal.Zero,
		MaxBalance:       decimal.NewFromInt(1_000_000_000),
		FractionalDigits: 2,
		CurrencySingular: "MagCoin",
		CurrencyPlural:   "MagCoins",
	}
}

func newAPI(t *testing.T, store usecase.AccountStore, timeout time.Duration) *syncapi.SyncAPI {
	t.Helper()
	economy := usecase.NewEconomy(store, cache.NewTTL(30*time.Minute), nil, testSettings(), nil, zap.NewNop())
	tc := usecase.NewTransferCoordinator(economy, zap.NewNop())
	return syncapi.New(economy, tc, timeout, zap.NewNop())
}

func TestSyncAPIHappyPath(t *testing.T) {
	store, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	api := newAPI(t, store, time.Second)

	if api.HasAccount("p1") {
		t.Fatal("HasAccount before create = true")
	}
	if !api.CreateAccount("p1", "Player One") {
		t.Fatal("CreateAccount failed")
	}
	if !api.CreateAccount("p2", "Player Two") {
		t.Fatal("CreateAccount failed")
	}
	if api.CreateAccount("p1", "Player One") {
		t.Fatal("duplicate CreateAccount reported success")
	}

	if balance, ok := api.Deposit("p1", decimal.NewFromInt(500)); !ok || !balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("Deposit = (%s, %v), want (1500, true)", balance, ok)
	}
	if _, ok := api.Withdraw("p1", decimal.NewFromInt(99999)); ok {
		t.Fatal("overdraw reported success")
	}
	if !api.Has("p1", decimal.NewFromInt(1500)) {
		t.Fatal("Has(1500) = false")
	}

	if !api.Transfer("p1", "p2", decimal.NewFromInt(1500)) {
		t.Fatal("Transfer failed")
	}
	if got := api.GetBalance("p1"); !got.Equal(decimal.Zero) {
		t.Fatalf("p1 balance = %s, want 0", got)
	}
	if got := api.GetBalance("p2"); !got.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("p2 balance = %s, want 2500", got)
	}
}

func TestSyncAPISafeDefaults(t *testing.T) {
	store, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	api := newAPI(t, store, time.Second)

	if got := api.GetBalance("ghost"); !got.Equal(decimal.Zero) {
		t.Fatalf("GetBalance(ghost) = %s, want 0", got)
	}
	if api.Has("ghost", decimal.Zero) {
		t.Fatal("Has(ghost) = true")
	}
	if api.Transfer("ghost", "ghost2", decimal.NewFromInt(1)) {
		t.Fatal("Transfer between missing accounts reported success")
	}
}

// stuckStore 模擬卡住的儲存層: 讀取一律等到 ctx 超時
type stuckStore struct {
	usecase.AccountStore
}

func (s stuckStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s stuckStore) Exists(ctx context.Context, id string) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func TestSyncAPITimeout(t *testing.T) {
	base, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	api := newAPI(t, stuckStore{AccountStore: base}, 20*time.Millisecond)

	start := time.Now()
	if api.HasAccount("p1") {
		t.Fatal("HasAccount on stuck store = true")
	}
	if got := api.GetBalance("p1"); !got.Equal(decimal.Zero) {
		t.Fatalf("GetBalance on stuck store = %s, want 0", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("calls did not respect timeout, took %s", elapsed)
	}
}
