package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

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

// countingStore 包裝真正的 store，統計讀取次數並允許注入 UpdateBalance 失敗
type countingStore struct {
	usecase.AccountStore
	mu          sync.Mutex
	getCalls    int
	updateErr   func(call int) error
	updateCalls int
}

func (s *countingStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	s.getCalls++
	s.mu.Unlock()
	return s.AccountStore.Get(ctx, id)
}

func (s *countingStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	s.mu.Lock()
	s.updateCalls++
	call := s.updateCalls
	s.mu.Unlock()
	if s.updateErr != nil {
		if err := s.updateErr(call); err != nil {
			return err
		}
	}
	return s.AccountStore.UpdateBalance(ctx, id, balance, updatedAt)
}

func (s *countingStore) gets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

// recordingPublisher 收集發出的事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, ev domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) all() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Event, len(p.events))
	copy(out, p.events)
	return out
}

type testEnv struct {
	economy *usecase.Economy
	store   *countingStore
	cache   *cache.TTLCache
	events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	store := &countingStore{AccountStore: base}
	c := cache.NewTTL(30 * time.Minute)
	events := &recordingPublisher{}
	economy := usecase.NewEconomy(store, c, events, testSettings(), nil, zap.NewNop())
	return &testEnv{economy: economy, store: store, cache: c, events: events}
}

func mustCreate(t *testing.T, e *usecase.Economy, id string) {
	t.Helper()
	if _, err := e.CreateAccount(context.Background(), id, id); err != nil {
		t.Fatalf("CreateAccount(%s): %v", id, err)
	}
}

func TestDepositWithdrawScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")

	balance, err := env.economy.GetBalance(ctx, "p1")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("starting balance = %s, want 1000", balance)
	}

	balance, err = env.economy.Deposit(ctx, "p1", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("balance after deposit = %s, want 1500", balance)
	}

	if _, err := env.economy.Withdraw(ctx, "p1", decimal.NewFromInt(2000)); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("Withdraw(2000) err = %v, want ErrInsufficientBalance", err)
	}

	// 失敗的提款不得留下任何異動
	balance, err = env.economy.GetBalance(ctx, "p1")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("balance after failed withdraw = %s, want 1500", balance)
	}
}

func TestCreateAccountDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	if _, err := env.economy.CreateAccount(ctx, "p1", "p1"); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("duplicate create err = %v, want ErrAccountAlreadyExists", err)
	}
	if _, err := env.economy.CreateAccount(ctx, "", "nobody"); !errors.Is(err, domain.ErrEmptyAccountID) {
		t.Fatalf("empty id create err = %v, want ErrEmptyAccountID", err)
	}
}

func TestGetBalanceMissingAccount(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.economy.GetBalance(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("GetBalance(ghost) err = %v, want ErrAccountNotFound", err)
	}
}

func TestNegativeAmountRejectedBeforeIO(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	before := env.store.gets()

	if _, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("Deposit(-1) err = %v, want ErrNegativeAmount", err)
	}
	if _, err := env.economy.Withdraw(ctx, "p1", decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("Withdraw(-1) err = %v, want ErrNegativeAmount", err)
	}
	if got := env.store.gets(); got != before {
		t.Fatalf("store reads = %d, want %d (no I/O on negative amount)", got, before)
	}
}

func TestBalanceBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")

	// 超過上限的存款整筆失敗，不做部分入帳
	huge := decimal.NewFromInt(1_000_000_000)
	if _, err := env.economy.Deposit(ctx, "p1", huge); !errors.Is(err, domain.ErrBalanceOutOfRange) {
		t.Fatalf("Deposit over max err = %v, want ErrBalanceOutOfRange", err)
	}
	balance, _ := env.economy.GetBalance(ctx, "p1")
	if !balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("balance after rejected deposit = %s, want 1000", balance)
	}

	// 剛好碰到邊界要成功
	if _, err := env.economy.Withdraw(ctx, "p1", decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("Withdraw to exact min: %v", err)
	}
	balance, _ = env.economy.GetBalance(ctx, "p1")
	if !balance.Equal(decimal.Zero) {
		t.Fatalf("balance = %s, want 0", balance)
	}
}

func TestSetBalanceOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	if err := env.economy.SetBalance(ctx, "p1", decimal.NewFromInt(-5)); !errors.Is(err, domain.ErrBalanceOutOfRange) {
		t.Fatalf("SetBalance(-5) err = %v, want ErrBalanceOutOfRange", err)
	}
	if err := env.economy.SetBalance(ctx, "p1", decimal.NewFromInt(777)); err != nil {
		t.Fatalf("SetBalance(777): %v", err)
	}
	balance, _ := env.economy.GetBalance(ctx, "p1")
	if !balance.Equal(decimal.NewFromInt(777)) {
		t.Fatalf("balance = %s, want 777", balance)
	}
}

func TestCacheReadThroughAndExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	start := env.store.gets()

	// 建立後快取已熱，連續讀取不應碰 store
	for i := 0; i < 3; i++ {
		if _, err := env.economy.GetBalance(ctx, "p1"); err != nil {
			t.Fatalf("GetBalance: %v", err)
		}
	}
	if got := env.store.gets(); got != start {
		t.Fatalf("store reads after cached gets = %d, want %d", got, start)
	}

	// TTL 過期後必須回 store 重讀
	env.cache.SetTTL(time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, err := env.economy.GetBalance(ctx, "p1"); err != nil {
		t.Fatalf("GetBalance after expiry: %v", err)
	}
	if got := env.store.gets(); got != start+1 {
		t.Fatalf("store reads after expiry = %d, want %d", got, start+1)
	}
}

func TestWriteThroughKeepsCacheFresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	if _, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	// 寫入後快取複本已同步，讀取不需回 store
	before := env.store.gets()
	balance, err := env.economy.GetBalance(ctx, "p1")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("cached balance = %s, want 1500", balance)
	}
	if got := env.store.gets(); got != before {
		t.Fatalf("store reads = %d, want %d (write-through keeps cache fresh)", got, before)
	}
}

func TestDeleteAccountInvalidatesCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	if err := env.economy.DeleteAccount(ctx, "p1"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, err := env.economy.GetBalance(ctx, "p1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("GetBalance after delete err = %v, want ErrAccountNotFound", err)
	}
	if err := env.economy.DeleteAccount(ctx, "p1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("double delete err = %v, want ErrAccountNotFound", err)
	}
}

func TestReloadSettingsClearsCache(t *testing.T) {
	base, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	c := cache.NewTTL(30 * time.Minute)
	reloaded := testSettings()
	reloaded.CurrencyPlural = "Gems"
	loader := func() (usecase.Settings, time.Duration, error) {
		return reloaded, 10 * time.Minute, nil
	}
	economy := usecase.NewEconomy(base, c, nil, testSettings(), loader, zap.NewNop())

	if _, err := economy.CreateAccount(context.Background(), "p1", "p1"); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if economy.CacheSize() != 1 {
		t.Fatalf("cache size = %d, want 1", economy.CacheSize())
	}

	if err := economy.ReloadSettings(); err != nil {
		t.Fatalf("ReloadSettings: %v", err)
	}
	if economy.CacheSize() != 0 {
		t.Fatalf("cache size after reload = %d, want 0", economy.CacheSize())
	}
	if got := economy.Settings().CurrencyPlural; got != "Gems" {
		t.Fatalf("CurrencyPlural after reload = %q, want Gems", got)
	}
}

func TestReloadSettingsWithoutLoader(t *testing.T) {
	env := newTestEnv(t)
	if err := env.economy.ReloadSettings(); err == nil {
		t.Fatal("ReloadSettings without loader should fail")
	}
}

func TestEventsEmittedAfterConfirmedWrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	if _, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if _, err := env.economy.Withdraw(ctx, "p1", decimal.NewFromInt(200)); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	// 失敗的操作不發事件
	if _, err := env.economy.Withdraw(ctx, "p1", decimal.NewFromInt(99999)); err == nil {
		t.Fatal("Withdraw should fail")
	}

	events := env.events.all()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != domain.EventTypeDeposit || !events[0].NewBalance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected deposit event: %+v", events[0])
	}
	if events[1].Type != domain.EventTypeWithdraw || !events[1].NewBalance.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("unexpected withdraw event: %+v", events[1])
	}
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	env := newTestEnv(t)
	env.events.err = errors.New("broker down")
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	balance, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("Deposit with failing publisher: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("balance = %s, want 1500", balance)
	}
}

func TestConcurrentDeposits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")

	const workers = 16
	const rounds = 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				if _, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(1)); err != nil {
					t.Errorf("Deposit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	balance, err := env.economy.GetBalance(ctx, "p1")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	want := decimal.NewFromInt(1000 + workers*rounds)
	if !balance.Equal(want) {
		t.Fatalf("balance after concurrent deposits = %s, want %s", balance, want)
	}
}

func TestAggregates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		mustCreate(t, env.economy, id)
	}
	if _, err := env.economy.Deposit(ctx, "b", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	total, err := env.economy.TotalAccounts(ctx)
	if err != nil || total != 3 {
		t.Fatalf("TotalAccounts = %d, %v; want 3", total, err)
	}

	sum, err := env.economy.TotalValue(ctx)
	if err != nil {
		t.Fatalf("TotalValue: %v", err)
	}
	if !sum.Equal(decimal.NewFromInt(3500)) {
		t.Fatalf("TotalValue = %s, want 3500", sum)
	}

	top, err := env.economy.TopAccounts(ctx, 2)
	if err != nil {
		t.Fatalf("TopAccounts: %v", err)
	}
	if len(top) != 2 || top[0].ID != "b" {
		t.Fatalf("TopAccounts = %+v, want b first", top)
	}
}
