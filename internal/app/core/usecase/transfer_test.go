package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/cache"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

func newTransferEnv(t *testing.T) (*usecase.TransferCoordinator, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return usecase.NewTransferCoordinator(env.economy, zap.NewNop()), env
}

func TestTransferScenario(t *testing.T) {
	tc, env := newTransferEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	mustCreate(t, env.economy, "p2")
	if _, err := env.economy.Deposit(ctx, "p1", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	// p1=1500, p2=1000 → transfer 1500 → p1=0, p2=2500
	result, err := tc.Transfer(ctx, "p1", "p2", decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if !result.Succeeded() || result.State != domain.TransferStateCompleted {
		t.Fatalf("result = %+v, want Completed", result)
	}

	from, _ := env.economy.GetBalance(ctx, "p1")
	to, _ := env.economy.GetBalance(ctx, "p2")
	if !from.Equal(decimal.Zero) {
		t.Fatalf("from balance = %s, want 0", from)
	}
	if !to.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("to balance = %s, want 2500", to)
	}

	// 轉帳事件以單一事件表達，金額守恆可由事件稽核
	events := env.events.all()
	last := events[len(events)-1]
	if last.Type != domain.EventTypeTransfer || last.AccountID != "p1" || last.ToAccountID != "p2" {
		t.Fatalf("unexpected transfer event: %+v", last)
	}
}

func TestTransferPreconditions(t *testing.T) {
	tc, env := newTransferEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	mustCreate(t, env.economy, "p2")

	cases := []struct {
		name    string
		from    string
		to      string
		amount  decimal.Decimal
		wantErr error
	}{
		{"zero amount", "p1", "p2", decimal.Zero, domain.ErrAmountMustBePositive},
		{"negative amount", "p1", "p2", decimal.NewFromInt(-5), domain.ErrAmountMustBePositive},
		{"empty from", "", "p2", decimal.NewFromInt(5), domain.ErrEmptyAccountID},
		{"same account", "p1", "p1", decimal.NewFromInt(5), domain.ErrSameAccountTransfer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := tc.Transfer(ctx, c.from, c.to, c.amount)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if result.State != domain.TransferStateRejected {
				t.Fatalf("state = %s, want Rejected", result.State)
			}
		})
	}

	// 拒絕的轉帳不得留下任何異動
	for _, id := range []string{"p1", "p2"} {
		balance, _ := env.economy.GetBalance(ctx, id)
		if !balance.Equal(decimal.NewFromInt(1000)) {
			t.Fatalf("%s balance = %s, want 1000", id, balance)
		}
	}
}

func TestTransferInsufficientBalance(t *testing.T) {
	tc, env := newTransferEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")
	mustCreate(t, env.economy, "p2")

	result, err := tc.Transfer(ctx, "p1", "p2", decimal.NewFromInt(99999))
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if result.State != domain.TransferStateRejected {
		t.Fatalf("state = %s, want Rejected", result.State)
	}
}

func TestTransferCompensation(t *testing.T) {
	tc, env := newTransferEnv(t)
	ctx := context.Background()

	mustCreate(t, env.economy, "p1")

	// 入帳方不存在: 提款成功後入帳失敗，補償退回轉出方
	result, err := tc.Transfer(ctx, "p1", "ghost", decimal.NewFromInt(400))
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
	if result.State != domain.TransferStateFailed {
		t.Fatalf("state = %s, want Failed", result.State)
	}

	balance, _ := env.economy.GetBalance(ctx, "p1")
	if !balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("from balance after compensation = %s, want 1000", balance)
	}
}

func TestTransferDoubleFault(t *testing.T) {
	base, err := memory.NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	bombErr := errors.New("store offline")
	store := &countingStore{
		AccountStore: base,
		// 第一次 UpdateBalance (提款) 放行，之後 (入帳與補償) 全部失敗
		updateErr: func(call int) error {
			if call > 1 {
				return bombErr
			}
			return nil
		},
	}
	economy := usecase.NewEconomy(store, cache.NewDisabled(), nil, testSettings(), nil, zap.NewNop())
	tc := usecase.NewTransferCoordinator(economy, zap.NewNop())
	ctx := context.Background()

	if _, err := economy.CreateAccount(ctx, "p1", "p1"); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if _, err := economy.CreateAccount(ctx, "p2", "p2"); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	result, err := tc.Transfer(ctx, "p1", "p2", decimal.NewFromInt(400))
	if !usecase.IsDoubleFault(err) {
		t.Fatalf("err = %v, want ErrCompensationFailed", err)
	}
	if result.State != domain.TransferStateCompensating {
		t.Fatalf("state = %s, want Compensating", result.State)
	}

	// 資金卡在扣款狀態: 轉出方已扣、轉入方未入帳
	from, _ := economy.GetBalance(ctx, "p1")
	to, _ := economy.GetBalance(ctx, "p2")
	if !from.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("from balance = %s, want 600", from)
	}
	if !to.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("to balance = %s, want 1000", to)
	}
}
