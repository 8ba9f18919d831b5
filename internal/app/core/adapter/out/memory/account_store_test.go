package memory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/pkg/wal"
)

func newStore(t *testing.T) *AccountStore {
	t.Helper()
	s, err := NewAccountStore(nil)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}
	return s
}

func TestAccountStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	acct := domain.NewAccount("p1", "Player One", decimal.NewFromInt(1000))
	if err := s.Create(ctx, acct); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Create(ctx, acct); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("duplicate create: expected ErrAccountAlreadyExists, got %v", err)
	}

	got, err := s.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected balance: %s", got.Balance)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountStore_UpdateBalanceAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	if err := s.UpdateBalance(ctx, "ghost", decimal.NewFromInt(1), time.Now()); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("update on missing account: expected ErrAccountNotFound, got %v", err)
	}

	_ = s.Create(ctx, domain.NewAccount("p1", "P1", decimal.NewFromInt(100)))

	ts := time.Now().UTC()
	if err := s.UpdateBalance(ctx, "p1", decimal.NewFromInt(250), ts); err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}
	got, _ := s.Get(ctx, "p1")
	if !got.Balance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("balance not updated: %s", got.Balance)
	}
	if !got.UpdatedAt.Equal(ts) {
		t.Fatalf("updated_at not refreshed")
	}

	if err := s.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "p1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("double delete: expected ErrAccountNotFound, got %v", err)
	}
	if exists, _ := s.Exists(ctx, "p1"); exists {
		t.Fatalf("account should be gone")
	}
}

func TestAccountStore_Queries(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, tc := range []struct {
		id      string
		balance int64
	}{
		{"a", 500}, {"b", 1500}, {"c", 1000}, {"d", 1500},
	} {
		_ = s.Create(ctx, domain.NewAccount(tc.id, tc.id, decimal.NewFromInt(tc.balance)))
	}

	top, err := s.TopByBalance(ctx, 3)
	if err != nil {
		t.Fatalf("TopByBalance: %v", err)
	}
	// 1500(b), 1500(d) 同額以 id 排序，然後 1000(c)
	wantOrder := []string{"b", "d", "c"}
	if len(top) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(top))
	}
	for i, want := range wantOrder {
		if top[i].ID != want {
			t.Fatalf("top[%d]: expected %s, got %s", i, want, top[i].ID)
		}
	}

	ranged, err := s.ByBalanceRange(ctx, decimal.NewFromInt(600), decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("ByBalanceRange: %v", err)
	}
	if len(ranged) != 3 {
		t.Fatalf("expected 3 accounts in range, got %d", len(ranged))
	}

	count, _ := s.Count(ctx)
	if count != 4 {
		t.Fatalf("expected count 4, got %d", count)
	}

	sum, _ := s.SumBalances(ctx)
	if !sum.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("expected sum 4500, got %s", sum)
	}
}

func TestAccountStore_WALRecovery(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.wal")

	journal, err := wal.Open(path)
	if err != nil {
		t.Fatalf("wal.Open: %v", err)
	}
	s, err := NewAccountStore(journal)
	if err != nil {
		t.Fatalf("NewAccountStore: %v", err)
	}

	_ = s.Create(ctx, domain.NewAccount("p1", "P1", decimal.NewFromInt(1000)))
	_ = s.Create(ctx, domain.NewAccount("p2", "P2", decimal.NewFromInt(1000)))
	_ = s.UpdateBalance(ctx, "p1", decimal.NewFromInt(750), time.Now().UTC())
	_ = s.Delete(ctx, "p2")
	_ = journal.Close()

	// 重新開啟，狀態應由 WAL 重放回復
	journal2, err := wal.Open(path)
	if err != nil {
		t.Fatalf("wal.Open (reopen): %v", err)
	}
	defer journal2.Close()

	restored, err := NewAccountStore(journal2)
	if err != nil {
		t.Fatalf("recovery: %v", err)
	}

	got, err := restored.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("expected recovered balance 750, got %s", got.Balance)
	}
	if exists, _ := restored.Exists(ctx, "p2"); exists {
		t.Fatalf("deleted account must stay deleted after recovery")
	}
}
