package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
)

func testAccount(id string, balance int64) domain.Account {
	return *domain.NewAccount(id, "tester", decimal.NewFromInt(balance))
}

func TestTTLCache_PutGet(t *testing.T) {
	c := NewTTL(time.Minute)
	c.Put(testAccount("a1", 100))

	got, ok := c.Get("a1")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if !got.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected balance: %s", got.Balance)
	}
	if c.Size() != 1 {
		t.Fatalf("expected size 1, got %d", c.Size())
	}
}

func TestTTLCache_ExpiredEntryIsAbsentAndEvicted(t *testing.T) {
	c := NewTTL(time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Put(testAccount("a1", 100))

	// TTL 內可讀
	if _, ok := c.Get("a1"); !ok {
		t.Fatalf("expected hit before ttl")
	}

	// 超過 TTL 後視同不存在，且被就地淘汰
	current = current.Add(time.Minute + time.Second)
	if _, ok := c.Get("a1"); ok {
		t.Fatalf("expected miss after ttl")
	}
	if c.Size() != 0 {
		t.Fatalf("expected lazy eviction, size=%d", c.Size())
	}
}

func TestTTLCache_PutResetsInsertionTime(t *testing.T) {
	c := NewTTL(time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Put(testAccount("a1", 100))

	current = current.Add(50 * time.Second)
	c.Put(testAccount("a1", 200)) // 重新寫入要重設時間

	current = current.Add(30 * time.Second) // 距第二次寫入 30s < ttl
	got, ok := c.Get("a1")
	if !ok {
		t.Fatalf("expected hit, insertion time should have been reset")
	}
	if !got.Balance.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected balance: %s", got.Balance)
	}
}

func TestTTLCache_ReturnsCopies(t *testing.T) {
	c := NewTTL(time.Minute)
	c.Put(testAccount("a1", 100))

	got, _ := c.Get("a1")
	got.Balance = decimal.NewFromInt(999)

	again, _ := c.Get("a1")
	if !again.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("mutating a returned account must not affect the cache")
	}
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := NewTTL(time.Minute)
	c.Put(testAccount("a1", 1))
	c.Put(testAccount("a2", 2))

	c.Invalidate("a1")
	if _, ok := c.Get("a1"); ok {
		t.Fatalf("expected miss after invalidate")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Fatalf("expected empty cache after clear")
	}
}

func TestDisabled_AlwaysMisses(t *testing.T) {
	c := NewDisabled()
	c.Put(testAccount("a1", 100))
	if _, ok := c.Get("a1"); ok {
		t.Fatalf("disabled cache must never hit")
	}
	if c.Size() != 0 {
		t.Fatalf("disabled cache must report size 0")
	}
}
