package keylock

import (
	"sync"
	"testing"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := New(8)
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock("acct-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 200 {
		t.Fatalf("expected 200 serialized increments, got %d", counter)
	}
}

func TestKeyLock_LockPairSameShard(t *testing.T) {
	// shards=1 強制兩個 key 落在同一 shard，LockPair 不可重複取鎖
	kl := New(1)
	unlock := kl.LockPair("a", "b")
	unlock()

	// 解鎖後必須能再次取得
	unlock = kl.Lock("a")
	unlock()
}

func TestKeyLock_LockPairNoDeadlock(t *testing.T) {
	kl := New(16)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		// 相反順序請求同一對 key，排序取鎖應避免死鎖
		go func() {
			defer wg.Done()
			unlock := kl.LockPair("from", "to")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := kl.LockPair("to", "from")
			unlock()
		}()
	}
	wg.Wait()
}
