// Package cache 提供 AccountCache 的實作
// 快取永遠只持有值複本，不是持久性的依據
package cache

import (
	"sync"
	"time"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// entry 快取項目: 帳戶快照與插入時間
type entry struct {
	account    domain.Account
	insertedAt time.Time
}

// TTLCache 行程內的 TTL 快取
// 過期採 lazy 策略: 讀到過期項目時就地淘汰，沒有背景掃描
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewTTL 建立 TTL 快取
func NewTTL(ttl time.Duration) *TTLCache {
	return &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get 取得未過期的項目
func (c *TTLCache) Get(id string) (domain.Account, bool) {
	c.mu.RLock()
	e, ok := c.entries[id]
	ttl := c.ttl
	c.mu.RUnlock()
	if !ok {
		return domain.Account{}, false
	}

	if c.now().Sub(e.insertedAt) > ttl {
		// 過期項目視同不存在，順手淘汰
		c.mu.Lock()
		if cur, still := c.entries[id]; still && cur.insertedAt.Equal(e.insertedAt) {
			delete(c.entries, id)
		}
		c.mu.Unlock()
		return domain.Account{}, false
	}
	return e.account, true
}

// Put 寫入複本並重設插入時間
func (c *TTLCache) Put(account domain.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[account.ID] = entry{account: account, insertedAt: c.now()}
}

// Invalidate 移除單一項目
func (c *TTLCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Clear 清空快取
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Size 目前項目數 (含尚未被讀到的過期項目)
func (c *TTLCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SetTTL 更新有效時間
func (c *TTLCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

var _ usecase.AccountCache = (*TTLCache)(nil)
