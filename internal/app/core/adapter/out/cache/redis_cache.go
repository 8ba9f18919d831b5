package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// redis 操作的內部逾時，快取不該拖慢主流程
const redisOpTimeout = 500 * time.Millisecond

// redisEntry redis 中的 JSON 表示
type redisEntry struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Balance     string    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RedisCache redis 版的帳戶快取
// TTL 交給 redis server 處理 (SET EX)，所以 Get 不需要自行判斷過期
// 任何 redis 錯誤都降級為 cache miss 並記錄診斷，快取永遠不是權威資料
type RedisCache struct {
	rdb    *redis.Client
	prefix string
	logger *zap.Logger

	mu  sync.RWMutex
	ttl time.Duration
}

// NewRedis 建立 redis 快取
func NewRedis(rdb *redis.Client, keyPrefix string, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		prefix: keyPrefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) key(id string) string {
	return c.prefix + ":" + id
}

func (c *RedisCache) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisOpTimeout)
}

func (c *RedisCache) Get(id string) (domain.Account, bool) {
	ctx, cancel := c.opCtx()
	defer cancel()

	data, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis cache get failed", zap.String("account_id", id), zap.Error(err))
		}
		return domain.Account{}, false
	}

	var e redisEntry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("redis cache entry corrupt", zap.String("account_id", id), zap.Error(err))
		return domain.Account{}, false
	}
	balance, err := decimal.NewFromString(e.Balance)
	if err != nil {
		c.logger.Warn("redis cache balance corrupt", zap.String("account_id", id), zap.Error(err))
		return domain.Account{}, false
	}

	return domain.Account{
		ID:          e.ID,
		DisplayName: e.DisplayName,
		Balance:     balance,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, true
}

func (c *RedisCache) Put(account domain.Account) {
	data, err := json.Marshal(redisEntry{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Balance:     account.Balance.String(),
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	})
	if err != nil {
		c.logger.Warn("redis cache marshal failed", zap.String("account_id", account.ID), zap.Error(err))
		return
	}

	c.mu.RLock()
	ttl := c.ttl
	c.mu.RUnlock()

	ctx, cancel := c.opCtx()
	defer cancel()
	// SET 連帶重設 TTL，等同重設插入時間
	if err := c.rdb.Set(ctx, c.key(account.ID), data, ttl).Err(); err != nil {
		c.logger.Warn("redis cache put failed", zap.String("account_id", account.ID), zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(id string) {
	ctx, cancel := c.opCtx()
	defer cancel()
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn("redis cache invalidate failed", zap.String("account_id", id), zap.Error(err))
	}
}

func (c *RedisCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := c.rdb.Scan(ctx, 0, c.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("redis cache clear failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("redis cache scan failed", zap.Error(err))
	}
}

func (c *RedisCache) Size() int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count := 0
	iter := c.rdb.Scan(ctx, 0, c.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}

func (c *RedisCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

var _ usecase.AccountCache = (*RedisCache)(nil)
