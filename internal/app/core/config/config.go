// Package config 載入服務設定 (yaml)
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-economy-ledger/pkg/mysql"
)

// Store backend 選項
const (
	StoreBackendMySQL  = "mysql"
	StoreBackendMemory = "memory"
	StoreBackendPebble = "pebble"
)

// Cache backend 選項
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Server   ServerConfig  `yaml:"server"`
	Store    StoreConfig   `yaml:"store"`
	Cache    CacheConfig   `yaml:"cache"`
	Economy  EconomyConfig `yaml:"economy"`
	Events   EventsConfig  `yaml:"events"`
}

type ServerConfig struct {
	GrpcAddr string `yaml:"grpc_addr"`
	// SyncTimeout: 同步 shim 的阻塞上限
	SyncTimeout time.Duration `yaml:"sync_timeout"`
	// RateLimitPerSecond <= 0 表示不限流
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

type StoreConfig struct {
	// Backend: "mysql" | "memory" | "pebble"
	Backend string       `yaml:"backend"`
	MySQL   mysql.Config `yaml:"mysql"`
	Pebble  PebbleConfig `yaml:"pebble"`
	// WALPath: memory backend 的日誌檔，空字串表示不做持久化
	WALPath string `yaml:"wal_path"`
}

type PebbleConfig struct {
	Dir string `yaml:"dir"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	// Backend: "memory" | "redis"
	Backend       string      `yaml:"backend"`
	ExpireMinutes int         `yaml:"expire_minutes"`
	Redis         RedisConfig `yaml:"redis"`
}

// TTL 快取有效時間
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// EconomyConfig 經濟系統參數，對應原始 economy 設定檔
type EconomyConfig struct {
	StartingBalance float64 `yaml:"starting_balance"`
	MinBalance      float64 `yaml:"min_balance"`
	MaxBalance      float64 `yaml:"max_balance"`
	// FractionalDigits 用指標區分「沒設定」與「設定為 0 (整數顯示)」
	FractionalDigits *int   `yaml:"fractional_digits"`
	CurrencySingular string `yaml:"currency_singular"`
	CurrencyPlural   string `yaml:"currency_plural"`
}

// Digits 小數位數，未設定時為 2
func (e EconomyConfig) Digits() int {
	if e.FractionalDigits == nil {
		return 2
	}
	return *e.FractionalDigits
}

type EventsConfig struct {
	// Backend: "none" | "kafka"
	Backend string   `yaml:"backend"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Load 讀取設定檔並補全預設值
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 補全 yaml 沒寫的欄位，預設值沿用原始設定檔
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Server.GrpcAddr == "" {
		c.Server.GrpcAddr = ":50051"
	}
	if c.Server.SyncTimeout == 0 {
		c.Server.SyncTimeout = 5 * time.Second
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 100
	}

	if c.Store.Backend == "" {
		c.Store.Backend = StoreBackendMySQL
	}
	if c.Store.MySQL.MaxOpenConns == 0 {
		c.Store.MySQL.MaxOpenConns = 100
	}
	if c.Store.MySQL.MaxIdleConns == 0 {
		c.Store.MySQL.MaxIdleConns = 10
	}
	if c.Store.MySQL.ConnMaxLifetime == 0 {
		c.Store.MySQL.ConnMaxLifetime = 30 * time.Minute
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendMemory
	}
	if c.Cache.ExpireMinutes == 0 {
		c.Cache.ExpireMinutes = 30
	}
	if c.Cache.Redis.KeyPrefix == "" {
		c.Cache.Redis.KeyPrefix = "economy:account"
	}

	if c.Economy.StartingBalance == 0 {
		c.Economy.StartingBalance = 1000.0
	}
	if c.Economy.MaxBalance == 0 {
		c.Economy.MaxBalance = 1_000_000_000.0
	}
	if c.Economy.CurrencySingular == "" {
		c.Economy.CurrencySingular = "MagCoin"
	}
	if c.Economy.CurrencyPlural == "" {
		c.Economy.CurrencyPlural = "MagCoins"
	}

	if c.Events.Backend == "" {
		c.Events.Backend = "none"
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "economy.events"
	}
}
