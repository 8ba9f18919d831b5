package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Client 封裝 GORM DB 實例
type Client struct {
	db *gorm.DB
}

// NewClient 建立 MySQL 客戶端 (GORM)
//
// 參數:
//
//	cfg: Config - MySQL 連線配置
//	log: *zap.Logger - 連線重試過程的診斷輸出
//
// 回傳值:
//
//	*Client: 封裝後的 MySQL 客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	gormConfig := &gorm.Config{
		// 單筆寫入不需要 GORM 預設的隱式交易，跳過以提升寫入效能
		// 需要交易的地方由業務邏輯明確開啟
		SkipDefaultTransaction: true,
		// 讓 driver 的重複鍵錯誤翻譯成 gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         newLogger(cfg.LogLevel),
	}

	var db *gorm.DB
	var err error

	// 啟動時資料庫可能還沒 ready (例如 docker compose)，重試連線
	const maxRetries = 10
	const retryInterval = 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
		if err == nil {
			rawDB, pingErr := db.DB()
			if pingErr == nil {
				if err = rawDB.Ping(); err == nil {
					break
				}
			} else {
				err = pingErr
			}
		}

		if i < maxRetries-1 {
			log.Warn("mysql connect failed, retrying",
				zap.Int("attempt", i+1),
				zap.Int("max_attempts", maxRetries),
				zap.Error(err),
			)
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.db: %w", err)
	}

	// 連線池參數，防止連線耗盡
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("mysql ping failed: %w", err)
	}

	return &Client{db: db}, nil
}

// DB 回傳底層的 *gorm.DB 實例
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close 關閉資料庫連線
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger 依設定建立 GORM Logger
func newLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "silent":
		logLevel = logger.Silent
	default:
		// 預設只記錄錯誤
		logLevel = logger.Error
	}
	return logger.Default.LogMode(logLevel)
}
