// Package logger 建構全專案共用的 zap logger
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 依設定的等級建立 production 格式的 logger
// level 不合法時退回 info 並照常運作 (logger 建不起來不該擋住服務啟動)
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
