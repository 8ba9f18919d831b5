// Package wal 提供 append-only 的 JSON lines 日誌
// memory store adapter 以它記錄每一筆帳戶異動，重啟時重放回復狀態
package wal

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
)

type WAL struct {
	file *os.File
	mu   sync.Mutex
}

// Open 開啟或建立 WAL 檔案
// O_APPEND: 每次寫入自動跳到檔尾
func Open(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	return &WAL{file: file}, nil
}

// Append 寫入一筆記錄並 fsync
// fsync 是持久性的關鍵，成本由呼叫端承擔
func (w *WAL) Append(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := json.NewEncoder(w.file).Encode(v); err != nil {
		return err
	}
	return w.file.Sync()
}

// Replay 從頭讀取所有記錄，逐筆交給 callback
// callback 收到的是原始 JSON bytes，由呼叫端自行決定解碼型別
func (w *WAL) Replay(callback func(raw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(w.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
	return nil
}

// Close 關閉檔案
func (w *WAL) Close() error {
	return w.file.Close()
}
