// Package memory 提供行程內的 AccountStore 實作
// 搭配 pkg/wal 時每筆異動都會落盤，重啟時重放回復
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-economy-ledger/pkg/wal"
)

// journal 操作類型
const (
	opUpsert = "upsert"
	opDelete = "delete"
)

// walRecord WAL 中一筆帳戶異動
type walRecord struct {
	Op          string    `json:"op"`
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name,omitempty"`
	Balance     string    `json:"balance,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// AccountStore 以 RWMutex 保護的帳戶 Map
//
// 結構:
//
//	accounts: 帳戶資料 Map (持有複本)
//	journal: Write-Ahead Log，nil 時為純記憶體模式 (測試用)
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	journal  *wal.WAL
}

// NewAccountStore 建立 memory store
// journal 不為 nil 時先重放既有記錄回復狀態
func NewAccountStore(journal *wal.WAL) (*AccountStore, error) {
	s := &AccountStore{
		accounts: make(map[string]domain.Account),
		journal:  journal,
	}
	if journal != nil {
		if err := s.recover(); err != nil {
			return nil, fmt.Errorf("wal recovery failed: %w", err)
		}
	}
	return s, nil
}

// recover 重放 WAL，單執行緒呼叫，不需要 lock
func (s *AccountStore) recover() error {
	return s.journal.Replay(func(raw []byte) error {
		var rec walRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return err
		}
		switch rec.Op {
		case opUpsert:
			balance, err := decimal.NewFromString(rec.Balance)
			if err != nil {
				return err
			}
			s.accounts[rec.ID] = domain.Account{
				ID:          rec.ID,
				DisplayName: rec.DisplayName,
				Balance:     balance,
				CreatedAt:   rec.CreatedAt,
				UpdatedAt:   rec.UpdatedAt,
			}
		case opDelete:
			delete(s.accounts, rec.ID)
		}
		return nil
	})
}

// appendJournal 寫入 WAL，呼叫端需已持有寫鎖
func (s *AccountStore) appendJournal(rec walRecord) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Append(rec)
}

func upsertRecord(a domain.Account) walRecord {
	return walRecord{
		Op:          opUpsert,
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Balance:     a.Balance.String(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *AccountStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[id]
	return ok, nil
}

func (s *AccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := account.Clone()
	return &clone, nil
}

func (s *AccountStore) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if account.DisplayName == name {
			clone := account.Clone()
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; ok {
		return domain.ErrAccountAlreadyExists
	}
	if err := s.appendJournal(upsertRecord(*account)); err != nil {
		return err
	}
	s.accounts[account.ID] = account.Clone()
	return nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Balance = balance
	account.UpdatedAt = updatedAt
	if err := s.appendJournal(upsertRecord(account)); err != nil {
		return err
	}
	s.accounts[id] = account
	return nil
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	if err := s.appendJournal(walRecord{Op: opDelete, ID: id}); err != nil {
		return err
	}
	delete(s.accounts, id)
	return nil
}

func (s *AccountStore) TopByBalance(ctx context.Context, limit int) ([]domain.Account, error) {
	s.mu.RLock()
	all := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		all = append(all, account.Clone())
	}
	s.mu.RUnlock()

	// 餘額高到低，同額以 id 排序保持穩定
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Balance.Equal(all[j].Balance) {
			return all[i].Balance.GreaterThan(all[j].Balance)
		}
		return all[i].ID < all[j].ID
	})

	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *AccountStore) ByBalanceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]domain.Account, 0)
	for _, account := range s.accounts {
		if account.Balance.GreaterThanOrEqual(min) && account.Balance.LessThanOrEqual(max) {
			matched = append(matched, account.Clone())
		}
	}
	return matched, nil
}

func (s *AccountStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.accounts)), nil
}

func (s *AccountStore) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := decimal.Zero
	for _, account := range s.accounts {
		sum = sum.Add(account.Balance)
	}
	return sum, nil
}

var _ usecase.AccountStore = (*AccountStore)(nil)
