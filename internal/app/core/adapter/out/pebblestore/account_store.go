// Package pebblestore 提供以 Pebble (LSM KV) 實作的 AccountStore
// key 為帳戶 ID，value 為 JSON 編碼的帳戶記錄；寫入皆帶 pebble.Sync 確保落盤
//
// 聚合查詢以 iterator 全量掃描實作。這個 backend 定位在單機小規模部署，
// 大規模時請改用 mysql backend (彙總在資料庫端完成)
package pebblestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// record Pebble 中的 JSON 表示
type record struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Balance     string    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func encodeRecord(a *domain.Account) ([]byte, error) {
	return json.Marshal(record{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Balance:     a.Balance.String(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	})
}

func decodeRecord(data []byte) (domain.Account, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return domain.Account{}, err
	}
	balance, err := decimal.NewFromString(r.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("corrupt balance for account %s: %w", r.ID, err)
	}
	return domain.Account{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Balance:     balance,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

type AccountStore struct {
	db *pebble.DB
}

// Open 開啟 (或建立) Pebble 資料庫
func Open(dir string) (*AccountStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db: %w", err)
	}
	return &AccountStore{db: db}, nil
}

// Close 關閉資料庫
func (s *AccountStore) Close() error {
	return s.db.Close()
}

func (s *AccountStore) get(id string) (domain.Account, error) {
	value, closer, err := s.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return domain.Account{}, domain.ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	defer closer.Close()
	return decodeRecord(value)
}

func (s *AccountStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.get(id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountStore) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	var found *domain.Account
	err := s.scan(func(account domain.Account) {
		if found == nil && account.DisplayName == name {
			clone := account.Clone()
			found = &clone
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrAccountNotFound
	}
	return found, nil
}

func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	if _, err := s.get(account.ID); err == nil {
		return domain.ErrAccountAlreadyExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}
	data, err := encodeRecord(account)
	if err != nil {
		return err
	}
	return s.db.Set([]byte(account.ID), data, pebble.Sync)
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	account, err := s.get(id)
	if err != nil {
		return err
	}
	account.Balance = balance
	account.UpdatedAt = updatedAt
	data, err := encodeRecord(&account)
	if err != nil {
		return err
	}
	return s.db.Set([]byte(id), data, pebble.Sync)
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.db.Delete([]byte(id), pebble.Sync)
}

// scan 走訪所有帳戶記錄
func (s *AccountStore) scan(visit func(domain.Account)) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		account, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		visit(account)
	}
	return iter.Error()
}

func (s *AccountStore) TopByBalance(ctx context.Context, limit int) ([]domain.Account, error) {
	var all []domain.Account
	if err := s.scan(func(account domain.Account) {
		all = append(all, account)
	}); err != nil {
		return nil, err
	}

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
	matched := make([]domain.Account, 0)
	err := s.scan(func(account domain.Account) {
		if account.Balance.GreaterThanOrEqual(min) && account.Balance.LessThanOrEqual(max) {
			matched = append(matched, account)
		}
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

func (s *AccountStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.scan(func(domain.Account) { count++ })
	return count, err
}

func (s *AccountStore) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := s.scan(func(account domain.Account) {
		sum = sum.Add(account.Balance)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

var _ usecase.AccountStore = (*AccountStore)(nil)
