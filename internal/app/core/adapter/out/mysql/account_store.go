// Package mysql 提供以 GORM 實作的 AccountStore
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-economy-ledger/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	AccountID   string          `gorm:"column:account_id;primaryKey;size:36"`
	DisplayName string          `gorm:"column:display_name;size:64;index"`
	Balance     decimal.Decimal `gorm:"column:balance;type:decimal(20,4);index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

func (r *sqlAccount) toDomain() domain.Account {
	return domain.Account{
		ID:          r.AccountID,
		DisplayName: r.DisplayName,
		Balance:     r.Balance,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type AccountStore struct {
	client *mysql.Client
}

// NewAccountStore 建立 MySQL store 並確保資料表存在
func NewAccountStore(client *mysql.Client) (*AccountStore, error) {
	if err := client.DB().AutoMigrate(&sqlAccount{}); err != nil {
		return nil, fmt.Errorf("failed to migrate accounts table: %w", err)
	}
	return &AccountStore{client: client}, nil
}

func (s *AccountStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Where("account_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *AccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	var row sqlAccount
	err := s.client.DB().WithContext(ctx).
		Where("account_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	account := row.toDomain()
	return &account, nil
}

func (s *AccountStore) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	var row sqlAccount
	err := s.client.DB().WithContext(ctx).
		Where("display_name = ?", name).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	account := row.toDomain()
	return &account, nil
}

func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	row := sqlAccount{
		AccountID:   account.ID,
		DisplayName: account.DisplayName,
		Balance:     account.Balance,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
	err := s.client.DB().WithContext(ctx).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	result := s.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Where("account_id = ?", id).
		Updates(map[string]any{
			"balance":    balance,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (s *AccountStore) Delete(ctx context.Context, id string) error {
	result := s.client.DB().WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&sqlAccount{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (s *AccountStore) TopByBalance(ctx context.Context, limit int) ([]domain.Account, error) {
	var rows []sqlAccount
	err := s.client.DB().WithContext(ctx).
		Order("balance DESC, account_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (s *AccountStore) ByBalanceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Account, error) {
	var rows []sqlAccount
	err := s.client.DB().WithContext(ctx).
		Where("balance >= ? AND balance <= ?", min, max).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (s *AccountStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Count(&count).Error
	return count, err
}

// SumBalances 由資料庫彙總，不把全部記錄載入記憶體
func (s *AccountStore) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := s.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func toDomainSlice(rows []sqlAccount) []domain.Account {
	accounts := make([]domain.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].toDomain())
	}
	return accounts
}

var _ usecase.AccountStore = (*AccountStore)(nil)
