package cache

import (
	"time"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// Disabled 停用快取時使用的 no-op 實作
// 讀取一律 miss、寫入不做事，讓 Economy 每次都走 store
// (快取不存在就不會說謊)
type Disabled struct{}

func NewDisabled() Disabled { return Disabled{} }

func (Disabled) Get(string) (domain.Account, bool) { return domain.Account{}, false }
func (Disabled) Put(domain.Account)                {}
func (Disabled) Invalidate(string)                 {}
func (Disabled) Clear()                            {}
func (Disabled) Size() int                         { return 0 }
func (Disabled) SetTTL(time.Duration)              {}

var _ usecase.AccountCache = Disabled{}
