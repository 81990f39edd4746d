package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/iamaayush710/Study-Buds/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: ttl,
	})
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	mgr := newTestManager(time.Hour)

	token, err := mgr.GenerateAccessToken(42, "member")
	if err != nil {
		t.Fatalf("GenerateAccessToken 应成功: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 应成功: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("期望 UserID=42，实际=%d", claims.UserID)
	}
	if claims.Role != "member" {
		t.Errorf("期望 Role=member，实际=%s", claims.Role)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
	if claims.Issuer != "study-buds" {
		t.Errorf("期望 Issuer=study-buds，实际=%s", claims.Issuer)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	mgr := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-entirely-different",
		AccessTokenTTL: time.Hour,
	})

	token, _ := mgr.GenerateAccessToken(1, "member")
	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("错误密钥应得到 ErrTokenInvalid，实际=%v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	mgr := newTestManager(-time.Minute)

	token, _ := mgr.GenerateAccessToken(1, "member")
	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("过期 Token 应得到 ErrTokenExpired，实际=%v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	mgr := newTestManager(time.Hour)

	if _, err := mgr.ParseToken("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("非法 Token 应得到 ErrTokenInvalid，实际=%v", err)
	}
}

func TestGenerateAccessToken_UniqueJTI(t *testing.T) {
	mgr := newTestManager(time.Hour)

	t1, _ := mgr.GenerateAccessToken(1, "member")
	t2, _ := mgr.GenerateAccessToken(1, "member")

	c1, _ := mgr.ParseToken(t1)
	c2, _ := mgr.ParseToken(t2)
	if c1.ID == c2.ID {
		t.Error("两次签发的 JTI 不应相同")
	}
}
