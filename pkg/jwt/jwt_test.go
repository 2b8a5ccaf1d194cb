package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); !errors.Is(err, ErrSecretTooShort) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrSecretTooShort)
	}
}

func TestVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "identity"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	now := time.Now()
	valid := Claims{
		Email: "ann@example.com",
		Role:  "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    "identity",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	t.Run("valid token", func(t *testing.T) {
		p, err := m.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), valid))
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if p.Subject != "u1" || p.Username != "ann@example.com" || p.Role != "user" {
			t.Errorf("payload mismatch: got %+v", p)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		c := valid
		c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		if _, err := m.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := sign(t, jwt.SigningMethodHS256, []byte("ffffffffffffffffffffffffffffffff"), valid)
		if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := valid
		c.Issuer = "someone-else"
		if _, err := m.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("other algorithm", func(t *testing.T) {
		tok := sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid)
		if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
	})
}
