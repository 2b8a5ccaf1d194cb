package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT verifier configuration.
type Config struct {
	SecretKey string
	// Issuer and Audience are checked when set.
	Issuer   string
	Audience string
}

// Claims represents JWT claims structure.
type Claims struct {
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  string
}
