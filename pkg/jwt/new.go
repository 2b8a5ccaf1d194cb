package jwt

import (
	"trend-srv/pkg/scope"
)

// New creates an HS256 token verifier. Returns the interface.
func New(cfg Config) (scope.Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}
