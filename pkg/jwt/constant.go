package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
	// ClockSkew is tolerated on exp, nbf and iat between the auth service and this one.
	ClockSkew = 30 * time.Second
)
