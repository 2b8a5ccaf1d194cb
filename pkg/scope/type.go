package scope

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	Issuer    string `json:"iss"`
	ID        string `json:"jti"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies access tokens. Token issuance lives in the identity service.
//
//go:generate mockery --name Manager
type Manager interface {
	Verify(token string) (Payload, error)
}
