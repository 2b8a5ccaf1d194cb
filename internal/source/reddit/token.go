package reddit

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trend-srv/internal/source"
)

// accessToken returns the cached app token, exchanging client credentials when it is missing or expired.
func (a *adapter) accessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.now().Before(a.expiresAt) {
		return a.token, nil
	}

	basic := base64.StdEncoding.EncodeToString([]byte(a.cfg.ClientID + ":" + a.cfg.ClientSecret))
	body, status, err := a.http.PostForm(ctx, a.cfg.TokenURL,
		map[string]string{"grant_type": "client_credentials"},
		map[string]string{
			"Authorization": "Basic " + basic,
			"User-Agent":    a.cfg.UserAgent,
		})
	if err != nil {
		return "", fmt.Errorf("reddit token request: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: reddit token status %d", source.ErrAuthFailed, status)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("reddit token decode: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: reddit returned empty token", source.ErrAuthFailed)
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenSafetyMargin
	if ttl < 0 {
		ttl = 0
	}
	a.token = tr.AccessToken
	a.expiresAt = a.now().Add(ttl)
	return a.token, nil
}

func (a *adapter) invalidateToken() {
	a.mu.Lock()
	a.token = ""
	a.mu.Unlock()
}
