package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

func newClientImpl(cfg ClientConfig) *clientImpl {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	if cfg.MaxRetryWait < cfg.RetryWait {
		cfg.MaxRetryWait = cfg.RetryWait * 8
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.MaxRetryWait).
		AddRetryCondition(shouldRetry)
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	impl := &clientImpl{client: client, config: cfg}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		impl.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return impl
}

// shouldRetry retries transport errors, throttling and server errors.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.GetWithQuery(ctx, url, nil, headers)
}

// GetWithQuery performs a GET request with query parameters.
func (c *clientImpl) GetWithQuery(ctx context.Context, url string, query map[string]string, headers map[string]string) ([]byte, int, error) {
	req, err := c.request(ctx, headers)
	if err != nil {
		return nil, 0, err
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return c.result(req.Get(url))
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	req, err := c.request(ctx, headers)
	if err != nil {
		return nil, 0, err
	}
	req.SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	return c.result(req.Post(url))
}

// PostForm performs a POST request with an url-encoded form body.
func (c *clientImpl) PostForm(ctx context.Context, url string, form map[string]string, headers map[string]string) ([]byte, int, error) {
	req, err := c.request(ctx, headers)
	if err != nil {
		return nil, 0, err
	}
	req.SetFormData(form)
	return c.result(req.Post(url))
}

func (c *clientImpl) request(ctx context.Context, headers map[string]string) (*resty.Request, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	req := c.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	return req, nil
}

func (c *clientImpl) result(resp *resty.Response, err error) ([]byte, int, error) {
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		return nil, status, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}
	return resp.Body(), resp.StatusCode(), nil
}
