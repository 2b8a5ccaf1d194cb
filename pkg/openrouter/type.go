package openrouter

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Config holds the configuration for the OpenRouter client.
type Config struct {
	APIKey        string
	BaseURL       string
	PrimaryModel  string
	FallbackModel string
	Temperature   float32
	MaxTokens     int
	Timeout       time.Duration
	Referer       string
	Title         string
}

// generator is the subset of an eino chat model used here.
type generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type namedModel struct {
	name string
	gen  generator
}

// openRouterImpl implements IOpenRouter. models are tried in order.
type openRouterImpl struct {
	models []namedModel
}

// headerTransport adds the attribution headers OpenRouter uses for app rankings.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("HTTP-Referer", t.referer)
	r.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(r)
}
