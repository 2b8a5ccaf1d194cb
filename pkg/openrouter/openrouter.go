package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
)

func newOpenRouterImpl(ctx context.Context, cfg Config) (*openRouterImpl, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.PrimaryModel == "" {
		cfg.PrimaryModel = DefaultPrimaryModel
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = DefaultFallbackModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			referer: cfg.Referer,
			title:   cfg.Title,
		},
	}

	impl := &openRouterImpl{}
	for _, name := range []string{cfg.PrimaryModel, cfg.FallbackModel} {
		maxTokens := cfg.MaxTokens
		temperature := cfg.Temperature
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       name,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
			HTTPClient:  httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("openrouter: create chat model %s: %w", name, err)
		}
		impl.models = append(impl.models, namedModel{name: name, gen: cm})
	}
	return impl, nil
}

func (o *openRouterImpl) generate(ctx context.Context, m namedModel, system, user string) (string, error) {
	msg, err := m.gen.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", m.name, err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("%s: %w", m.name, ErrEmptyResponse)
	}
	return msg.Content, nil
}

// Chat returns the first non-empty completion.
func (o *openRouterImpl) Chat(ctx context.Context, system, user string) (string, error) {
	var lastErr error
	for _, m := range o.models {
		text, err := o.generate(ctx, m, system, user)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr)
}

// ChatJSON decodes the first completion that carries a parseable JSON object.
// When out implements Validator, a validation failure counts as a parse failure.
func (o *openRouterImpl) ChatJSON(ctx context.Context, system, user string, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("openrouter: ChatJSON needs a non-nil pointer, got %T", out)
	}

	var lastErr error
	for _, m := range o.models {
		text, err := o.generate(ctx, m, system, user)
		if err != nil {
			lastErr = err
			continue
		}

		// Each attempt decodes into a fresh value so a rejected answer leaves no fields behind.
		fresh := reflect.New(rv.Elem().Type())
		if err := DecodeJSON(text, fresh.Interface()); err != nil {
			lastErr = fmt.Errorf("%s: %w", m.name, err)
			continue
		}
		if v, ok := fresh.Interface().(Validator); ok {
			if err := v.Validate(); err != nil {
				lastErr = fmt.Errorf("%s: %w: %v", m.name, ErrInvalidResponse, err)
				continue
			}
		}
		rv.Elem().Set(fresh.Elem())
		return nil
	}
	return fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr)
}
