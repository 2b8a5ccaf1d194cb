package openrouter

import "time"

const (
	// BaseURL is the OpenAI compatible endpoint root.
	BaseURL = "https://openrouter.ai/api/v1"

	DefaultPrimaryModel  = "mistralai/mixtral-8x7b-instruct"
	DefaultFallbackModel = "mistralai/mistral-7b-instruct"

	DefaultTemperature = 0.1
	DefaultMaxTokens   = 1500
	DefaultTimeout     = 60 * time.Second

	DefaultTitle   = "Product Trend Predictor"
	DefaultReferer = "http://localhost:8080"

	// AnalystRole is the system message shared by every analysis prompt.
	AnalystRole = "You are a senior product analyst specialized in trend prediction and sentiment analysis."
)
