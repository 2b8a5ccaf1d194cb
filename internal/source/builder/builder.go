// Package builder assembles the source registry from configuration.
package builder

import (
	"trend-srv/config"
	"trend-srv/internal/source"
	"trend-srv/internal/source/ecommerce"
	"trend-srv/internal/source/googletrends"
	"trend-srv/internal/source/news"
	"trend-srv/internal/source/reddit"
	"trend-srv/internal/source/twitter"
	"trend-srv/internal/source/youtube"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

// Config groups the per-source settings.
type Config struct {
	HTTP         pkgHTTP.ClientConfig
	Reddit       reddit.Config
	Twitter      twitter.Config
	YouTube      youtube.Config
	News         news.Config
	GoogleTrends googletrends.Config
	Amazon       ecommerce.Config
	Flipkart     ecommerce.Config
}

// Build creates all seven adapters. API sources share one client; scrapers get
// their own with more retries and a browser user agent.
func Build(l log.Logger, cfg Config) *source.Registry {
	apiCfg := cfg.HTTP
	if apiCfg.Timeout <= 0 {
		apiCfg = pkgHTTP.DefaultConfig()
	}
	apiClient := pkgHTTP.NewClient(apiCfg)

	scrapeCfg := apiCfg
	scrapeCfg.Retries = ecommerce.DefaultRetries
	if scrapeCfg.UserAgent == "" {
		scrapeCfg.UserAgent = pkgHTTP.DefaultUserAgent
	}
	scrapeClient := pkgHTTP.NewClient(scrapeCfg)

	tw := cfg.Twitter
	if tw.Timeout <= 0 {
		tw.Timeout = apiCfg.Timeout
	}

	return source.NewRegistry(
		reddit.New(l, apiClient, cfg.Reddit),
		twitter.New(l, tw),
		youtube.New(l, apiClient, cfg.YouTube),
		news.New(l, apiClient, cfg.News),
		googletrends.New(l, scrapeClient, cfg.GoogleTrends),
		ecommerce.NewAmazon(l, scrapeClient, cfg.Amazon),
		ecommerce.NewFlipkart(l, scrapeClient, cfg.Flipkart),
	)
}

// FromConfig maps the service configuration onto the per-source settings.
func FromConfig(cfg *config.Config) Config {
	httpCfg := pkgHTTP.DefaultConfig()
	if cfg.SourceHTTP.Timeout > 0 {
		httpCfg.Timeout = cfg.SourceHTTP.Timeout
	}
	if cfg.SourceHTTP.Retries > 0 {
		httpCfg.Retries = cfg.SourceHTTP.Retries
	}
	if cfg.SourceHTTP.RetryWait > 0 {
		httpCfg.RetryWait = cfg.SourceHTTP.RetryWait
	}
	if cfg.SourceHTTP.MaxRetryWait > 0 {
		httpCfg.MaxRetryWait = cfg.SourceHTTP.MaxRetryWait
	}
	if cfg.SourceHTTP.RateLimit > 0 {
		httpCfg.RateLimit = cfg.SourceHTTP.RateLimit
		httpCfg.Burst = cfg.SourceHTTP.Burst
	}
	if cfg.SourceHTTP.UserAgent != "" {
		httpCfg.UserAgent = cfg.SourceHTTP.UserAgent
	}

	return Config{
		HTTP: httpCfg,
		Reddit: reddit.Config{
			ClientID:     cfg.Reddit.ClientID,
			ClientSecret: cfg.Reddit.ClientSecret,
			UserAgent:    cfg.Reddit.UserAgent,
			Subreddits:   cfg.Reddit.Subreddits,
			Pace:         cfg.Reddit.Pace,
		},
		Twitter: twitter.Config{
			BearerToken: cfg.Twitter.BearerToken,
			Timeout:     httpCfg.Timeout,
		},
		YouTube: youtube.Config{
			APIKey: cfg.YouTube.APIKey,
		},
		News: news.Config{
			APIKey:   cfg.News.APIKey,
			Language: cfg.News.Language,
			Country:  cfg.News.Country,
		},
		GoogleTrends: googletrends.Config{
			Timeframe: cfg.GoogleTrends.Timeframe,
			Language:  cfg.GoogleTrends.Language,
			TZ:        cfg.GoogleTrends.TZ,
		},
		Amazon: ecommerce.Config{
			BaseURL:     cfg.Ecommerce.AmazonBaseURL,
			MaxListings: cfg.Ecommerce.MaxListings,
		},
		Flipkart: ecommerce.Config{
			BaseURL:     cfg.Ecommerce.FlipkartBaseURL,
			MaxListings: cfg.Ecommerce.MaxListings,
		},
	}
}
