package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
	"trend-srv/pkg/util"
)

func (a *adapter) Source() string {
	return model.SourceReddit
}

// Fetch searches the configured subreddits for product.
func (a *adapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	if a.cfg.ClientID == "" || a.cfg.ClientSecret == "" {
		return source.Result{}, fmt.Errorf("%w: reddit client id and secret", source.ErrMissingCredential)
	}
	if limit <= 0 {
		limit = source.DefaultLimit(model.SourceReddit)
	}

	token, err := a.accessToken(ctx)
	if err != nil {
		a.l.Warnf(ctx, "source.reddit.Fetch: token exchange failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}

	perSub := limit
	if perSub > maxPerSubreddit {
		perSub = maxPerSubreddit
	}

	posts := make([]model.Post, 0, limit)
	for _, sub := range a.cfg.Subreddits {
		if len(posts) >= limit {
			break
		}
		if err := a.pacer.Wait(ctx); err != nil {
			break
		}

		found, err := a.search(ctx, token, sub, product, perSub)
		if err != nil {
			a.l.Warnf(ctx, "source.reddit.Fetch: r/%s search failed: %v", sub, err)
			continue
		}
		for _, p := range found {
			if len(posts) >= limit {
				break
			}
			posts = append(posts, p)
		}
	}

	if len(posts) == 0 {
		a.l.Warnf(ctx, "source.reddit.Fetch: no posts for %q, using fallback", product)
		return a.Fallback(product), nil
	}
	return source.Result{Source: model.SourceReddit, Posts: posts}, nil
}

func (a *adapter) search(ctx context.Context, token, sub, product string, limit int) ([]model.Post, error) {
	url := fmt.Sprintf("%s/r/%s/search", a.cfg.APIBaseURL, sub)
	body, status, err := a.http.GetWithQuery(ctx, url,
		map[string]string{
			"q":           product,
			"limit":       strconv.Itoa(limit),
			"sort":        "relevance",
			"t":           "month",
			"restrict_sr": "true",
		},
		map[string]string{
			"Authorization": "Bearer " + token,
			"User-Agent":    a.cfg.UserAgent,
		})
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		a.invalidateToken()
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("status %d", status)
	}

	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	posts := make([]model.Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		d := child.Data
		text := util.JoinNonEmpty(" ", d.Title, d.Selftext)
		if text == "" {
			continue
		}
		subreddit := d.Subreddit
		if subreddit == "" {
			subreddit = sub
		}
		posts = append(posts, model.Post{
			Text:            text,
			Source:          model.SourceReddit,
			EngagementScore: engagement(d.Ups, d.NumComments),
			CreatedAt:       time.Unix(int64(d.CreatedUTC), 0).UTC(),
			Extra: &model.PostExtra{Reddit: &model.RedditExtra{
				Subreddit:   subreddit,
				Upvotes:     d.Ups,
				NumComments: d.NumComments,
				URL:         permalink(d.Permalink),
				Author:      d.Author,
			}},
		})
	}
	return posts, nil
}

func engagement(ups, comments int) float64 {
	return float64(ups)*0.6 + float64(comments)*0.4
}

func permalink(p string) string {
	if p == "" {
		return ""
	}
	return "https://www.reddit.com" + p
}
