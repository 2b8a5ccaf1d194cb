package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"
)

func (a *adapter) Source() string {
	return model.SourceTwitter
}

// Fetch runs a recent search for product, excluding retweets.
func (a *adapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	if a.cfg.BearerToken == "" {
		return source.Result{}, fmt.Errorf("%w: twitter bearer token", source.ErrMissingCredential)
	}
	if limit <= 0 {
		limit = source.DefaultLimit(model.SourceTwitter)
	}

	resp, err := a.search(ctx, product, limit)
	if err != nil {
		a.l.Warnf(ctx, "source.twitter.Fetch: recent search failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}
	if resp.Raw == nil || len(resp.Raw.Tweets) == 0 {
		a.l.Warnf(ctx, "source.twitter.Fetch: no tweets for %q, using fallback", product)
		return a.Fallback(product), nil
	}

	followers := make(map[string]int)
	verified := make(map[string]bool)
	if resp.Raw.Includes != nil {
		for _, u := range resp.Raw.Includes.Users {
			if u == nil {
				continue
			}
			verified[u.ID] = u.Verified
			if u.PublicMetrics != nil {
				followers[u.ID] = u.PublicMetrics.Followers
			}
		}
	}

	posts := make([]model.Post, 0, len(resp.Raw.Tweets))
	for _, tw := range resp.Raw.Tweets {
		if tw == nil || tw.Text == "" {
			continue
		}
		var likes, retweets, replies int
		if tw.PublicMetrics != nil {
			likes = tw.PublicMetrics.Likes
			retweets = tw.PublicMetrics.Retweets
			replies = tw.PublicMetrics.Replies
		}
		posts = append(posts, model.Post{
			Text:            tw.Text,
			Source:          model.SourceTwitter,
			EngagementScore: engagement(likes, retweets),
			Verified:        verified[tw.AuthorID],
			CreatedAt:       parseCreatedAt(tw.CreatedAt),
			Extra: &model.PostExtra{Twitter: &model.TwitterExtra{
				TweetID:         tw.ID,
				Likes:           likes,
				Retweets:        retweets,
				Replies:         replies,
				AuthorFollowers: followers[tw.AuthorID],
			}},
		})
		if len(posts) >= limit {
			break
		}
	}
	if len(posts) == 0 {
		return a.Fallback(product), nil
	}
	return source.Result{Source: model.SourceTwitter, Posts: posts}, nil
}

func (a *adapter) search(ctx context.Context, product string, limit int) (*gotwitter.TweetRecentSearchResponse, error) {
	n := limit
	if n < minResults {
		n = minResults
	}
	if n > maxResults {
		n = maxResults
	}
	opts := gotwitter.TweetRecentSearchOpts{
		Expansions:  []gotwitter.Expansion{gotwitter.ExpansionAuthorID},
		TweetFields: []gotwitter.TweetField{gotwitter.TweetFieldCreatedAt, gotwitter.TweetFieldPublicMetrics, gotwitter.TweetFieldAuthorID},
		UserFields:  []gotwitter.UserField{gotwitter.UserFieldPublicMetrics, gotwitter.UserFieldVerified},
		MaxResults:  n,
	}
	query := fmt.Sprintf("%q -is:retweet lang:en", product)

	var lastErr error
	for attempt := 0; attempt <= a.retries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * a.cfg.RetryWait
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
		resp, err := a.client.TweetRecentSearch(ctx, query, opts)
		if err == nil {
			return resp, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// retryable reports whether a failed search may succeed on a later attempt:
// rate limiting, server errors and transport failures.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gotwitter.ErrParameter) {
		return false
	}

	var errResp *gotwitter.ErrorResponse
	if errors.As(err, &errResp) {
		return retryableStatus(errResp.StatusCode)
	}
	var httpErr *gotwitter.HTTPError
	if errors.As(err, &httpErr) {
		return retryableStatus(httpErr.StatusCode)
	}
	var decodeErr *gotwitter.ResponseDecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	return true
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func engagement(likes, retweets int) float64 {
	return float64(likes)*0.4 + float64(retweets)*0.6
}

func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
