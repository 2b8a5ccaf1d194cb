package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
	"trend-srv/pkg/util"
)

func (a *adapter) Source() string {
	return model.SourceYouTube
}

// Fetch searches videos for product and loads their statistics in one batch call.
func (a *adapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	if a.cfg.APIKey == "" {
		return source.Result{}, fmt.Errorf("%w: youtube api key", source.ErrMissingCredential)
	}
	if limit <= 0 {
		limit = source.DefaultLimit(model.SourceYouTube)
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	ids, err := a.searchIDs(ctx, product, limit)
	if err != nil {
		a.l.Warnf(ctx, "source.youtube.Fetch: search failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}
	if len(ids) == 0 {
		a.l.Warnf(ctx, "source.youtube.Fetch: no videos for %q, using fallback", product)
		return a.Fallback(product), nil
	}

	videos, err := a.videos(ctx, ids)
	if err != nil {
		a.l.Warnf(ctx, "source.youtube.Fetch: statistics failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}

	posts := make([]model.Post, 0, len(videos))
	for _, v := range videos {
		title := strings.TrimSpace(v.Snippet.Title)
		desc := util.Truncate(strings.TrimSpace(v.Snippet.Description), descriptionLimit)
		text := cleanText(util.JoinNonEmpty(" ", title, desc))
		if len(text) < 10 {
			continue
		}
		views := parseCount(v.Statistics.ViewCount)
		likes := parseCount(v.Statistics.LikeCount)
		comments := parseCount(v.Statistics.CommentCount)
		posts = append(posts, model.Post{
			Text:            text,
			Source:          model.SourceYouTube,
			EngagementScore: engagement(views, likes, comments),
			Verified:        true,
			CreatedAt:       parsePublished(v.Snippet.PublishedAt),
			Extra: &model.PostExtra{YouTube: &model.YouTubeExtra{
				VideoID:  v.ID,
				Title:    title,
				Channel:  v.Snippet.ChannelTitle,
				Views:    views,
				Likes:    likes,
				Comments: comments,
			}},
		})
	}
	if len(posts) == 0 {
		return a.Fallback(product), nil
	}
	return source.Result{Source: model.SourceYouTube, Posts: posts}, nil
}

func (a *adapter) searchIDs(ctx context.Context, product string, limit int) ([]string, error) {
	body, status, err := a.http.GetWithQuery(ctx, a.cfg.BaseURL+"/search", map[string]string{
		"q":          product,
		"part":       "snippet",
		"maxResults": strconv.Itoa(limit),
		"type":       "video",
		"order":      "relevance",
		"key":        a.cfg.APIKey,
	}, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search status %d", status)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}
	ids := make([]string, 0, len(sr.Items))
	for _, it := range sr.Items {
		if it.ID.VideoID != "" {
			ids = append(ids, it.ID.VideoID)
		}
	}
	return ids, nil
}

func (a *adapter) videos(ctx context.Context, ids []string) ([]video, error) {
	body, status, err := a.http.GetWithQuery(ctx, a.cfg.BaseURL+"/videos", map[string]string{
		"part": "statistics,snippet",
		"id":   strings.Join(ids, ","),
		"key":  a.cfg.APIKey,
	}, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("videos status %d", status)
	}

	var vr videosResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return vr.Items, nil
}

// engagement is (likes + 2*comments) per thousand views, clamped to [0,100].
func engagement(views, likes, comments int64) float64 {
	if views <= 0 {
		return 0
	}
	e := float64(likes+comments*2) / float64(views) * 1000
	return util.Round(util.Clamp(e, 0, 100), 2)
}

// parseCount keeps only the digits of s.
func parseCount(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func cleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func parsePublished(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
