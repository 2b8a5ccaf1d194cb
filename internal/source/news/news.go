package news

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
	"trend-srv/pkg/util"

	"github.com/PuerkitoBio/goquery"
)

func (a *adapter) Source() string {
	return model.SourceNews
}

// Fetch returns news articles about product. The RSS backend needs no credential.
func (a *adapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	if limit <= 0 {
		limit = source.DefaultLimit(model.SourceNews)
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var (
		articles []article
		err      error
	)
	if a.cfg.APIKey != "" {
		articles, err = a.fromNewsAPI(ctx, product, limit)
	} else {
		articles, err = a.fromRSS(ctx, product, limit)
	}
	if err != nil {
		a.l.Warnf(ctx, "source.news.Fetch: fetch failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}

	posts := make([]model.Post, 0, len(articles))
	for _, ar := range articles {
		text := util.JoinNonEmpty(" ", ar.title, ar.description, ar.content)
		if text == "" {
			continue
		}
		posts = append(posts, model.Post{
			Text:            text,
			Source:          model.SourceNews,
			EngagementScore: engagement(text),
			CreatedAt:       parsePublished(ar.publishedAt),
			Extra: &model.PostExtra{News: &model.NewsExtra{
				Title:     ar.title,
				URL:       ar.url,
				Publisher: ar.publisher,
			}},
		})
	}
	if len(posts) == 0 {
		a.l.Warnf(ctx, "source.news.Fetch: no articles for %q, using fallback", product)
		return a.Fallback(product), nil
	}
	return source.Result{Source: model.SourceNews, Posts: posts}, nil
}

func (a *adapter) fromNewsAPI(ctx context.Context, product string, limit int) ([]article, error) {
	body, status, err := a.http.GetWithQuery(ctx, a.cfg.NewsAPIURL, map[string]string{
		"q":        product,
		"language": a.cfg.Language,
		"sortBy":   "relevancy",
		"pageSize": strconv.Itoa(limit),
	}, map[string]string{"X-Api-Key": a.cfg.APIKey})
	if err != nil {
		return nil, err
	}

	var resp newsAPIResponse
	if jerr := json.Unmarshal(body, &resp); jerr != nil {
		return nil, fmt.Errorf("newsapi status %d: decode: %w", status, jerr)
	}
	if status != http.StatusOK || resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %d: %s %s", status, resp.Code, resp.Message)
	}

	out := make([]article, 0, len(resp.Articles))
	for _, ar := range resp.Articles {
		out = append(out, article{
			title:       ar.Title,
			description: ar.Description,
			content:     ar.Content,
			url:         ar.URL,
			publisher:   ar.Source.Name,
			publishedAt: ar.PublishedAt,
		})
	}
	return out, nil
}

func (a *adapter) fromRSS(ctx context.Context, product string, limit int) ([]article, error) {
	lang := a.cfg.Language
	body, status, err := a.http.GetWithQuery(ctx, a.cfg.RSSURL, map[string]string{
		"q":    product,
		"hl":   lang + "-" + a.cfg.Country,
		"gl":   a.cfg.Country,
		"ceid": a.cfg.Country + ":" + lang,
	}, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("rss status %d", status)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode rss: %w", err)
	}

	out := make([]article, 0, limit)
	for _, it := range feed.Channel.Items {
		if len(out) >= limit {
			break
		}
		out = append(out, article{
			title:       it.Title,
			description: stripHTML(it.Description),
			url:         it.Link,
			publisher:   strings.TrimSpace(it.Source.Name),
			publishedAt: it.PubDate,
		})
	}
	return out, nil
}

// stripHTML returns the visible text of an HTML snippet.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func engagement(text string) float64 {
	return util.Clamp(float64(len(text))/100, 0, 10)
}

func parsePublished(s string) time.Time {
	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
