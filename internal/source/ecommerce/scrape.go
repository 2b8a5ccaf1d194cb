package ecommerce

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
	"trend-srv/pkg/util"

	"github.com/PuerkitoBio/goquery"
)

type listing struct {
	title string
	url   string
}

// Fetch scrapes reviews of the listings whose title refers to product.
func (a *adapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	if limit <= 0 {
		limit = source.DefaultLimit(a.site.id)
	}

	listings, err := a.search(ctx, product)
	if err != nil {
		a.l.Warnf(ctx, "source.ecommerce.Fetch: %s search failed, using fallback: %v", a.site.id, err)
		return a.Fallback(product), nil
	}
	if len(listings) == 0 {
		a.l.Warnf(ctx, "source.ecommerce.Fetch: %s has no listing matching %q, using fallback", a.site.id, product)
		return a.Fallback(product), nil
	}

	posts := make([]model.Post, 0, limit)
	for _, li := range listings {
		if len(posts) >= limit {
			break
		}
		reviews, err := a.reviews(ctx, li)
		if err != nil {
			a.l.Warnf(ctx, "source.ecommerce.Fetch: %s reviews for %s failed: %v", a.site.id, li.url, err)
			continue
		}
		for _, p := range reviews {
			if len(posts) >= limit {
				break
			}
			posts = append(posts, p)
		}
	}

	if len(posts) == 0 {
		a.l.Warnf(ctx, "source.ecommerce.Fetch: %s returned no reviews for %q, using fallback", a.site.id, product)
		return a.Fallback(product), nil
	}
	return source.Result{Source: a.site.id, Posts: posts}, nil
}

func (a *adapter) search(ctx context.Context, product string) ([]listing, error) {
	q := searchQuery(product)
	doc, err := a.document(ctx, a.cfg.BaseURL+a.site.searchPath, map[string]string{
		a.site.searchParam: q,
	})
	if err != nil {
		return nil, err
	}

	var out []listing
	seen := make(map[string]struct{})
	doc.Find(a.site.listing).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title, href := a.listingFields(s)
		if title == "" || href == "" || !util.MentionsProduct(title, q) {
			return true
		}
		u := absoluteURL(a.cfg.BaseURL, href)
		if u == "" {
			return true
		}
		if _, dup := seen[u]; dup {
			return true
		}
		seen[u] = struct{}{}
		out = append(out, listing{title: title, url: u})
		return len(out) < a.cfg.MaxListings
	})
	return out, nil
}

func (a *adapter) listingFields(s *goquery.Selection) (string, string) {
	var href string
	if a.site.listingLink == "" {
		href, _ = s.Attr("href")
	} else {
		href, _ = s.Find(a.site.listingLink).First().Attr("href")
	}

	title := text(s.Find(a.site.listingTitle).First())
	if title == "" {
		if t, ok := s.Attr("title"); ok {
			title = strings.TrimSpace(t)
		}
	}
	if title == "" {
		title = text(s)
	}
	return title, href
}

func (a *adapter) reviews(ctx context.Context, li listing) ([]model.Post, error) {
	doc, err := a.document(ctx, a.site.reviewsURL(li.url), nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var posts []model.Post
	doc.Find(a.site.review).Each(func(_ int, s *goquery.Selection) {
		body := text(s.Find(a.site.reviewBody).First())
		if len(body) < 10 {
			return
		}
		rating := parseRating(text(s.Find(a.site.reviewRating).First()))
		helpful := parseHelpful(text(s.Find(a.site.reviewHelpful).First()))
		posts = append(posts, model.Post{
			Text:            body,
			Source:          a.site.id,
			EngagementScore: engagement(body, helpful, rating),
			Rating:          rating,
			Verified:        s.Find(a.site.reviewBadge).Length() > 0,
			CreatedAt:       parseReviewDate(text(s.Find(a.site.reviewDate).First()), now),
			Extra: &model.PostExtra{Review: &model.ReviewExtra{
				Title:        text(s.Find(a.site.reviewTitle).First()),
				HelpfulVotes: helpful,
				ProductTitle: li.title,
				URL:          li.url,
			}},
		})
	})
	return posts, nil
}

func (a *adapter) document(ctx context.Context, url string, query map[string]string) (*goquery.Document, error) {
	body, status, err := a.http.GetWithQuery(ctx, url, query, map[string]string{
		"Accept":          "text/html,application/xhtml+xml",
		"Accept-Language": "en-US,en;q=0.9",
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("status %d", status)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
