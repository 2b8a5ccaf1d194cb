package ecommerce

import (
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

// Fallback returns the marketplace's synthetic reviews of product.
func (a *adapter) Fallback(product string) source.Result {
	posts := make([]model.Post, 0, len(a.site.fallback))
	for _, r := range a.site.fallback {
		posts = append(posts, model.Post{
			Text:            fmt.Sprintf(r.text, product),
			Source:          a.site.id,
			EngagementScore: r.engagement,
			Rating:          r.rating,
			Verified:        r.verified,
			CreatedAt:       source.DaysAgo(r.daysAgo),
			Extra: &model.PostExtra{Review: &model.ReviewExtra{
				HelpfulVotes: r.helpful,
				ProductTitle: product,
			}},
		})
	}
	return source.Result{Source: a.site.id, Posts: posts, Synthetic: true}
}
