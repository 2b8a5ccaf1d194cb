package reddit

import (
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

var fallbackTemplates = []struct {
	text      string
	subreddit string
	ups       int
	comments  int
	daysAgo   int
}{
	{"Been using the %s for a few weeks now. Performance is great and battery life is better than I expected.", "technology", 45, 12, 2},
	{"Is the %s worth it at this price? Build quality feels good but I have mixed feelings.", "gadgets", 18, 30, 5},
	{"My %s had some issues after the last update and support was slow to respond.", "productreviews", 9, 14, 9},
}

// Fallback returns synthetic community posts about product.
func (a *adapter) Fallback(product string) source.Result {
	posts := make([]model.Post, 0, len(fallbackTemplates))
	for _, t := range fallbackTemplates {
		posts = append(posts, model.Post{
			Text:            fmt.Sprintf(t.text, product),
			Source:          model.SourceReddit,
			EngagementScore: engagement(t.ups, t.comments),
			CreatedAt:       source.DaysAgo(t.daysAgo),
			Extra: &model.PostExtra{Reddit: &model.RedditExtra{
				Subreddit:   t.subreddit,
				Upvotes:     t.ups,
				NumComments: t.comments,
			}},
		})
	}
	return source.Result{Source: model.SourceReddit, Posts: posts, Synthetic: true}
}
