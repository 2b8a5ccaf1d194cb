package twitter

import (
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

var fallbackTweets = []struct {
	text       string
	likes      int
	retweets   int
	followers  int
	engagement float64
	daysAgo    int
}{
	{"Great experience with %s! Highly recommend it.", 25, 8, 1500, 6.2, 0},
	{"%s is decent but has some room for improvement.", 12, 3, 850, 3.6, 1},
	{"Been using %s for a week now. Overall satisfied with the performance.", 18, 5, 2200, 5.8, 2},
}

// Fallback returns three synthetic tweets about product.
func (a *adapter) Fallback(product string) source.Result {
	posts := make([]model.Post, 0, len(fallbackTweets))
	for _, t := range fallbackTweets {
		posts = append(posts, model.Post{
			Text:            fmt.Sprintf(t.text, product),
			Source:          model.SourceTwitter,
			EngagementScore: t.engagement,
			CreatedAt:       source.DaysAgo(t.daysAgo),
			Extra: &model.PostExtra{Twitter: &model.TwitterExtra{
				Likes:           t.likes,
				Retweets:        t.retweets,
				AuthorFollowers: t.followers,
			}},
		})
	}
	return source.Result{Source: model.SourceTwitter, Posts: posts, Synthetic: true}
}
