package youtube

import (
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

var fallbackVideos = []struct {
	title    string
	desc     string
	views    int64
	likes    int64
	comments int64
}{
	{"%s Review - Detailed Analysis", "Comprehensive review of %s covering all features and performance", 25000, 650, 180},
	{"%s Unboxing and First Impressions", "Unboxing %s and sharing my first impressions", 18000, 420, 95},
	{"Is %s Worth It? Honest Opinion", "My honest opinion about %s after using it", 32000, 780, 240},
	{"%s vs Competition Comparison", "Comparing %s with similar products in the market", 15000, 380, 120},
}

// Fallback returns four synthetic review videos about product.
func (a *adapter) Fallback(product string) source.Result {
	posts := make([]model.Post, 0, len(fallbackVideos))
	for i, v := range fallbackVideos {
		title := fmt.Sprintf(v.title, product)
		posts = append(posts, model.Post{
			Text:            title + " " + fmt.Sprintf(v.desc, product),
			Source:          model.SourceYouTube,
			EngagementScore: engagement(v.views, v.likes, v.comments),
			Verified:        true,
			CreatedAt:       source.DaysAgo(i),
			Extra: &model.PostExtra{YouTube: &model.YouTubeExtra{
				Title:    title,
				Views:    v.views,
				Likes:    v.likes,
				Comments: v.comments,
			}},
		})
	}
	return source.Result{Source: model.SourceYouTube, Posts: posts, Synthetic: true}
}
