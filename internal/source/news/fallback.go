package news

import (
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

// Fallback returns one synthetic article about product.
func (a *adapter) Fallback(product string) source.Result {
	title := fmt.Sprintf("%s Revolutionizes the Market", product)
	post := model.Post{
		Text:            fmt.Sprintf("%s is changing how we think about technology.", product),
		Source:          model.SourceNews,
		EngagementScore: 8.5,
		CreatedAt:       source.DaysAgo(0),
		Extra: &model.PostExtra{News: &model.NewsExtra{
			Title:     title,
			Publisher: "Tech News",
		}},
	}
	return source.Result{Source: model.SourceNews, Posts: []model.Post{post}, Synthetic: true}
}
