package usecase

import (
	"strings"
	"unicode/utf8"

	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// filterPosts keeps posts long enough to carry an opinion that refer to product.
// When nothing survives, the first KeepOnEmpty originals are kept so the
// estimator still has something to read.
func (uc *implUseCase) filterPosts(posts []model.Post, product string) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		text := strings.TrimSpace(p.Text)
		if utf8.RuneCountInString(text) < uc.cfg.MinTextLen {
			continue
		}
		if !util.MentionsProduct(text, product) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 0 {
		return out
	}

	n := uc.cfg.KeepOnEmpty
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n]
}
