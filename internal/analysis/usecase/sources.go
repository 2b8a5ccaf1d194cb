package usecase

import (
	"sort"
	"strings"

	"trend-srv/internal/model"
)

// normalizeSources expands "default", drops unknown ids, dedupes and sorts.
// An empty result falls back to the default set.
func (uc *implUseCase) normalizeSources(sources []string) []string {
	seen := make(map[string]struct{}, len(sources))
	out := make([]string, 0, len(sources))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, s := range sources {
		id := strings.ToLower(strings.TrimSpace(s))
		switch {
		case id == model.SourceDefault:
			for _, d := range uc.cfg.DefaultSources {
				add(d)
			}
		case model.IsKnownSource(id):
			add(id)
		}
	}
	if len(out) == 0 {
		for _, d := range uc.cfg.DefaultSources {
			add(d)
		}
	}

	sort.Strings(out)
	return out
}

func knownSources(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if model.IsKnownSource(id) {
			out = append(out, id)
		}
	}
	return out
}

// cacheKey identifies a report by product and its sorted source set. The
// product keeps its casing so a hit never hands back another caller's spelling.
func cacheKey(product string, sources []string) string {
	return "product:" + strings.TrimSpace(product) + ":" + strings.Join(sources, ",")
}
