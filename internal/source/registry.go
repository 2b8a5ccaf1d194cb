package source

import (
	"sort"

	"trend-srv/internal/model"
)

// Fetch limits per source used by the orchestrator.
var defaultLimits = map[string]int{
	model.SourceReddit:       50,
	model.SourceTwitter:      50,
	model.SourceYouTube:      20,
	model.SourceNews:         20,
	model.SourceGoogleTrends: 0,
	model.SourceAmazon:       40,
	model.SourceFlipkart:     40,
}

var catalog = []Info{
	{ID: model.SourceReddit, Name: "Reddit", Description: "Community discussions and reviews"},
	{ID: model.SourceTwitter, Name: "Twitter/X", Description: "Real-time social media mentions"},
	{ID: model.SourceYouTube, Name: "YouTube", Description: "Video reviews and creator coverage"},
	{ID: model.SourceNews, Name: "News", Description: "News articles and press coverage"},
	{ID: model.SourceGoogleTrends, Name: "Google Trends", Description: "Search interest over time and by region"},
	{ID: model.SourceAmazon, Name: "Amazon", Description: "Customer reviews from Amazon"},
	{ID: model.SourceFlipkart, Name: "Flipkart", Description: "Customer reviews from Flipkart"},
}

// DefaultLimit returns the fetch limit used for source id.
func DefaultLimit(id string) int {
	return defaultLimits[id]
}

// Catalog lists every supported source.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Registry maps source ids to adapters.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds a Registry. Later adapters replace earlier ones with the same id.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		if a != nil {
			r.adapters[a.Source()] = a
		}
	}
	return r
}

// Get returns the adapter for id.
func (r *Registry) Get(id string) (Adapter, bool) {
	a, ok := r.adapters[id]
	return a, ok
}

// IDs returns the registered source ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
