package ecommerce

import (
	"net/url"
	"strings"

	"trend-srv/internal/model"
)

// site describes how one marketplace lays out search results and reviews.
type site struct {
	id string

	searchPath  string
	searchParam string

	listing      string
	listingTitle string
	listingLink  string

	review        string
	reviewBody    string
	reviewTitle   string
	reviewRating  string
	reviewHelpful string
	reviewDate    string
	reviewBadge   string

	// reviewsURL maps a product page to the page that lists its reviews.
	reviewsURL func(productURL string) string

	fallback []fallbackReview
}

type fallbackReview struct {
	text       string
	rating     int
	verified   bool
	helpful    int
	daysAgo    int
	engagement float64
}

var amazonSite = site{
	id:          model.SourceAmazon,
	searchPath:  "/s",
	searchParam: "k",

	listing:      `div[data-component-type="s-search-result"]`,
	listingTitle: "h2",
	listingLink:  "h2 a, a.a-link-normal.s-no-outline",

	review:        `div[data-hook="review"]`,
	reviewBody:    `span[data-hook="review-body"]`,
	reviewTitle:   `[data-hook="review-title"]`,
	reviewRating:  `i[data-hook="review-star-rating"], i[data-hook="cmps-review-star-rating"]`,
	reviewHelpful: `span[data-hook="helpful-vote-statement"]`,
	reviewDate:    `span[data-hook="review-date"]`,
	reviewBadge:   `span[data-hook="avp-badge"]`,

	reviewsURL: func(productURL string) string { return productURL },

	fallback: []fallbackReview{
		{"The %s exceeded my expectations. Great build quality and performance.", 5, true, 15, 3, 8.5},
		{"Good %s but could be better. Worth the price though.", 4, true, 8, 7, 6.2},
		{"Average %s. Does what it's supposed to do but nothing special.", 3, false, 2, 12, 3.1},
	},
}

var flipkartSite = site{
	id:          model.SourceFlipkart,
	searchPath:  "/search",
	searchParam: "q",

	listing:      `a[href*="/p/"]`,
	listingTitle: "div.KzDlHZ, div._4rR01T, a.wjcEIp, a.s1Q9rs",
	listingLink:  "",

	review:        "div._16PBlm, div._1AtVbE, div.col.EPCmJX",
	reviewBody:    "div.t-ZTKy, div._1BK7XL, div.ZmyHeo",
	reviewTitle:   "p._2-N8zT, p.z9E0IG",
	reviewRating:  "div._3LWZlK, div.hGSR34, div.XQDdHH",
	reviewHelpful: "span._1LM2RL, span._1i2ddd, span.tl9VpF",
	reviewDate:    "p._2sc7ZR, p._2NrMjg",
	reviewBadge:   "p._2mcZGG, p.Zhmv6U",

	reviewsURL: func(productURL string) string {
		if strings.Contains(productURL, "/p/") {
			return strings.Replace(productURL, "/p/", "/product-reviews/", 1)
		}
		return strings.TrimRight(productURL, "/") + "/product-reviews/"
	},

	fallback: []fallbackReview{
		{"Excellent %s! Fast delivery and authentic product. Highly recommended.", 5, true, 12, 2, 7.8},
		{"Good %s with decent features. Value for money purchase.", 4, true, 6, 6, 5.5},
	},
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// searchQuery drops stop words so marketplace search ranks the exact model higher.
func searchQuery(product string) string {
	words := strings.Fields(strings.ToLower(product))
	out := words[:0]
	for _, w := range words {
		if _, ok := stopWords[w]; !ok {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// absoluteURL resolves href against base and drops the query string.
func absoluteURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	u := b.ResolveReference(ref)
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
