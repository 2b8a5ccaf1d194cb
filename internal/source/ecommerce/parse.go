package ecommerce

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"trend-srv/pkg/util"
)

var (
	numberRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	dateRe   = regexp.MustCompile(`(\d{1,2} [A-Z][a-z]+ \d{4}|[A-Z][a-z]+ \d{1,2}, \d{4}|[A-Z][a-z]{2}, \d{4})`)
)

// parseRating reads the leading number of strings such as "4.0 out of 5 stars".
func parseRating(s string) int {
	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0
	}
	return int(util.Clamp(f, 0, 5))
}

// parseHelpful reads vote statements such as "15 people found this helpful".
func parseHelpful(s string) int {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0
	}
	if strings.HasPrefix(s, "one ") {
		return 1
	}
	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// parseReviewDate extracts the date from strings such as "Reviewed in India on 3 March 2024".
func parseReviewDate(s string, now time.Time) time.Time {
	m := dateRe.FindString(s)
	for _, layout := range []string{"2 January 2006", "January 2, 2006", "Jan, 2006"} {
		if t, err := time.Parse(layout, m); err == nil {
			return t.UTC()
		}
	}
	return now.UTC()
}

func engagement(text string, helpful, rating int) float64 {
	e := float64(len(text))/50 + util.Clamp(float64(helpful)*0.5, 0, 5) + float64(rating)*0.3
	if e > 10 {
		return 10
	}
	return e
}
