package util

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases s and collapses runs of whitespace to one space.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Words splits s into lowercase alphanumeric words.
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// MentionsProduct reports whether text refers to product.
// The normalized product name must appear as a substring, and every model-number
// token of the product (a token holding a digit) must appear as a whole word, so
// "iPhone 14" matches "my iphone 14 pro" but not "iphone 145".
func MentionsProduct(text, product string) bool {
	p := NormalizeText(product)
	if p == "" {
		return false
	}
	t := NormalizeText(text)
	if !strings.Contains(t, p) {
		return false
	}

	var words map[string]struct{}
	for _, tok := range Words(p) {
		if !hasDigit(tok) {
			continue
		}
		if words == nil {
			words = make(map[string]struct{})
			for _, w := range Words(t) {
				words[w] = struct{}{}
			}
		}
		if _, ok := words[tok]; !ok {
			return false
		}
	}
	return true
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// JoinNonEmpty joins the non-blank parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
