package openrouter

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSON = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")
	bareObject = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON finds the JSON object in an LLM completion. Preference order:
// a fenced code block, the widest {...} span, then the whole trimmed text.
func ExtractJSON(text string) (string, error) {
	var candidates []string
	if m := fencedJSON.FindStringSubmatch(text); len(m) == 2 {
		candidates = append(candidates, m[1])
	}
	if m := bareObject.FindString(text); m != "" {
		candidates = append(candidates, m)
	}
	candidates = append(candidates, strings.TrimSpace(text))

	for _, c := range candidates {
		if json.Valid([]byte(c)) && strings.HasPrefix(strings.TrimSpace(c), "{") {
			return c, nil
		}
	}
	return "", ErrNoJSON
}

// DecodeJSON extracts the JSON object from text and unmarshals it into out.
func DecodeJSON(text string, out interface{}) error {
	raw, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}
