package generator

import (
	"encoding/json"
	"strings"
)

// ParseCandidates extracts a JSON array of candidate objects from raw
// generation output. The text is untrusted: it may be fenced in markdown,
// wrapped in prose, or not JSON at all. It never panics on malformed
// input; it returns either the decoded objects or a *ParseError.
func ParseCandidates(raw string) ([]map[string]interface{}, error) {
	cleaned := stripCodeFences(raw)

	if candidates, ok := decodeArray(cleaned); ok {
		return candidates, nil
	}

	// The model often wraps the array in explanatory prose. Take the
	// first '[' through the last ']' and try again.
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if candidates, ok := decodeArray(cleaned[start : end+1]); ok {
			return candidates, nil
		}
	}

	return nil, &ParseError{Reason: "no valid array found"}
}

func decodeArray(s string) ([]map[string]interface{}, bool) {
	var candidates []map[string]interface{}
	if err := json.Unmarshal([]byte(s), &candidates); err != nil {
		return nil, false
	}
	return candidates, true
}

// stripCodeFences removes a leading ```json (or bare ```) marker and a
// trailing ``` marker, trimming surrounding whitespace.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
