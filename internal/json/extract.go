// Package json extracts JSON payloads from LLM responses.
//
// Models frequently wrap JSON in markdown fences or surround it with
// commentary. These helpers locate the JSON portion, whether it is a
// top-level object or a top-level array, and unmarshal it.
package json

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract returns the JSON portion of a response string.
// It tries, in order:
//  1. the full response (after stripping markdown fences)
//  2. the span between the first '{' and the last '}'
//  3. the span between the first '[' and the last ']'
//
// Brace matching is positional, not a full parse; unbalanced braces inside
// string literals can defeat it.
func Extract(response string) (string, error) {
	response = stripFences(response)

	var probe interface{}
	if err := json.Unmarshal([]byte(response), &probe); err == nil {
		return response, nil
	}

	if s, ok := spanOf(response, '{', '}'); ok {
		return s, nil
	}
	if s, ok := spanOf(response, '[', ']'); ok {
		return s, nil
	}

	preview := response
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return "", fmt.Errorf("no valid JSON in response: %q", preview)
}

// Unmarshal extracts JSON from a response and decodes it into T.
func Unmarshal[T any](response string) (T, error) {
	var result T
	raw, err := Extract(response)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return result, fmt.Errorf("unmarshal extracted JSON: %w", err)
	}
	return result, nil
}

// spanOf returns the substring between the first open and last close
// delimiter, if that substring is valid JSON.
func spanOf(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(s, close)
	if end <= start {
		return "", false
	}
	candidate := s[start : end+1]
	var probe interface{}
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return "", false
	}
	return candidate, true
}

// stripFences removes ```json / ``` markers around a response.
func stripFences(response string) string {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```json"))
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
	}
	return trimmed
}
