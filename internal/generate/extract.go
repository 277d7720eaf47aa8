package generate

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Models wrap the payload in prose, code fences, or a root object more often
// than they return a bare array. ExtractArray walks an ordered fallback chain:
//
//  1. empty text fails immediately,
//  2. first bracketed substring (greedy across newlines) parsed as an array,
//  3. the whole text parsed as JSON; a root object is scanned for the first
//     value that is a non-empty array of objects,
//  4. otherwise extraction fails, carrying a short snippet for diagnostics.
func ExtractArray(raw string) ([]json.RawMessage, *AttemptError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &AttemptError{Kind: KindEmptyResponse, Detail: "model returned no text"}
	}

	if m := arrayPattern.FindString(trimmed); m != "" {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(m), &items); err == nil {
			return items, nil
		}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
		return items, nil
	}

	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return scanObjectForArray(trimmed)
	}

	return nil, &AttemptError{Kind: KindExtractionFailed, Detail: snippet(raw)}
}

var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// scanObjectForArray walks the root object's values in document order and
// returns the first non-empty array whose elements are all objects.
func scanObjectForArray(s string) ([]json.RawMessage, *AttemptError) {
	dec := json.NewDecoder(strings.NewReader(s))
	if _, err := dec.Token(); err != nil {
		return nil, &AttemptError{Kind: KindExtractionFailed, Detail: snippet(s)}
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			break
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			break
		}
		if items, ok := objectArray(val); ok {
			return items, nil
		}
	}
	return nil, &AttemptError{Kind: KindNoArrayFound, Detail: "response object holds no array of objects"}
}

func objectArray(val json.RawMessage) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(val, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	for _, item := range items {
		if !isObject(item) {
			return nil, false
		}
	}
	return items, true
}

func isObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "{")
}

// snippet truncates raw text for error detail, cutting on a rune boundary
// so multi-byte text stays valid UTF-8.
func snippet(raw string) string {
	const max = 100
	if len(raw) <= max {
		return raw
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut]
}
