// Package decoder turns the raw days/method fields of a reminder into canonical
// token lists. The backend sometimes serializes these arrays more than once, so
// an element may be a plain token, a JSON array, or a JSON array that has been
// escaped one or more extra times. Decoding never fails: anything that cannot
// be parsed degrades to vocabulary matching and finally to a literal token.
package decoder

import (
	"encoding/json"
	"strings"
)

// MaxUnescapePasses bounds the escape-collapsing loop.
const MaxUnescapePasses = 5

// maxNestedArrays is how many array-looking tokens deep Decode will recurse.
const maxNestedArrays = 1

var collapser = strings.NewReplacer(`\\`, `\`, `\"`, `"`)

// Decode flattens raw into an ordered, deduplicated token list.
func Decode(raw []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, elem := range raw {
		for _, tok := range decodeElement(elem, 0) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

// DecodeOne is Decode for a single raw element.
func DecodeOne(elem string) []string {
	return Decode([]string{elem})
}

func decodeElement(elem string, depth int) []string {
	if tokens, ok := parseEncodedArray(elem, depth); ok {
		return tokens
	}
	if found := MatchVocabulary(elem); len(found) > 0 {
		return found
	}
	literal := strings.TrimSpace(elem)
	if literal == "" {
		return nil
	}
	return []string{literal}
}

// parseEncodedArray strips quoting and escaping one level at a time, trying a
// JSON array parse before each collapse so plain arrays are never damaged.
func parseEncodedArray(elem string, depth int) ([]string, bool) {
	s := stripQuotes(strings.TrimSpace(elem))
	for pass := 0; pass <= MaxUnescapePasses; pass++ {
		if items, ok := parseStringArray(s); ok {
			return expand(items, depth), true
		}
		if pass == MaxUnescapePasses {
			break
		}
		next := stripQuotes(strings.TrimSpace(collapser.Replace(s)))
		if next == s {
			break
		}
		s = next
	}
	return nil, false
}

func expand(items []string, depth int) []string {
	var out []string
	for _, item := range items {
		item = unquoteToken(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if looksLikeArray(item) && depth < maxNestedArrays {
			if nested, ok := parseEncodedArray(item, depth+1); ok {
				out = append(out, nested...)
				continue
			}
		}
		if word, ok := canonical(item); ok {
			out = append(out, word)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Unescape collapses escape sequences until a fixed point is reached or
// MaxUnescapePasses passes have run.
func Unescape(s string) string {
	for pass := 0; pass < MaxUnescapePasses; pass++ {
		next := collapser.Replace(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// stripQuotes removes one enclosing pair of double quotes around a bracketed
// value, e.g. "[\"Monday\"]" as delivered inside an outer array.
func stripQuotes(s string) string {
	if len(s) >= 4 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if looksLikeArray(inner) {
			return inner
		}
	}
	return s
}

// unquoteToken unwraps a token that was serialized as a JSON string twice,
// e.g. "\"Monday\"".
func unquoteToken(s string) string {
	for len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(Unescape(s[1 : len(s)-1]))
	}
	return s
}

func looksLikeArray(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func parseStringArray(s string) ([]string, bool) {
	if !looksLikeArray(s) {
		return nil, false
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	return items, true
}
