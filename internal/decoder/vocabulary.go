package decoder

import "strings"

// Weekdays is the canonical weekday vocabulary, Monday first. Both the UI that
// populates days and the recurrence matcher use these exact spellings.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Methods is the canonical notification channel vocabulary.
var Methods = []string{
	"Push Notification", "Email", "In-App Alert", "SMS",
}

// Vocabulary is the scan order used by MatchVocabulary: weekdays, then methods.
var Vocabulary = append(append([]string{}, Weekdays...), Methods...)

// MatchVocabulary returns every vocabulary entry that occurs in s as a
// case-insensitive substring, in vocabulary order.
func MatchVocabulary(s string) []string {
	lower := strings.ToLower(s)
	var out []string
	for _, word := range Vocabulary {
		if strings.Contains(lower, strings.ToLower(word)) {
			out = append(out, word)
		}
	}
	return out
}

// canonical returns the vocabulary spelling of s when s is exactly a
// vocabulary entry ignoring case and surrounding space.
func canonical(s string) (string, bool) {
	t := strings.TrimSpace(s)
	for _, word := range Vocabulary {
		if strings.EqualFold(t, word) {
			return word, true
		}
	}
	return "", false
}
