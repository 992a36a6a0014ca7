// Package textutils holds the text handling behind message interpretation:
// tokenizing, keyword detection and amount/description extraction.
package textutils

import (
	"strings"
	"unicode"
)

// Normalize trims and lower-cases a message for matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// trimEdges removes punctuation and symbols around a word, keeping inner
// hyphens and separators ("vale-refeição", "12,50").
func trimEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Tokens splits text on whitespace and returns the lower-cased words with
// surrounding punctuation removed. Empty words are dropped.
func Tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := trimEdges(f); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// ContainsKeyword reports whether keyword occurs in text. Single-word
// keywords must match a whole word, so "va" does not fire on "uva";
// phrases ("vale refeição") match as a substring of the normalized text.
func ContainsKeyword(text, keyword string) bool {
	keyword = Normalize(keyword)
	if keyword == "" {
		return false
	}
	normalized := Normalize(text)
	if strings.ContainsAny(keyword, " \t") {
		return strings.Contains(normalized, keyword)
	}
	for _, tok := range Tokens(normalized) {
		if tok == keyword {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any keyword occurs in text.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if ContainsKeyword(text, kw) {
			return true
		}
	}
	return false
}

// IsNumeric reports whether a word is made only of digits and decimal separators.
func IsNumeric(word string) bool {
	if word == "" {
		return false
	}
	hasDigit := false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return hasDigit
}
