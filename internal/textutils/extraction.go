package textutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/financas/internal/currencyutils"
	"fjacquet/financas/internal/models"
)

const numberToken = `\d+(?:[.,]\d+)*`

// amountPatterns are tried in order; the first one yielding a parseable
// amount wins. An explicit currency marker beats a bare number, so
// "comprei 2 pães, 10 reais" records 10.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)r\$\s*(` + numberToken + `)`),
	regexp.MustCompile(`(?i)(` + numberToken + `)\s*(?:reais|real|r\$)`),
	regexp.MustCompile(`(` + numberToken + `)`),
}

// DefaultStopWords are removed from a message when deriving its description.
var DefaultStopWords = []string{
	"gastei", "usei", "paguei", "comprei", "recebi", "foi",
	"de", "do", "da", "dos", "das", "no", "na", "nos", "nas", "em",
	"com", "por", "para", "pra", "pro", "ao",
	"r$", "reais", "real",
}

// Extractor pulls a monetary amount and a residual description out of a
// free-text message. It has no state besides its stop-word set.
type Extractor struct {
	stopWords map[string]struct{}
}

// NewExtractor builds an Extractor. A nil or empty list uses DefaultStopWords.
func NewExtractor(stopWords []string) *Extractor {
	if len(stopWords) == 0 {
		stopWords = DefaultStopWords
	}
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[Normalize(w)] = struct{}{}
	}
	return &Extractor{stopWords: set}
}

// Extract finds the amount in text and returns it with the description left
// once the amount, stop words and stray numbers are removed. found is false
// when text carries no amount, in which case the other results are empty.
func (e *Extractor) Extract(text string) (amount decimal.Decimal, description string, found bool) {
	for _, pattern := range amountPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			value, err := currencyutils.ParseAmount(text[loc[2]:loc[3]])
			if err != nil {
				continue
			}
			residual := text[:loc[0]] + " " + text[loc[1]:]
			return value, e.Describe(residual), true
		}
	}
	return decimal.Zero, "", false
}

// Describe strips stop words and numeric words from text and collapses the
// whitespace. An empty result becomes models.DescriptionNone.
func (e *Extractor) Describe(text string) string {
	kept := make([]string, 0)
	for _, word := range strings.Fields(text) {
		bare := strings.ToLower(strings.Trim(word, ",.;:!?"))
		core := strings.ToLower(trimEdges(word))
		if core == "" || e.isStopWord(bare) || e.isStopWord(core) || IsNumeric(core) {
			continue
		}
		kept = append(kept, word)
	}

	description := strings.Trim(strings.Join(kept, " "), " ,.;:-")
	if description == "" {
		return models.DescriptionNone
	}
	return description
}

func (e *Extractor) isStopWord(w string) bool {
	_, ok := e.stopWords[w]
	return ok
}
