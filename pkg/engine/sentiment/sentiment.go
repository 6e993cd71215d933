// Package sentiment scores free text against an embedded AFINN-style
// lexicon. Scores are computed once at save time and stored with the
// entry; nothing in the engine re-scores historical text.
package sentiment

import (
	"strings"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

// Analyze returns the lexicon score for text. Blank input yields the
// zero-valued result, never an error.
func Analyze(text string) model.SentimentData {
	result := model.SentimentData{
		Positive: []string{},
		Negative: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	tokens := Tokenize(text)
	result.WordCount = len(tokens)
	if len(tokens) == 0 {
		return result
	}

	for _, tok := range tokens {
		v, ok := lexicon[tok]
		if !ok {
			continue
		}
		result.Score += v
		if v > 0 {
			result.Positive = append(result.Positive, tok)
		} else {
			result.Negative = append(result.Negative, tok)
		}
	}
	result.Comparative = float64(result.Score) / float64(result.WordCount)
	return result
}

// Tokenize lower-cases text, splits on whitespace and strips surrounding
// punctuation. Inner apostrophes survive ("can't").
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !isWordRune(r)
		})
		tok = strings.Trim(tok, "'")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '\'' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') || r > 127
}
