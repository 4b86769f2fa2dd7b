// Package text normalizes transcripts into the token views the scorers use.
package text

import (
	"strings"
	"unicode"
)

// Stats summarizes a token sequence.
type Stats struct {
	Tokens   []string // lowercase, non-empty, original order
	Total    int
	Distinct int
	TTR      float64 // Distinct / Total, 0 for an empty transcript
}

// Normalize lowercases the transcript. Substring rules run on this form.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Tokenize lowercases s and splits it on runs of whitespace. Empty tokens
// never appear, so leading or trailing whitespace does not inflate counts.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// WordCount returns the number of tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// MatchForm strips leading and trailing punctuation so "like," matches "like".
// Inner punctuation such as the apostrophe in "mary's" is kept.
func MatchForm(tok string) string {
	return strings.TrimFunc(tok, unicode.IsPunct)
}

// Analyze tokenizes s and computes counts and the type-token ratio.
func Analyze(s string) Stats {
	tokens := Tokenize(s)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}

	st := Stats{Tokens: tokens, Total: len(tokens), Distinct: len(seen)}
	if st.Total > 0 {
		st.TTR = float64(st.Distinct) / float64(st.Total)
	}
	return st
}

// Sentences splits s on runs of '.', '!' and '?' and drops blank pieces.
func Sentences(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
