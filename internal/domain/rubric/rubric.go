// Package rubric holds the fixed tables the scorers and the evidence
// collector share: criterion names and maxima, keyword phrases, filler and
// sentiment words. Tables are unexported and handed out as copies so no
// caller can change them at runtime.
package rubric

import (
	"slices"
	"strings"
)

// Criterion names, in result order.
const (
	ContentStructure = "Content & Structure"
	SpeechRate       = "Speech Rate"
	LanguageGrammar  = "Language & Grammar"
	Clarity          = "Clarity"
	Engagement       = "Engagement"
)

// Criterion maxima. They sum to MaxOverall.
const (
	MaxContentStructure = 40
	MaxSpeechRate       = 10
	MaxLanguageGrammar  = 20
	MaxClarity          = 15
	MaxEngagement       = 15

	MaxOverall = MaxContentStructure + MaxSpeechRate + MaxLanguageGrammar + MaxClarity + MaxEngagement
)

// Keyword is a phrase worth a fixed number of points when present.
type Keyword struct {
	Phrase string
	Points int
}

var ( //nolint:gochecknoglobals // read-only rubric tables
	criteria = []string{ContentStructure, SpeechRate, LanguageGrammar, Clarity, Engagement}

	maxScores = map[string]int{
		ContentStructure: MaxContentStructure,
		SpeechRate:       MaxSpeechRate,
		LanguageGrammar:  MaxLanguageGrammar,
		Clarity:          MaxClarity,
		Engagement:       MaxEngagement,
	}

	mandatoryKeywords = []Keyword{
		{Phrase: "my name is", Points: 4},
		{Phrase: "years old", Points: 4},
		{Phrase: "class", Points: 4},
		{Phrase: "school", Points: 4},
	}

	optionalKeywords = []Keyword{
		{Phrase: "hobby", Points: 2},
		{Phrase: "enjoy", Points: 2},
		{Phrase: "like to", Points: 2},
		{Phrase: "family", Points: 2},
		{Phrase: "free time", Points: 2},
	}

	// Multi-word entries are listed for completeness; only single tokens are counted.
	fillerWords = []string{
		"um", "uh", "like", "you know", "so", "actually", "basically", "right",
		"i mean", "well", "kinda", "sort of", "okay", "hmm", "ah",
	}

	positiveWords = []string{"excited", "great", "happy", "enjoy", "love", "wonderful", "excellent", "good", "like", "best"}
	negativeWords = []string{"bad", "hate", "terrible", "awful", "worst", "dislike", "poor"}

	singleFillers = wordSet(fillerWords)
	positiveSet   = wordSet(positiveWords)
	negativeSet   = wordSet(negativeWords)
)

// Criteria returns the criterion names in result order.
func Criteria() []string { return slices.Clone(criteria) }

// MaxScore returns the maximum score of a criterion, or 0 for an unknown name.
func MaxScore(name string) int { return maxScores[name] }

// MandatoryKeywords returns the must-have phrases in table order.
func MandatoryKeywords() []Keyword { return slices.Clone(mandatoryKeywords) }

// OptionalKeywords returns the good-to-have phrases in table order.
func OptionalKeywords() []Keyword { return slices.Clone(optionalKeywords) }

// AllKeywords returns mandatory then optional phrases.
func AllKeywords() []Keyword {
	return slices.Concat(mandatoryKeywords, optionalKeywords)
}

// FillerWords returns every filler entry, including multi-word ones.
func FillerWords() []string { return slices.Clone(fillerWords) }

// PositiveWords returns the positive sentiment list.
func PositiveWords() []string { return slices.Clone(positiveWords) }

// NegativeWords returns the negative sentiment list.
func NegativeWords() []string { return slices.Clone(negativeWords) }

// IsFiller reports whether tok is a single-word filler.
func IsFiller(tok string) bool { return singleFillers[tok] }

// IsPositive reports whether tok is a positive sentiment word.
func IsPositive(tok string) bool { return positiveSet[tok] }

// IsNegative reports whether tok is a negative sentiment word.
func IsNegative(tok string) bool { return negativeSet[tok] }

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if !strings.Contains(w, " ") {
			set[w] = true
		}
	}
	return set
}
