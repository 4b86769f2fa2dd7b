// Package scoring evaluates a transcript against the speaking rubric.
//
// Each criterion is an independent Scorer over the same Input. The Engine
// runs them in rubric order, collects evidence and assembles the result.
package scoring

import (
	"math"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/text"
)

// Input is the shared view of a transcript handed to every Scorer.
type Input struct {
	Raw   string     // verbatim transcript
	Lower string     // lowercased transcript, used for substring rules
	Stats text.Stats // tokens, counts and type-token ratio
	WPM   float64    // unrounded words per minute
}

// NewInput prepares the scorer input for a transcript and duration.
// durationSeconds must be positive.
func NewInput(raw string, durationSeconds float64) Input {
	st := text.Analyze(raw)
	return Input{
		Raw:   raw,
		Lower: text.Normalize(raw),
		Stats: st,
		WPM:   float64(st.Total) / durationSeconds * 60,
	}
}

// Scorer computes one rubric criterion. Implementations are pure and safe for
// concurrent use.
type Scorer interface {
	// Name returns the rubric label of the criterion.
	Name() string
	// Score evaluates the criterion; the result never exceeds its max score.
	Score(in Input) model.CriterionScore
}

// DefaultScorers returns the five rubric scorers in result order.
func DefaultScorers() []Scorer {
	return []Scorer{
		NewContentScorer(),
		NewSpeechRateScorer(),
		NewGrammarScorer(),
		NewClarityScorer(),
		NewEngagementScorer(),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// ratio returns num/den*scale, or 0 when den is zero.
func ratio(num, den int, scale float64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * scale
}
