package scoring

import (
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
	"github.com/okian/talkscore/internal/domain/text"
)

// ClarityScorer penalizes filler words.
type ClarityScorer struct {
	ladder rubric.Ladder
}

// NewClarityScorer creates a ClarityScorer.
func NewClarityScorer() *ClarityScorer {
	return &ClarityScorer{ladder: rubric.FillerRateLadder()}
}

// Name implements Scorer.
func (s *ClarityScorer) Name() string { return rubric.Clarity }

// Score implements Scorer.
func (s *ClarityScorer) Score(in Input) model.CriterionScore {
	count := len(Fillers(in.Stats.Tokens))
	rate := ratio(count, in.Stats.Total, 100)

	return model.CriterionScore{
		Name:     rubric.Clarity,
		Score:    float64(s.ladder.Score(rate)),
		MaxScore: rubric.MaxClarity,
		Details: map[string]any{
			"filler_rate":  round2(rate),
			"filler_count": count,
		},
	}
}

// Fillers returns the single-word fillers among tokens, in order, with edge
// punctuation removed. Multi-word filler phrases are not counted.
func Fillers(tokens []string) []string {
	found := []string{}
	for _, tok := range tokens {
		if f := text.MatchForm(tok); rubric.IsFiller(f) {
			found = append(found, f)
		}
	}
	return found
}
