package scoring

import (
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
	"github.com/okian/talkscore/internal/domain/text"
)

const neutralPositivity = 0.5

// EngagementScorer estimates positivity from sentiment word counts.
type EngagementScorer struct {
	ladder rubric.Ladder
}

// NewEngagementScorer creates an EngagementScorer.
func NewEngagementScorer() *EngagementScorer {
	return &EngagementScorer{ladder: rubric.PositivityLadder()}
}

// Name implements Scorer.
func (s *EngagementScorer) Name() string { return rubric.Engagement }

// Score implements Scorer.
func (s *EngagementScorer) Score(in Input) model.CriterionScore {
	var pos, neg int
	for _, tok := range in.Stats.Tokens {
		w := text.MatchForm(tok)
		switch {
		case rubric.IsPositive(w):
			pos++
		case rubric.IsNegative(w):
			neg++
		}
	}

	positivity := neutralPositivity
	if pos+neg > 0 {
		positivity = ratio(pos, pos+neg, 1)
	}

	return model.CriterionScore{
		Name:     rubric.Engagement,
		Score:    float64(s.ladder.Score(positivity)),
		MaxScore: rubric.MaxEngagement,
		Details: map[string]any{
			"sentiment_positivity": round3(positivity),
			"positive_words_found": pos,
		},
	}
}
