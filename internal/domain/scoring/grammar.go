package scoring

import (
	"math"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
	"github.com/okian/talkscore/internal/domain/text"
)

// Grammar estimation constants.
const (
	errorsPerSentence = 0.1
	errorsScale       = 10 // errors per hundred words that zero the grammar ratio
)

// GrammarScorer sums an estimated grammar band and a vocabulary (TTR) band.
// No real grammar checking happens; errors are estimated from sentence count.
type GrammarScorer struct {
	grammar rubric.Ladder
	vocab   rubric.Ladder
}

// NewGrammarScorer creates a GrammarScorer.
func NewGrammarScorer() *GrammarScorer {
	return &GrammarScorer{grammar: rubric.RatioLadder(), vocab: rubric.RatioLadder()}
}

// Name implements Scorer.
func (s *GrammarScorer) Name() string { return rubric.LanguageGrammar }

// Score implements Scorer.
func (s *GrammarScorer) Score(in Input) model.CriterionScore {
	errs := EstimateGrammarErrors(in.Raw)
	perHundred := ratio(errs, in.Stats.Total, 100)
	normalized := math.Max(0, 1-perHundred/errorsScale)

	grammarBand := s.grammar.Score(normalized)
	vocabBand := s.vocab.Score(in.Stats.TTR)

	return model.CriterionScore{
		Name:     rubric.LanguageGrammar,
		Score:    float64(grammarBand + vocabBand),
		MaxScore: rubric.MaxLanguageGrammar,
		Details: map[string]any{
			"grammar_score_band": grammarBand,
			"vocab_score_band":   vocabBand,
			"ttr":                round3(in.Stats.TTR),
			"estimated_errors":   errs,
		},
	}
}

// EstimateGrammarErrors returns floor(sentences * 0.1).
func EstimateGrammarErrors(raw string) int {
	return int(math.Floor(float64(len(text.Sentences(raw))) * errorsPerSentence))
}
