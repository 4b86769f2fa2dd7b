package scoring

import (
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
)

// SpeechRateScorer bands words per minute.
type SpeechRateScorer struct {
	ladder rubric.Ladder
}

// NewSpeechRateScorer creates a SpeechRateScorer.
func NewSpeechRateScorer() *SpeechRateScorer {
	return &SpeechRateScorer{ladder: rubric.SpeechRateLadder()}
}

// Name implements Scorer.
func (s *SpeechRateScorer) Name() string { return rubric.SpeechRate }

// Score implements Scorer.
func (s *SpeechRateScorer) Score(in Input) model.CriterionScore {
	band := s.ladder.Band(in.WPM)
	return model.CriterionScore{
		Name:     rubric.SpeechRate,
		Score:    float64(band.Score),
		MaxScore: rubric.MaxSpeechRate,
		Details: map[string]any{
			"wpm":        round2(in.WPM),
			"wpm_bucket": band.Label,
		},
	}
}
