package scoring

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/okian/talkscore/internal/domain/model"
)

// Default engine configuration constants.
const (
	defaultDurationSeconds = 30
	defaultMinDuration     = 1
)

// Engine orchestrates the criterion scorers. It holds no mutable state and
// may be shared by concurrent callers.
type Engine struct {
	scorers         []Scorer
	now             func() time.Time
	newID           func() string
	defaultDuration float64
	minDuration     float64
}

// NewEngine creates an Engine with the five rubric scorers.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scorers:         DefaultScorers(),
		now:             time.Now,
		newID:           uuid.NewString,
		defaultDuration: defaultDurationSeconds,
		minDuration:     defaultMinDuration,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.defaultDuration < e.minDuration {
		e.defaultDuration = e.minDuration
	}

	return e
}

// Score evaluates transcript and returns a fresh result. It never fails;
// callers validate word count before calling.
func (e *Engine) Score(transcript string, opts model.Options) model.ScoreResult {
	in := NewInput(transcript, e.Duration(opts))

	criteria := make([]model.CriterionScore, 0, len(e.scorers))
	var sum float64
	for _, s := range e.scorers {
		c := s.Score(in)
		criteria = append(criteria, c)
		sum += c.Score
	}

	// opts.RunNLP is accepted but has no effect yet.
	return model.ScoreResult{
		ID:             e.newID(),
		Timestamp:      e.now().UTC().Format(time.RFC3339),
		OverallScore:   int(math.Round(sum)),
		WordCount:      in.Stats.Total,
		WPM:            round2(in.WPM),
		Criteria:       criteria,
		Evidence:       CollectEvidence(in),
		TranscriptText: transcript,
	}
}

// Duration resolves the effective duration for opts: absent, zero or NaN
// selects the default, anything below the minimum is clamped up to it.
func (e *Engine) Duration(opts model.Options) float64 {
	d := opts.Duration()
	if d == 0 || math.IsNaN(d) {
		return e.defaultDuration
	}
	return math.Max(d, e.minDuration)
}
