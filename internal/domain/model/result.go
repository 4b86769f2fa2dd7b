// Package model contains domain models passed between layers.
// Field names and JSON tags mirror the ScoreResult schema served by the API
// and written by the history download.
package model

// CriterionScore is the outcome of one rubric criterion.
type CriterionScore struct {
	Name     string         `json:"name"`
	Score    float64        `json:"score"`
	MaxScore float64        `json:"max_score"`
	Details  map[string]any `json:"details"`
}

// EvidenceBundle carries the raw observations behind a score.
type EvidenceBundle struct {
	KeywordsFound      []string `json:"keywords_found"`       // mandatory then optional, table order
	GrammarErrorsCount int      `json:"grammar_errors_count"` // estimated, not checked
	DistinctTokens     int      `json:"distinct_tokens"`
	TotalTokens        int      `json:"total_tokens"`
	FillerWordsList    []string `json:"filler_words_list"` // original order
}

// ScoreResult is the full record produced by one scoring call.
type ScoreResult struct {
	ID             string           `json:"id"`
	Timestamp      string           `json:"timestamp"` // RFC 3339, UTC
	OverallScore   int              `json:"overall_score"`
	WordCount      int              `json:"word_count"`
	WPM            float64          `json:"wpm"`
	Criteria       []CriterionScore `json:"criteria"`
	Evidence       EvidenceBundle   `json:"evidence"`
	TranscriptText string           `json:"transcript_text"`
}

// Options are the caller-supplied scoring options.
type Options struct {
	// RunNLP is reserved for advanced analysis and currently has no effect.
	RunNLP bool `json:"run_nlp,omitempty"`
	// TranscriptDurationSeconds is the spoken duration; nil or 0 selects the default.
	TranscriptDurationSeconds *float64 `json:"transcript_duration_seconds,omitempty"`
	// UserID is accepted for compatibility and ignored.
	UserID string `json:"user_id,omitempty"`
}

// Duration returns the requested duration, or 0 when none was given.
func (o Options) Duration() float64 {
	if o.TranscriptDurationSeconds == nil {
		return 0
	}
	return *o.TranscriptDurationSeconds
}

// WithDuration returns a copy of o carrying the given duration.
func (o Options) WithDuration(seconds float64) Options {
	o.TranscriptDurationSeconds = &seconds
	return o
}

// Criterion returns the criterion with the given name.
func (r ScoreResult) Criterion(name string) (CriterionScore, bool) {
	for _, c := range r.Criteria {
		if c.Name == name {
			return c, true
		}
	}
	return CriterionScore{}, false
}

// CriteriaSum returns the unrounded sum of all criterion scores.
func (r ScoreResult) CriteriaSum() float64 {
	var sum float64
	for _, c := range r.Criteria {
		sum += c.Score
	}
	return sum
}
