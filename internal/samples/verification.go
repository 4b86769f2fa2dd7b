package samples

import (
	"fmt"
	"math"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
)

// Validate checks the structural guarantees of a score result and returns
// one message per violation.
func Validate(res model.ScoreResult) []string {
	var problems []string

	if res.OverallScore < 0 || res.OverallScore > rubric.MaxOverall {
		problems = append(problems, fmt.Sprintf("overall_score out of range (0-%d)", rubric.MaxOverall))
	}
	if len(res.Criteria) == 0 {
		problems = append(problems, "missing or empty criteria array")
	}

	for _, name := range rubric.Criteria() {
		if _, ok := res.Criterion(name); !ok {
			problems = append(problems, "missing criterion: "+name)
		}
	}

	if sum := math.Round(res.CriteriaSum()); math.Abs(sum-float64(res.OverallScore)) > 1 {
		problems = append(problems, fmt.Sprintf("criteria sum (%.0f) doesn't match overall_score (%d)", sum, res.OverallScore))
	}

	for _, c := range res.Criteria {
		if want := float64(rubric.MaxScore(c.Name)); c.MaxScore != want {
			problems = append(problems, fmt.Sprintf("invalid max_score for %s: expected %.0f, got %g", c.Name, want, c.MaxScore))
		}
		if c.Score > c.MaxScore {
			problems = append(problems, c.Name+" score exceeds max_score")
		}
		if c.Score < 0 {
			problems = append(problems, c.Name+" score is negative")
		}
	}
	return problems
}

// Verify returns an error wrapping ErrVerification when any outcome failed,
// broke a structural check, or landed outside its expected range.
func Verify(outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("%w: %w", ErrVerification, ErrNoSamples)
	}
	var failed int
	for _, o := range outcomes {
		if !o.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d samples failed", ErrVerification, failed, len(outcomes))
	}
	return nil
}
