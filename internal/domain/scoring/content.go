package scoring

import (
	"regexp"
	"strings"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
)

const flowBonus = 5

var goodTimeOfDay = regexp.MustCompile(`good (morning|afternoon|evening)`) //nolint:gochecknoglobals // compiled once

// ContentScorer scores salutation, keyword coverage and flow.
type ContentScorer struct {
	mandatory []rubric.Keyword
	optional  []rubric.Keyword
}

// NewContentScorer creates a ContentScorer over the rubric keyword tables.
func NewContentScorer() *ContentScorer {
	return &ContentScorer{
		mandatory: rubric.MandatoryKeywords(),
		optional:  rubric.OptionalKeywords(),
	}
}

// Name implements Scorer.
func (s *ContentScorer) Name() string { return rubric.ContentStructure }

// Score implements Scorer.
func (s *ContentScorer) Score(in Input) model.CriterionScore {
	salutation := salutationLevel(in.Lower)
	mustHave := keywordPoints(in.Lower, s.mandatory)
	goodToHave := keywordPoints(in.Lower, s.optional)
	flow := flowScore(in.Lower)

	total := min(salutation+mustHave+goodToHave+flow, rubric.MaxContentStructure)

	return model.CriterionScore{
		Name:     rubric.ContentStructure,
		Score:    float64(total),
		MaxScore: rubric.MaxContentStructure,
		Details: map[string]any{
			"salutation_level":    salutation,
			"must_have_points":    mustHave,
			"good_to_have_points": goodToHave,
			"flow_score":          flow,
		},
	}
}

// salutationLevel returns the first matching tier only. Matching is by
// substring, so "hi" also matches inside longer words.
func salutationLevel(lower string) int {
	switch {
	case strings.Contains(lower, "excited to introduce"), strings.Contains(lower, "feeling great"):
		return 5
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"), strings.Contains(lower, "greetings"):
		return 4
	case goodTimeOfDay.MatchString(lower):
		return 2
	default:
		return 0
	}
}

func keywordPoints(lower string, table []rubric.Keyword) int {
	points := 0
	for _, kw := range table {
		if strings.Contains(lower, kw.Phrase) {
			points += kw.Points
		}
	}
	return points
}

// flowScore awards the bonus when name, age and schooling are all mentioned.
func flowScore(lower string) int {
	hasName := strings.Contains(lower, "name")
	hasAge := strings.Contains(lower, "old") || strings.Contains(lower, "age")
	hasSchool := strings.Contains(lower, "school") || strings.Contains(lower, "class")
	if hasName && hasAge && hasSchool {
		return flowBonus
	}
	return 0
}
