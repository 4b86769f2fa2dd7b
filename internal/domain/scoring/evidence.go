package scoring

import (
	"strings"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/internal/domain/rubric"
)

// CollectEvidence scans the transcript for every rubric keyword phrase and
// filler token. It runs independently of the scorers but reads the same
// tables, so evidence and scores always agree.
func CollectEvidence(in Input) model.EvidenceBundle {
	found := []string{}
	for _, kw := range rubric.AllKeywords() {
		if strings.Contains(in.Lower, kw.Phrase) {
			found = append(found, kw.Phrase)
		}
	}

	return model.EvidenceBundle{
		KeywordsFound:      found,
		GrammarErrorsCount: EstimateGrammarErrors(in.Raw),
		DistinctTokens:     in.Stats.Distinct,
		TotalTokens:        in.Stats.Total,
		FillerWordsList:    Fillers(in.Stats.Tokens),
	}
}
