package samples

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/okian/talkscore/internal/domain/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

const nameColumnWidth = 22

// RenderResult formats a score result as a bordered card.
func RenderResult(title string, res model.ScoreResult) string {
	lines := []string{
		titleStyle.Render(title),
		fmt.Sprintf("Overall Score: %s", scoreStyle.Render(fmt.Sprintf("%d/100", res.OverallScore))),
		mutedStyle.Render(fmt.Sprintf("%d words, %.2f wpm", res.WordCount, res.WPM)),
		"",
		titleStyle.Render("Criteria Breakdown"),
	}
	for _, c := range res.Criteria {
		name := lipgloss.NewStyle().Width(nameColumnWidth).Render(c.Name)
		lines = append(lines, fmt.Sprintf("  %s %g/%g", name, c.Score, c.MaxScore))
	}

	ev := res.Evidence
	lines = append(lines, "", titleStyle.Render("Evidence"))
	lines = append(lines, "  Keywords: "+joinOrNone(ev.KeywordsFound))
	lines = append(lines, "  Fillers: "+joinOrNone(ev.FillerWordsList))
	lines = append(lines, fmt.Sprintf("  Grammar Errors: %d", ev.GrammarErrorsCount))
	lines = append(lines, fmt.Sprintf("  Vocabulary: %d distinct / %d total", ev.DistinctTokens, ev.TotalTokens))

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderOutcome formats one sample outcome with its pass/fail status.
func RenderOutcome(o Outcome) string {
	header := fmt.Sprintf("Test: %s  %s", o.Sample.Name, status(o.Passed()))
	if o.Err != nil {
		body := strings.Join([]string{
			titleStyle.Render(header),
			failStyle.Render("Error: " + o.Err.Error()),
		}, "\n")
		return cardStyle.Render(body)
	}

	parts := []string{
		RenderResult(header, o.Result),
		mutedStyle.Render(fmt.Sprintf("Expected Range: %d-%d (%s)", o.Sample.ExpectedMin, o.Sample.ExpectedMax, o.Latency)),
	}
	if len(o.Problems) > 0 {
		lines := []string{failStyle.Render("Validation Errors:")}
		for _, p := range o.Problems {
			lines = append(lines, "  - "+p)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderSummary formats every outcome followed by a pass count.
func RenderSummary(outcomes []Outcome) string {
	parts := make([]string, 0, len(outcomes)+1)
	passed := 0
	for _, o := range outcomes {
		if o.Passed() {
			passed++
		}
		parts = append(parts, RenderOutcome(o))
	}
	summary := fmt.Sprintf("%d/%d samples passed", passed, len(outcomes))
	if passed == len(outcomes) {
		parts = append(parts, passStyle.Render(summary))
	} else {
		parts = append(parts, failStyle.Render(summary))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func status(ok bool) string {
	if ok {
		return passStyle.Render("PASS")
	}
	return failStyle.Render("FAIL")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(items, ", ")
}
