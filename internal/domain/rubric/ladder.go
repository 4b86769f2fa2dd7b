package rubric

// Band is one rung of a Ladder.
type Band struct {
	Match func(v float64) bool
	Score int
	Label string
}

// Ladder maps a value to a score. Bands are tried top-down and the first
// match wins; the last band should always match.
type Ladder []Band

// AtLeast matches values >= limit.
func AtLeast(limit float64) func(float64) bool {
	return func(v float64) bool { return v >= limit }
}

// AtMost matches values <= limit.
func AtMost(limit float64) func(float64) bool {
	return func(v float64) bool { return v <= limit }
}

// Always matches every value, including NaN.
func Always() func(float64) bool {
	return func(float64) bool { return true }
}

// Band returns the first band matching v. A ladder with no matching band
// returns a zero Band.
func (l Ladder) Band(v float64) Band {
	for _, b := range l {
		if b.Match(v) {
			return b
		}
	}
	return Band{}
}

// Score returns the score of the first band matching v.
func (l Ladder) Score(v float64) int { return l.Band(v).Score }

// SpeechRateLadder bands words per minute. Bands are contiguous, so
// fractional rates between the integer edges fall into the lower band.
func SpeechRateLadder() Ladder {
	return Ladder{
		{Match: AtLeast(161), Score: 2, Label: "Too fast"},
		{Match: AtLeast(141), Score: 6, Label: "Fast"},
		{Match: AtLeast(111), Score: 10, Label: "Ideal"},
		{Match: AtLeast(81), Score: 6, Label: "Moderate"},
		{Match: Always(), Score: 2, Label: "Slow"},
	}
}

// RatioLadder bands a 0..1 quality ratio; used for grammar and vocabulary.
func RatioLadder() Ladder {
	return Ladder{
		{Match: AtLeast(0.9), Score: 10, Label: "Excellent"},
		{Match: AtLeast(0.7), Score: 8, Label: "Good"},
		{Match: AtLeast(0.5), Score: 6, Label: "Fair"},
		{Match: AtLeast(0.3), Score: 4, Label: "Weak"},
		{Match: Always(), Score: 2, Label: "Poor"},
	}
}

// FillerRateLadder bands the filler percentage. The floor is 3, never 0.
func FillerRateLadder() Ladder {
	return Ladder{
		{Match: AtMost(3), Score: 15, Label: "Clear"},
		{Match: AtMost(6), Score: 12, Label: "Mostly clear"},
		{Match: AtMost(9), Score: 9, Label: "Noticeable fillers"},
		{Match: AtMost(12), Score: 6, Label: "Frequent fillers"},
		{Match: Always(), Score: 3, Label: "Heavy fillers"},
	}
}

// PositivityLadder bands the positive share of sentiment words.
func PositivityLadder() Ladder {
	return Ladder{
		{Match: AtLeast(0.9), Score: 15, Label: "Very positive"},
		{Match: AtLeast(0.7), Score: 12, Label: "Positive"},
		{Match: AtLeast(0.5), Score: 9, Label: "Neutral"},
		{Match: AtLeast(0.3), Score: 6, Label: "Negative"},
		{Match: Always(), Score: 3, Label: "Very negative"},
	}
}
