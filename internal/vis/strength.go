package vis

import (
	"strings"

	"pohi-platform/internal/core"
)

// LineColor encodes match quality for rendering.
type LineColor string

const (
	ColorStrong    LineColor = "green"
	ColorMedium    LineColor = "yellow"
	ColorWeak      LineColor = "red"
	ColorDefault   LineColor = "cyan"
	ColorConfirmed LineColor = "gold"
)

// LineColorFor maps a suggestion's quality indicators to a color. A numeric
// similarity score takes priority over the free-text strength heuristic;
// confirmed pairings always get the confirmed treatment. The substring
// thresholds are deliberately crude (the strength label is LLM free text)
// and must not be "improved": downstream styling depends on them as-is.
func LineColorFor(s core.MatchmakingSuggestion, confirmed bool) LineColor {
	if confirmed {
		return ColorConfirmed
	}
	if s.SimilarityScore > 0 {
		switch {
		case s.SimilarityScore >= 0.8:
			return ColorStrong
		case s.SimilarityScore >= 0.5:
			return ColorMedium
		default:
			return ColorWeak
		}
	}
	if s.MatchStrength != "" {
		lower := strings.ToLower(s.MatchStrength)
		switch {
		case strings.Contains(lower, "high"), containsAny(s.MatchStrength, "100", "9", "8"):
			return ColorStrong
		case strings.Contains(lower, "medium"), containsAny(s.MatchStrength, "7", "6", "5"):
			return ColorMedium
		case strings.Contains(lower, "low"), containsAny(s.MatchStrength, "4", "3", "2"):
			return ColorWeak
		}
	}
	return ColorDefault
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
