package feedback

import (
	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// RenderStrength writes a strength result into region.
func RenderStrength(region Region, result valueobject.StrengthResult) {
	if region == nil {
		return
	}
	region.SetText(result.Feedback())
	region.SetColor(toColor(result.Color))
}

// RenderMatch writes a match result into region. An empty confirmation clears
// the text and keeps whatever color the region had.
func RenderMatch(region Region, result valueobject.MatchResult) {
	if region == nil {
		return
	}
	region.SetText(result.Feedback())
	if result.Color != valueobject.ColorNone {
		region.SetColor(toColor(result.Color))
	}
}

func toColor(c valueobject.DisplayColor) Color {
	if c == valueobject.ColorGreen {
		return Green
	}
	return Red
}
