// Package valueobject contains immutable domain value objects.
package valueobject

import (
	"strings"
	"unicode/utf8"
)

// StrengthLevel represents the overall classification of a password.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthStrong StrengthLevel = "strong"
)

// DisplayColor is the color a feedback region should be painted with.
type DisplayColor string

const (
	// ColorNone leaves the current color of a feedback region untouched.
	ColorNone  DisplayColor = ""
	ColorRed   DisplayColor = "red"
	ColorGreen DisplayColor = "green"
)

// Criterion identifies one of the password strength predicates.
type Criterion string

const (
	CriterionLength  Criterion = "length"
	CriterionUpper   Criterion = "upper"
	CriterionNumber  Criterion = "number"
	CriterionSpecial Criterion = "special"
)

// MinPasswordLength is the minimum number of characters of a strong password.
const MinPasswordLength = 8

// SpecialSymbols is the fixed set of characters accepted by the special criterion.
const SpecialSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	strongFeedback = "Password Strength: Strong"
	weakPrefix     = "Weak: "
)

// criteria lists every criterion in reporting order.
var criteria = []Criterion{CriterionLength, CriterionUpper, CriterionNumber, CriterionSpecial}

var criterionLabels = map[Criterion]string{
	CriterionLength:  "8+ characters",
	CriterionUpper:   "an uppercase letter",
	CriterionNumber:  "a number",
	CriterionSpecial: "a special symbol",
}

// Criteria returns all strength criteria in reporting order.
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// Label returns the human-readable label of the criterion.
func (c Criterion) Label() string {
	return criterionLabels[c]
}

// StrengthResult is the outcome of evaluating a candidate password.
type StrengthResult struct {
	Level           StrengthLevel
	MissingCriteria []Criterion
	Color           DisplayColor
}

// IsStrong reports whether every criterion holds.
func (r StrengthResult) IsStrong() bool {
	return r.Level == StrengthStrong
}

// MissingLabels returns the labels of the failing criteria, in order.
func (r StrengthResult) MissingLabels() []string {
	labels := make([]string, 0, len(r.MissingCriteria))
	for _, c := range r.MissingCriteria {
		labels = append(labels, c.Label())
	}
	return labels
}

// Feedback renders the text shown under the password field.
func (r StrengthResult) Feedback() string {
	if r.IsStrong() {
		return strongFeedback
	}
	return weakPrefix + strings.Join(r.MissingLabels(), ", ")
}

// EvaluateStrength classifies a password against the four strength criteria.
// It is total over every string, including empty and invalid UTF-8 input.
func EvaluateStrength(password string) StrengthResult {
	checks := map[Criterion]bool{
		CriterionLength:  utf8.RuneCountInString(password) >= MinPasswordLength,
		CriterionUpper:   containsAny(password, isUpper),
		CriterionNumber:  containsAny(password, isDigit),
		CriterionSpecial: containsAny(password, isSpecialSymbol),
	}

	var missing []Criterion
	for _, c := range criteria {
		if !checks[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) == 0 {
		return StrengthResult{
			Level:           StrengthStrong,
			MissingCriteria: []Criterion{},
			Color:           ColorGreen,
		}
	}

	return StrengthResult{
		Level:           StrengthWeak,
		MissingCriteria: missing,
		Color:           ColorRed,
	}
}

func containsAny(s string, match func(rune) bool) bool {
	for _, r := range s {
		if match(r) {
			return true
		}
	}
	return false
}

// isUpper matches ASCII A-Z only.
func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// isDigit matches ASCII 0-9 only.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpecialSymbol(r rune) bool {
	return strings.ContainsRune(SpecialSymbols, r)
}
