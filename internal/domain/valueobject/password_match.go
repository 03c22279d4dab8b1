package valueobject

// MatchState represents how the confirmation relates to the password.
type MatchState string

const (
	MatchEmpty    MatchState = "empty"
	MatchOK       MatchState = "match"
	MatchMismatch MatchState = "mismatch"
)

const (
	matchFeedback    = "Passwords match!"
	mismatchFeedback = "Passwords do not match."
)

// MatchResult is the outcome of comparing a confirmation against a password.
type MatchResult struct {
	State MatchState
	Color DisplayColor
}

// Feedback renders the text shown under the confirmation field.
// An empty confirmation renders no text.
func (r MatchResult) Feedback() string {
	switch r.State {
	case MatchOK:
		return matchFeedback
	case MatchMismatch:
		return mismatchFeedback
	default:
		return ""
	}
}

// EvaluateMatch compares the confirmation with the password byte for byte.
// An empty confirmation always yields MatchEmpty, even when the password is not empty.
func EvaluateMatch(password, confirmation string) MatchResult {
	switch {
	case confirmation == "":
		return MatchResult{State: MatchEmpty, Color: ColorNone}
	case confirmation == password:
		return MatchResult{State: MatchOK, Color: ColorGreen}
	default:
		return MatchResult{State: MatchMismatch, Color: ColorRed}
	}
}
