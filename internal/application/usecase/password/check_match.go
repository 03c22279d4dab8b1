package password

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// CheckMatchInput represents the input for a confirmation check.
type CheckMatchInput struct {
	Password     string
	Confirmation string
}

// CheckMatchOutput represents the output of a confirmation check.
type CheckMatchOutput struct {
	Match valueobject.MatchResult
}

// CheckMatchUseCase compares the confirmation field with the password field.
// It is the only evaluation triggered when the confirmation field changes.
type CheckMatchUseCase struct{}

// NewCheckMatchUseCase creates a new CheckMatchUseCase instance.
func NewCheckMatchUseCase() *CheckMatchUseCase {
	return &CheckMatchUseCase{}
}

// Execute performs the comparison. It never fails.
func (uc *CheckMatchUseCase) Execute(ctx context.Context, input CheckMatchInput) *CheckMatchOutput {
	match := valueobject.EvaluateMatch(input.Password, input.Confirmation)

	slog.DebugContext(ctx, "Password confirmation checked", "state", match.State)

	return &CheckMatchOutput{
		Match: match,
	}
}
