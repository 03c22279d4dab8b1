// Package password contains password feedback use cases.
package password

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// EvaluateStrengthInput represents the input for a strength evaluation.
type EvaluateStrengthInput struct {
	Password string
}

// EvaluateStrengthOutput represents the output of a strength evaluation.
type EvaluateStrengthOutput struct {
	Strength valueobject.StrengthResult
}

// EvaluateStrengthUseCase classifies a candidate password.
type EvaluateStrengthUseCase struct{}

// NewEvaluateStrengthUseCase creates a new EvaluateStrengthUseCase instance.
func NewEvaluateStrengthUseCase() *EvaluateStrengthUseCase {
	return &EvaluateStrengthUseCase{}
}

// Execute evaluates the password. It never fails.
func (uc *EvaluateStrengthUseCase) Execute(ctx context.Context, input EvaluateStrengthInput) *EvaluateStrengthOutput {
	strength := valueobject.EvaluateStrength(input.Password)

	slog.DebugContext(ctx, "Password strength evaluated",
		"level", strength.Level,
		"missing", len(strength.MissingCriteria),
	)

	return &EvaluateStrengthOutput{
		Strength: strength,
	}
}
