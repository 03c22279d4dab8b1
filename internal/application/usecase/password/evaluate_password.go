package password

import (
	"context"

	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// EvaluatePasswordInput represents the current values of both password fields.
type EvaluatePasswordInput struct {
	Password     string
	Confirmation string
}

// EvaluatePasswordOutput carries both independent results.
type EvaluatePasswordOutput struct {
	Strength valueobject.StrengthResult
	Match    valueobject.MatchResult
}

// EvaluatePasswordUseCase runs the evaluations triggered by a password field change:
// the strength check and, because it depends on the password, the confirmation check.
type EvaluatePasswordUseCase struct {
	strengthUseCase *EvaluateStrengthUseCase
	matchUseCase    *CheckMatchUseCase
}

// NewEvaluatePasswordUseCase creates a new EvaluatePasswordUseCase instance.
func NewEvaluatePasswordUseCase(
	strengthUseCase *EvaluateStrengthUseCase,
	matchUseCase *CheckMatchUseCase,
) *EvaluatePasswordUseCase {
	return &EvaluatePasswordUseCase{
		strengthUseCase: strengthUseCase,
		matchUseCase:    matchUseCase,
	}
}

// Execute evaluates both fields. It never fails.
func (uc *EvaluatePasswordUseCase) Execute(ctx context.Context, input EvaluatePasswordInput) *EvaluatePasswordOutput {
	strength := uc.strengthUseCase.Execute(ctx, EvaluateStrengthInput{Password: input.Password})
	match := uc.matchUseCase.Execute(ctx, CheckMatchInput{
		Password:     input.Password,
		Confirmation: input.Confirmation,
	})

	return &EvaluatePasswordOutput{
		Strength: strength.Strength,
		Match:    match.Match,
	}
}
