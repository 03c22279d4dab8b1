// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/password-feedback/internal/application/usecase/password"
	domainerror "github.com/finance-tracker/password-feedback/internal/domain/error"
	"github.com/finance-tracker/password-feedback/internal/integration/entrypoint/dto"
)

// PasswordController serves live password feedback for registration and reset forms.
type PasswordController struct {
	evaluateStrengthUseCase *password.EvaluateStrengthUseCase
	checkMatchUseCase       *password.CheckMatchUseCase
	evaluatePasswordUseCase *password.EvaluatePasswordUseCase
}

// NewPasswordController creates a new password controller instance.
func NewPasswordController(
	evaluateStrengthUseCase *password.EvaluateStrengthUseCase,
	checkMatchUseCase *password.CheckMatchUseCase,
	evaluatePasswordUseCase *password.EvaluatePasswordUseCase,
) *PasswordController {
	return &PasswordController{
		evaluateStrengthUseCase: evaluateStrengthUseCase,
		checkMatchUseCase:       checkMatchUseCase,
		evaluatePasswordUseCase: evaluatePasswordUseCase,
	}
}

// Strength handles POST /password/strength requests.
func (c *PasswordController) Strength(ctx *gin.Context) {
	var req dto.StrengthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidRequest(ctx, err)
		return
	}

	output := c.evaluateStrengthUseCase.Execute(ctx.Request.Context(), password.EvaluateStrengthInput{
		Password: req.Password,
	})

	ctx.JSON(http.StatusOK, dto.ToStrengthResponse(output.Strength))
}

// Match handles POST /password/match requests, sent when the confirmation field changes.
func (c *PasswordController) Match(ctx *gin.Context) {
	var req dto.MatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidRequest(ctx, err)
		return
	}

	output := c.checkMatchUseCase.Execute(ctx.Request.Context(), password.CheckMatchInput{
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})

	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output.Match))
}

// Evaluate handles POST /password/evaluate requests, sent when the password field changes.
func (c *PasswordController) Evaluate(ctx *gin.Context) {
	var req dto.EvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidRequest(ctx, err)
		return
	}

	output := c.evaluatePasswordUseCase.Execute(ctx.Request.Context(), password.EvaluatePasswordInput{
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})

	ctx.JSON(http.StatusOK, dto.EvaluateResponse{
		Strength: dto.ToStrengthResponse(output.Strength),
		Match:    dto.ToMatchResponse(output.Match),
	})
}

// invalidRequest attaches a decoding failure for the error handler to render.
func (c *PasswordController) invalidRequest(ctx *gin.Context, err error) {
	_ = ctx.Error(domainerror.NewFeedbackError(
		domainerror.ErrCodeInvalidRequest,
		domainerror.ErrInvalidRequest.Error(),
		fmt.Errorf("%w: %v", domainerror.ErrInvalidRequest, err),
	))
	ctx.Abort()
}
