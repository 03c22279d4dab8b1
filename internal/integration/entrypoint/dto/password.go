// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// StrengthRequest represents the request body for a strength evaluation.
// An empty password is a valid input and is reported as weak.
type StrengthRequest struct {
	Password string `json:"password"`
}

// MatchRequest represents the request body for a confirmation check.
type MatchRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// EvaluateRequest represents the current values of both password fields.
type EvaluateRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// StrengthResponse describes the strength feedback region.
type StrengthResponse struct {
	Level           string   `json:"level"`
	MissingCriteria []string `json:"missing_criteria"`
	MissingLabels   []string `json:"missing_labels"`
	Color           string   `json:"color"`
	Feedback        string   `json:"feedback"`
}

// MatchResponse describes the confirmation feedback region.
type MatchResponse struct {
	State    string `json:"state"`
	Color    string `json:"color"`
	Feedback string `json:"feedback"`
}

// EvaluateResponse carries both feedback regions.
type EvaluateResponse struct {
	Strength StrengthResponse `json:"strength"`
	Match    MatchResponse    `json:"match"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToStrengthResponse converts a StrengthResult value object to a StrengthResponse DTO.
func ToStrengthResponse(result valueobject.StrengthResult) StrengthResponse {
	missing := make([]string, 0, len(result.MissingCriteria))
	for _, c := range result.MissingCriteria {
		missing = append(missing, string(c))
	}

	return StrengthResponse{
		Level:           string(result.Level),
		MissingCriteria: missing,
		MissingLabels:   result.MissingLabels(),
		Color:           string(result.Color),
		Feedback:        result.Feedback(),
	}
}

// ToMatchResponse converts a MatchResult value object to a MatchResponse DTO.
func ToMatchResponse(result valueobject.MatchResult) MatchResponse {
	return MatchResponse{
		State:    string(result.State),
		Color:    string(result.Color),
		Feedback: result.Feedback(),
	}
}
