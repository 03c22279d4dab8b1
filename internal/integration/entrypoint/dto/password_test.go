package dto

import (
	"reflect"
	"testing"

	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

func TestToStrengthResponse(t *testing.T) {
	t.Run("weak password lists keys and labels", func(t *testing.T) {
		resp := ToStrengthResponse(valueobject.EvaluateStrength("abcdefgh"))

		if resp.Level != "weak" || resp.Color != "red" {
			t.Errorf("unexpected level/color %s/%s", resp.Level, resp.Color)
		}
		expectedKeys := []string{"upper", "number", "special"}
		if !reflect.DeepEqual(resp.MissingCriteria, expectedKeys) {
			t.Errorf("expected %v, got %v", expectedKeys, resp.MissingCriteria)
		}
		expectedLabels := []string{"an uppercase letter", "a number", "a special symbol"}
		if !reflect.DeepEqual(resp.MissingLabels, expectedLabels) {
			t.Errorf("expected %v, got %v", expectedLabels, resp.MissingLabels)
		}
		if resp.Feedback != "Weak: an uppercase letter, a number, a special symbol" {
			t.Errorf("unexpected feedback %q", resp.Feedback)
		}
	})

	t.Run("strong password has empty, non-nil lists", func(t *testing.T) {
		resp := ToStrengthResponse(valueobject.EvaluateStrength("Abcdefg1!"))

		if resp.MissingCriteria == nil || len(resp.MissingCriteria) != 0 {
			t.Errorf("expected empty missing criteria, got %#v", resp.MissingCriteria)
		}
		if resp.MissingLabels == nil || len(resp.MissingLabels) != 0 {
			t.Errorf("expected empty missing labels, got %#v", resp.MissingLabels)
		}
	})
}

func TestToMatchResponse(t *testing.T) {
	resp := ToMatchResponse(valueobject.EvaluateMatch("abc", ""))
	if resp.State != "empty" || resp.Color != "" || resp.Feedback != "" {
		t.Errorf("unexpected empty response %+v", resp)
	}

	resp = ToMatchResponse(valueobject.EvaluateMatch("abc", "abc"))
	if resp.State != "match" || resp.Color != "green" || resp.Feedback != "Passwords match!" {
		t.Errorf("unexpected match response %+v", resp)
	}
}
