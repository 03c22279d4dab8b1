// Package feedback connects the password evaluator to a user interface.
//
// A host such as a WASM front end calls Bind once,
// after its widgets exist, passing the two input fields and the two regions
// where feedback is written. Every change of the password field refreshes both
// regions; a change of the confirmation field refreshes only the match region.
package feedback

import (
	"github.com/finance-tracker/password-feedback/internal/domain/valueobject"
)

// Color is the color a feedback region is painted with.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
)

// InputField is a text input the host can read and observe.
// A host whose lookups can return a typed nil (a nil *Element, say) should
// also implement Presence, since Bind cannot see through a typed nil otherwise.
type InputField interface {
	// Value returns the current text of the field.
	Value() string
	// OnInput registers handler to run after every change of the field.
	OnInput(handler func())
}

// Presence reports whether a field stands for an element that exists.
// Present must be safe to call on a nil receiver.
type Presence interface {
	Present() bool
}

// Region is a place where feedback text is displayed.
type Region interface {
	SetText(text string)
	SetColor(color Color)
}

// Binding is the live connection between the form fields and their feedback regions.
type Binding struct {
	password       InputField
	confirmation   InputField
	strengthRegion Region
	matchRegion    Region
}

// Bind registers change handlers on both input fields. If either field is nil
// or reports itself absent, nothing is registered and Bind returns nil, false.
// Nil regions are allowed and simply receive no output.
func Bind(password, confirmation InputField, strengthRegion, matchRegion Region) (*Binding, bool) {
	if absent(password) || absent(confirmation) {
		return nil, false
	}

	b := &Binding{
		password:       password,
		confirmation:   confirmation,
		strengthRegion: strengthRegion,
		matchRegion:    matchRegion,
	}

	password.OnInput(b.passwordChanged)
	confirmation.OnInput(b.confirmationChanged)

	return b, true
}

// Refresh re-renders both regions from the current field values.
func (b *Binding) Refresh() {
	b.passwordChanged()
}

func (b *Binding) passwordChanged() {
	pwd := b.password.Value()
	RenderStrength(b.strengthRegion, valueobject.EvaluateStrength(pwd))
	RenderMatch(b.matchRegion, valueobject.EvaluateMatch(pwd, b.confirmation.Value()))
}

func (b *Binding) confirmationChanged() {
	RenderMatch(b.matchRegion, valueobject.EvaluateMatch(b.password.Value(), b.confirmation.Value()))
}

func absent(field InputField) bool {
	if field == nil {
		return true
	}
	if p, ok := field.(Presence); ok {
		return !p.Present()
	}
	return false
}
