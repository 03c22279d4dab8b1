package feedback

import (
	"testing"
)

type fakeField struct {
	value    string
	handlers []func()
}

func (f *fakeField) Value() string { return f.value }

func (f *fakeField) OnInput(handler func()) { f.handlers = append(f.handlers, handler) }

func (f *fakeField) Present() bool { return f != nil }

// Type sets the value and fires the change handlers like a keystroke would.
func (f *fakeField) Type(value string) {
	f.value = value
	for _, h := range f.handlers {
		h()
	}
}

type fakeRegion struct {
	text      string
	color     Color
	textSets  int
	colorSets int
}

func (r *fakeRegion) SetText(text string) {
	r.text = text
	r.textSets++
}

func (r *fakeRegion) SetColor(color Color) {
	r.color = color
	r.colorSets++
}

func TestBind_MissingFieldIsNoOp(t *testing.T) {
	field := &fakeField{}
	region := &fakeRegion{}

	tests := []struct {
		name         string
		password     InputField
		confirmation InputField
	}{
		{name: "no password field", password: nil, confirmation: field},
		{name: "no confirmation field", password: field, confirmation: nil},
		{name: "no fields", password: nil, confirmation: nil},
		{name: "typed nil password field", password: (*fakeField)(nil), confirmation: field},
		{name: "typed nil confirmation field", password: field, confirmation: (*fakeField)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := Bind(tt.password, tt.confirmation, region, region)
			if ok || b != nil {
				t.Error("expected Bind to skip registration")
			}
		})
	}

	if len(field.handlers) != 0 {
		t.Errorf("expected no handlers registered, got %d", len(field.handlers))
	}
}

func TestBind_PasswordChangeUpdatesBothRegions(t *testing.T) {
	password := &fakeField{}
	confirmation := &fakeField{}
	strength := &fakeRegion{}
	match := &fakeRegion{}

	if _, ok := Bind(password, confirmation, strength, match); !ok {
		t.Fatal("expected Bind to succeed")
	}

	password.Type("abc")
	if strength.text != "Weak: 8+ characters, an uppercase letter, a number, a special symbol" {
		t.Errorf("unexpected strength text %q", strength.text)
	}
	if strength.color != Red {
		t.Errorf("expected red, got %s", strength.color)
	}
	if match.textSets != 1 || match.text != "" {
		t.Errorf("expected match region cleared once, got %d sets with %q", match.textSets, match.text)
	}
	if match.colorSets != 0 {
		t.Error("expected empty confirmation to leave match color untouched")
	}

	confirmation.Type("Abcdefg1!")
	if match.text != "Passwords do not match." || match.color != Red {
		t.Errorf("unexpected match region %q/%s", match.text, match.color)
	}

	password.Type("Abcdefg1!")
	if strength.text != "Password Strength: Strong" || strength.color != Green {
		t.Errorf("unexpected strength region %q/%s", strength.text, strength.color)
	}
	if match.text != "Passwords match!" || match.color != Green {
		t.Errorf("expected password change to re-check the match, got %q/%s", match.text, match.color)
	}
}

func TestBind_ConfirmationChangeOnlyUpdatesMatch(t *testing.T) {
	password := &fakeField{value: "abc"}
	confirmation := &fakeField{}
	strength := &fakeRegion{}
	match := &fakeRegion{}

	Bind(password, confirmation, strength, match)

	confirmation.Type("abc")
	if strength.textSets != 0 {
		t.Errorf("expected strength region untouched, got %d writes", strength.textSets)
	}
	if match.text != "Passwords match!" {
		t.Errorf("unexpected match text %q", match.text)
	}

	confirmation.Type("")
	if match.text != "" {
		t.Errorf("expected cleared text, got %q", match.text)
	}
	if match.color != Green {
		t.Errorf("expected previous color to remain, got %s", match.color)
	}
}

func TestBind_NilRegions(t *testing.T) {
	password := &fakeField{}
	confirmation := &fakeField{}

	b, ok := Bind(password, confirmation, nil, nil)
	if !ok {
		t.Fatal("expected Bind to succeed without regions")
	}

	password.Type("Abcdefg1!")
	confirmation.Type("x")
	b.Refresh()
}

func TestBinding_Refresh(t *testing.T) {
	password := &fakeField{value: "Abcdefg1!"}
	confirmation := &fakeField{value: "Abcdefg1!"}
	strength := &fakeRegion{}
	match := &fakeRegion{}

	b, _ := Bind(password, confirmation, strength, match)
	b.Refresh()

	if strength.color != Green || match.color != Green {
		t.Errorf("expected both regions green, got %s/%s", strength.color, match.color)
	}
}
