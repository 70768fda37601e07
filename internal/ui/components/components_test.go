package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	for _, r := range "1a4.-x7" {
		ti, _ = ti.Update(keyPress(r))
	}
	if got := ti.Value(); got != "14.-7" {
		t.Errorf("Value() = %q, want %q", got, "14.-7")
	}
}

func TestTextInput_Free(t *testing.T) {
	ti := NewTextInput("answer", false, 10)
	for _, r := range "kek" {
		ti, _ = ti.Update(keyPress(r))
	}
	if got := ti.Value(); got != "kek" {
		t.Errorf("Value() = %q, want %q", got, "kek")
	}
}

func TestTextInput_Clear(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	ti, _ = ti.Update(keyPress('5'))
	ti.Submit(true)
	if !strings.Contains(ti.View(), "✓") {
		t.Error("expected check mark after a correct submit")
	}
	ti.Clear()
	if ti.Value() != "" {
		t.Errorf("Value() after Clear = %q, want empty", ti.Value())
	}
	if strings.Contains(ti.View(), "✓") {
		t.Error("expected no mark after Clear")
	}
}

func TestTextInput_SubmitMarkDroppedOnTyping(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	ti.Submit(false)
	if shown, correct := ti.Submitted(); !shown || correct {
		t.Errorf("Submitted() = %v, %v, want true, false", shown, correct)
	}
	if !strings.Contains(ti.View(), "✗") {
		t.Error("expected cross mark after a wrong submit")
	}

	ti, _ = ti.Update(keyPress('x'))
	if shown, _ := ti.Submitted(); !shown {
		t.Error("expected mark to survive a filtered key")
	}

	ti, _ = ti.Update(keyPress('3'))
	if shown, _ := ti.Submitted(); shown {
		t.Error("expected mark dropped after typing")
	}
	if strings.Contains(ti.View(), "✗") {
		t.Error("expected no cross mark after typing")
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{5, 4, 1},
	}
	for _, tt := range tests {
		got := NewProgressBar("", tt.done, tt.total, 40).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Progress", 2, 5, 40).View()
	if !strings.Contains(view, "2/5") {
		t.Errorf("expected counter in view, got %q", view)
	}
}
