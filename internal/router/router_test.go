package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
	if s1.updates != 0 {
		t.Errorf("replaced screen got %d updates, want 0", s1.updates)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if s1.updates != 1 {
		t.Errorf("expected 1 update, got %d", s1.updates)
	}
}

func TestInitRunsInitialScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Init()

	if !s1.initRan {
		t.Error("expected Init() to run on initial screen")
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Replace(&stubScreen{title: "second"})

	if got := r.View(80, 24); got != "second" {
		t.Errorf("View() = %q, want %q", got, "second")
	}
}

func TestNilRouterScreen(t *testing.T) {
	r := New(nil)

	if cmd := r.Init(); cmd != nil {
		t.Error("expected nil Init() cmd without a screen")
	}
	if cmd := r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"}); cmd != nil {
		t.Error("expected nil Update() cmd without a screen")
	}
	if got := r.View(80, 24); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
