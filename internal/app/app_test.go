package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/question"
	"github.com/abhisek/mathdrill/internal/session"
)

func testModel(t *testing.T) (AppModel, *session.Drill) {
	t.Helper()
	d, err := session.Prepare(session.Options{
		Kind:      question.KindSum,
		Count:     3,
		Policy:    pipeline.Skip,
		Seed:      1,
		Generator: problemgen.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	m := newAppModel(Options{Drill: d})
	m.Init()
	return m, d
}

func TestAppModel_ViewBeforeResize(t *testing.T) {
	m, _ := testModel(t)
	if got := m.render(); got != "" {
		t.Errorf("expected empty content before size is known, got %q", got)
	}
}

func TestAppModel_ViewShowsDrill(t *testing.T) {
	m, d := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(AppModel)

	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
	view := m.render()
	for _, want := range []string{"mathdrill", "Drill", "1/3", d.Questions[0].Prompt(), "Submit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
