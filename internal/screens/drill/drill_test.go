package drill

import (
	"context"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"

	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/question"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/stats"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testOptions(policy pipeline.Policy) session.Options {
	return session.Options{
		Kind:      question.KindMul,
		Count:     2,
		Policy:    policy,
		Stats:     stats.Config{Time: true, Percentage: true},
		Seed:      9,
		Generator: problemgen.DefaultConfig(),
		Clock:     clockwork.NewFakeClock(),
	}
}

func newTestScreen(t *testing.T, opts session.Options) (*DrillScreen, []int) {
	t.Helper()
	d, err := session.Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	sol := make([]int, len(d.Questions))
	for i, q := range d.Questions {
		sol[i] = q.(question.Arithmetic).Solution()
	}
	s := New(context.Background(), d)
	s.Init()
	return s, sol
}

func typeAnswer(s *DrillScreen, ans string) tea.Cmd {
	for _, r := range ans {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestDrillScreen_Title(t *testing.T) {
	s, _ := newTestScreen(t, testOptions(pipeline.Skip))
	if s.Title() != "Drill" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill")
	}
	if s.Status() != "1/2" {
		t.Errorf("Status = %q, want %q", s.Status(), "1/2")
	}
}

func TestDrillScreen_ShowsPrompt(t *testing.T) {
	s, _ := newTestScreen(t, testOptions(pipeline.Skip))
	view := s.View(80, 24)
	if !strings.Contains(view, s.engine.Current().Prompt()) {
		t.Errorf("expected prompt %q in view", s.engine.Current().Prompt())
	}
}

func TestDrillScreen_SkipAdvancesOnWrong(t *testing.T) {
	s, sol := newTestScreen(t, testOptions(pipeline.Skip))

	if cmd := typeAnswer(s, strconv.Itoa(sol[0]+1)); cmd != nil {
		t.Fatal("expected no command before the last question")
	}
	if s.engine.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.engine.Index())
	}
	if s.last == nil || s.last.Correct {
		t.Fatal("expected a wrong resolved step")
	}
	if !strings.Contains(s.View(80, 24), "false") {
		t.Error("expected false feedback in view")
	}
	if s.input.Value() != "" {
		t.Errorf("input not cleared: %q", s.input.Value())
	}

	cmd := typeAnswer(s, strconv.Itoa(sol[1]))
	if cmd == nil {
		t.Fatal("expected finish command after the last question")
	}
	msg, ok := cmd().(finishedMsg)
	if !ok {
		t.Fatalf("expected finishedMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("finish: %v", msg.Err)
	}
	if msg.Result.Summary.Rate != (stats.PassFail{Positive: 1, Negative: 1}) {
		t.Errorf("rate = %+v", msg.Result.Summary.Rate)
	}

	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
}

func TestDrillScreen_UntilRightRepeats(t *testing.T) {
	s, sol := newTestScreen(t, testOptions(pipeline.UntilRight))

	typeAnswer(s, strconv.Itoa(sol[0]+1))
	if s.engine.Index() != 0 {
		t.Fatalf("index = %d, want 0 after wrong answer", s.engine.Index())
	}
	typeAnswer(s, strconv.Itoa(sol[0]))
	if s.engine.Index() != 1 {
		t.Fatalf("index = %d, want 1 after right answer", s.engine.Index())
	}
	if s.correct != 1 || s.resolved != 2 {
		t.Errorf("correct/resolved = %d/%d, want 1/2", s.correct, s.resolved)
	}
}

func TestDrillScreen_MarksResolvedAnswer(t *testing.T) {
	s, sol := newTestScreen(t, testOptions(pipeline.UntilRight))

	typeAnswer(s, strconv.Itoa(sol[0]+1))
	if shown, correct := s.input.Submitted(); !shown || correct {
		t.Errorf("Submitted() = %v, %v after wrong answer, want true, false", shown, correct)
	}

	s.Update(keyPress('1'))
	if shown, _ := s.input.Submitted(); shown {
		t.Error("expected mark dropped once a new answer is typed")
	}
	s.input.Clear()

	typeAnswer(s, strconv.Itoa(sol[0]))
	if shown, correct := s.input.Submitted(); !shown || !correct {
		t.Errorf("Submitted() = %v, %v after right answer, want true, true", shown, correct)
	}
}

func TestDrillScreen_InvalidAnswerIsNotMarked(t *testing.T) {
	s, _ := newTestScreen(t, testOptions(pipeline.Skip))

	typeAnswer(s, "")
	if shown, _ := s.input.Submitted(); shown {
		t.Error("expected no mark after a validation error")
	}
}

func TestDrillScreen_EmptyAnswerIsInvalid(t *testing.T) {
	s, _ := newTestScreen(t, testOptions(pipeline.Skip))

	typeAnswer(s, "")
	if s.engine.Index() != 0 {
		t.Errorf("index = %d, want 0 after invalid answer", s.engine.Index())
	}
	if s.last == nil || s.last.Resolved() {
		t.Fatal("expected an unresolved step")
	}
	if !strings.Contains(s.View(80, 24), "Input is not an integer") {
		t.Error("expected validation message in view")
	}
	if s.resolved != 0 {
		t.Errorf("resolved = %d, want 0", s.resolved)
	}
}

func TestDrillScreen_EscStopsEarly(t *testing.T) {
	s, _ := newTestScreen(t, testOptions(pipeline.Skip))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected finish command on Esc")
	}
	if _, ok := cmd().(finishedMsg); !ok {
		t.Error("expected finishedMsg")
	}
	if !s.finishing {
		t.Error("expected screen to be finishing")
	}
	if cmd := typeAnswer(s, "1"); cmd != nil {
		t.Error("expected keys to be ignored while finishing")
	}
}

func TestDrillScreen_EmptyDrillFinishesOnInit(t *testing.T) {
	opts := testOptions(pipeline.Skip)
	opts.Count = 0
	d, err := session.Prepare(opts)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	s := New(context.Background(), d)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected finish command")
	}
	if _, ok := cmd().(finishedMsg); !ok {
		t.Error("expected finishedMsg")
	}
}
