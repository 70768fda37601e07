// Package drill is the screen that plays a prepared drill one question at
// a time through a pipeline engine.
package drill

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// DrillScreen implements screen.Screen for a running drill.
type DrillScreen struct {
	ctx    context.Context
	drill  *session.Drill
	engine *pipeline.Engine
	input  components.TextInput

	last      *pipeline.Step
	resolved  int
	correct   int
	finishing bool
	errMsg    string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)

// New creates a DrillScreen over d. ctx bounds persisting the results.
func New(ctx context.Context, d *session.Drill) *DrillScreen {
	return &DrillScreen{
		ctx:    ctx,
		drill:  d,
		engine: d.Engine(),
		input:  components.NewTextInput("Type your answer...", true, 20),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	if s.engine.Done() {
		s.finishing = true
		return s.finish()
	}
	s.engine.Start()
	return s.input.Init()
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

// Status shows the 1-based position of the current question.
func (s *DrillScreen) Status() string {
	n := s.engine.Len()
	return positionLabel(min(s.engine.Index()+1, n), n)
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Stop"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		if msg.Result == nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Result, msg.Err)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.finishing {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, tea.Quit
	}
	if s.finishing {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s.submitAnswer()
	case "esc":
		s.finishing = true
		return s, s.finish()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer resolves the typed answer through the engine. Every visit
// of a question, including a re-ask after a validation error, starts it
// again.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	step, err := s.engine.Answer(s.input.Value())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.last = &step
	s.input.Clear()
	if step.Resolved() {
		s.input.Submit(step.Correct)
		s.resolved++
		if step.Correct {
			s.correct++
		}
	}

	if s.engine.Done() {
		s.finishing = true
		return s, s.finish()
	}
	s.engine.Start()
	return s, nil
}

func (s *DrillScreen) finish() tea.Cmd {
	ctx, d := s.ctx, s.drill
	return func() tea.Msg {
		res, err := d.Finish(ctx)
		return finishedMsg{Result: res, Err: err}
	}
}
