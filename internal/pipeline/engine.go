// Package pipeline drives an ordered list of questions through an
// ask/answer loop under a replay policy, with optional instrumentation hooks
// around every question.
package pipeline

import (
	"errors"

	"github.com/abhisek/mathdrill/internal/question"
)

// Hooks are caller-owned instrumentation callbacks. The engine only invokes
// them; any samples they collect live in the caller's closures. Nil hooks
// are skipped.
type Hooks struct {
	// OnStart runs each time a question is shown, including re-asks.
	OnStart func(q question.Question)

	// OnEnd runs after an answer is parsed and checked. It does not run
	// for answers rejected with a validation error.
	OnEnd func(q question.Question, correct bool)
}

// Chain returns Hooks that invoke every non-nil hook in hs in order.
func Chain(hs ...Hooks) Hooks {
	return Hooks{
		OnStart: func(q question.Question) {
			for _, h := range hs {
				if h.OnStart != nil {
					h.OnStart(q)
				}
			}
		},
		OnEnd: func(q question.Question, correct bool) {
			for _, h := range hs {
				if h.OnEnd != nil {
					h.OnEnd(q, correct)
				}
			}
		},
	}
}

// Step describes how one answer was resolved.
type Step struct {
	// Question is the question that was answered.
	Question question.Question

	// Index is the position of Question in the run.
	Index int

	// Correct is the check outcome. Meaningless when Invalid is set.
	Correct bool

	// Invalid holds the validation error when the answer could not be
	// parsed; the question stays current.
	Invalid *question.ValidationError

	// Advanced reports whether the run moved past Question.
	Advanced bool
}

// Resolved reports whether the answer was parsed and checked.
func (s Step) Resolved() bool {
	return s.Invalid == nil
}

// Engine is the run state machine. It holds the current index over a
// borrowed, read-only question list and moves it according to the policy.
// An Engine serves a single run and is not safe for concurrent use.
type Engine struct {
	questions []question.Question
	policy    Policy
	hooks     Hooks
	index     int
}

// NewEngine creates an Engine positioned at the first question.
func NewEngine(questions []question.Question, policy Policy, hooks Hooks) *Engine {
	return &Engine{questions: questions, policy: policy, hooks: hooks}
}

// Done reports whether every question has been passed.
func (e *Engine) Done() bool {
	return e.index >= len(e.questions)
}

// Index returns the position of the current question.
func (e *Engine) Index() int { return e.index }

// Len returns the number of questions in the run.
func (e *Engine) Len() int { return len(e.questions) }

// Policy returns the replay policy of the run.
func (e *Engine) Policy() Policy { return e.policy }

// Current returns the question awaiting an answer, or nil when Done.
func (e *Engine) Current() question.Question {
	if e.Done() {
		return nil
	}
	return e.questions[e.index]
}

// Start signals that the current question has been shown to the user.
func (e *Engine) Start() {
	if q := e.Current(); q != nil && e.hooks.OnStart != nil {
		e.hooks.OnStart(q)
	}
}

// Answer checks raw against the current question and applies the policy.
// A validation failure is reported in Step.Invalid and leaves the index
// unchanged; any other error from the question is returned as-is.
func (e *Engine) Answer(raw string) (Step, error) {
	q := e.Current()
	if q == nil {
		return Step{}, errors.New("pipeline: answer after run completed")
	}
	step := Step{Question: q, Index: e.index}

	correct, err := q.Check(raw)
	if err != nil {
		var verr *question.ValidationError
		if errors.As(err, &verr) {
			step.Invalid = verr
			return step, nil
		}
		return step, err
	}

	step.Correct = correct
	if e.hooks.OnEnd != nil {
		e.hooks.OnEnd(q, correct)
	}
	next := e.policy.Next(e.index, correct)
	step.Advanced = next != e.index
	e.index = next
	return step, nil
}
