package pipeline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/abhisek/mathdrill/internal/input"
	"github.com/abhisek/mathdrill/internal/question"
)

// Run presents questions one at a time on w and reads answers from r until
// the policy has advanced past the last question. For every step it writes
// the prompt line, then either "true"/"false" or the validation message.
// Validation errors never abort the run; read and write failures do.
func Run(questions []question.Question, policy Policy, r input.LineReader, w io.Writer, hooks Hooks) error {
	e := NewEngine(questions, policy, hooks)
	for !e.Done() {
		q := e.Current()
		if _, err := fmt.Fprintln(w, q.Prompt()); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
		e.Start()

		line, err := input.ReadLine(r)
		if err != nil {
			return fmt.Errorf("read answer %d: %w", e.Index()+1, err)
		}

		step, err := e.Answer(line)
		if err != nil {
			return fmt.Errorf("check answer %d: %w", step.Index+1, err)
		}

		result := strconv.FormatBool(step.Correct)
		if !step.Resolved() {
			result = step.Invalid.Message
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

// RunPlain runs questions with no instrumentation.
func RunPlain(questions []question.Question, policy Policy, r input.LineReader, w io.Writer) error {
	return Run(questions, policy, r, w, Hooks{})
}
