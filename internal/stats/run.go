package stats

import (
	"io"

	"github.com/jonboulle/clockwork"

	"github.com/abhisek/mathdrill/internal/input"
	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/question"
)

// Run drives questions through the pipeline with a Collector attached and
// returns the samples it gathered. Samples collected before a fatal I/O
// error are returned alongside the error.
func Run(questions []question.Question, policy pipeline.Policy, cfg Config, r input.LineReader, w io.Writer, clock clockwork.Clock) (Collected, error) {
	c := NewCollector(cfg, policy, clock)
	err := pipeline.Run(questions, policy, r, w, c.Hooks())
	return c.Collected(), err
}
