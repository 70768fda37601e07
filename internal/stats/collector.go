package stats

import (
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/question"
)

// Collected holds the samples of one run. A field is nil when its option
// was not requested.
type Collected struct {
	// Times are cumulative elapsed times since the run began, one per
	// advancing step, in resolution order.
	Times []time.Duration

	// Outcomes are the check results of every resolved step, in order.
	Outcomes []bool
}

// Collector owns the sample accumulators for one run and exposes them to
// the engine only through Hooks.
type Collector struct {
	config   Config
	policy   pipeline.Policy
	clock    clockwork.Clock
	start    time.Time
	times    []time.Duration
	outcomes []bool
}

// NewCollector starts the run clock and returns a Collector for a run under policy.
func NewCollector(cfg Config, policy pipeline.Policy, clock clockwork.Clock) *Collector {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Collector{config: cfg, policy: policy, clock: clock, start: clock.Now()}
	if cfg.Time {
		c.times = []time.Duration{}
	}
	if cfg.Percentage {
		c.outcomes = []bool{}
	}
	return c
}

// Hooks returns the instrumentation callbacks to hand to the engine.
func (c *Collector) Hooks() pipeline.Hooks {
	return pipeline.Hooks{OnEnd: c.record}
}

func (c *Collector) record(_ question.Question, correct bool) {
	if c.config.Time && c.policy.Advances(correct) {
		c.times = append(c.times, c.clock.Since(c.start))
	}
	if c.config.Percentage {
		c.outcomes = append(c.outcomes, correct)
	}
}

// Collected returns a copy of the samples gathered so far.
func (c *Collector) Collected() Collected {
	return Collected{
		Times:    slices.Clone(c.times),
		Outcomes: slices.Clone(c.outcomes),
	}
}
