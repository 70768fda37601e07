// Package session drives one drill: it generates the questions, wires the
// statistics and recording hooks into the pipeline, runs it and persists
// what was answered.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/abhisek/mathdrill/internal/input"
	"github.com/abhisek/mathdrill/internal/pipeline"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/question"
	"github.com/abhisek/mathdrill/internal/stats"
	"github.com/abhisek/mathdrill/internal/store"
)

// Options configures a drill.
type Options struct {
	Kind   question.Kind
	Count  int
	Policy pipeline.Policy
	Stats  stats.Config

	// Seed feeds the question generator. Equal seeds give equal drills.
	Seed      uint64
	Generator problemgen.Config

	// Records receives one record per resolved step when Stats is enabled.
	// Nil disables persistence.
	Records store.RecordRepo

	Clock  clockwork.Clock
	Logger *slog.Logger
}

// Result describes a finished drill.
type Result struct {
	Questions []question.Question
	Collected stats.Collected
	Summary   Summary
	Saved     int
}

// Plan generates the questions a drill with opts would ask.
func Plan(opts Options) ([]question.Question, error) {
	gen, err := problemgen.NewSeeded(opts.Seed, opts.Generator)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	return gen.Batch(opts.Kind, opts.Count)
}

// Drill is a prepared drill: its questions and the hooks to run them with.
// Any driver that resolves steps through a pipeline.Engine can play it.
type Drill struct {
	Questions []question.Question
	Hooks     pipeline.Hooks

	opts      Options
	collector *stats.Collector
	recorder  *recorder
}

// Prepare generates the questions of a drill and wires its collector and,
// for stats runs with a repository, its recorder.
func Prepare(opts Options) (*Drill, error) {
	opts = withDefaults(opts)

	questions, err := Plan(opts)
	if err != nil {
		return nil, err
	}

	d := &Drill{
		Questions: questions,
		opts:      opts,
		collector: stats.NewCollector(opts.Stats, opts.Policy, opts.Clock),
	}
	d.Hooks = d.collector.Hooks()
	if opts.Stats.Enabled() && opts.Records != nil {
		d.recorder = newRecorder(opts.Clock)
		d.Hooks = pipeline.Chain(d.Hooks, d.recorder.Hooks())
	}

	opts.Logger.Debug("drill prepared",
		"kind", opts.Kind, "count", len(questions), "policy", opts.Policy, "seed", opts.Seed)
	return d, nil
}

// Engine returns a fresh engine over the drill's questions and hooks.
func (d *Drill) Engine() *pipeline.Engine {
	return pipeline.NewEngine(d.Questions, d.opts.Policy, d.Hooks)
}

// Finish summarises what was collected and persists recorded steps.
func (d *Drill) Finish(ctx context.Context) (*Result, error) {
	res := &Result{Questions: d.Questions, Collected: d.collector.Collected()}
	res.Summary = BuildSummary(res.Collected)

	if d.recorder == nil || len(d.recorder.records) == 0 {
		return res, nil
	}
	if err := d.opts.Records.Save(ctx, d.recorder.records...); err != nil {
		d.opts.Logger.Error("failed to save drill records", "error", err)
		return res, fmt.Errorf("save records: %w", err)
	}
	res.Saved = len(d.recorder.records)
	d.opts.Logger.Debug("drill records saved", "count", res.Saved)
	return res, nil
}

// Run plays a drill reading answers from in and writing the protocol to
// out. The summary is not written; callers render Result.Summary.
// Records gathered before a fatal I/O error are still persisted.
func Run(ctx context.Context, opts Options, in input.LineReader, out io.Writer) (*Result, error) {
	d, err := Prepare(opts)
	if err != nil {
		return nil, err
	}

	runErr := pipeline.Run(d.Questions, d.opts.Policy, in, out, d.Hooks)
	res, saveErr := d.Finish(ctx)
	if runErr != nil {
		return res, fmt.Errorf("run drill: %w", errors.Join(runErr, saveErr))
	}
	if saveErr != nil {
		return res, saveErr
	}

	d.opts.Logger.Debug("drill finished", "answers", len(res.Collected.Outcomes))
	return res, nil
}

func withDefaults(opts Options) Options {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}
