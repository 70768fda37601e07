// Package problemgen builds randomized batches of drill questions. All
// randomness flows through an explicit, seedable source so a batch can be
// reproduced from its seed.
package problemgen

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathdrill/internal/question"
)

// Generator draws questions from a seeded random source.
type Generator struct {
	rng    *rand.Rand
	config Config
}

// New creates a Generator over src. It returns an error if cfg is invalid.
func New(src rand.Source, cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return &Generator{rng: rand.New(src), config: cfg}, nil
}

// NewSeeded creates a Generator over a PCG source seeded with seed.
func NewSeeded(seed uint64, cfg Config) (*Generator, error) {
	return New(rand.NewPCG(seed, seed), cfg)
}

// ParseKind maps a CLI token to a question kind.
func ParseKind(s string) (question.Kind, error) {
	k := question.Kind(s)
	if !slices.Contains(question.Kinds(), k) {
		return "", fmt.Errorf("unknown type `%s`", s)
	}
	return k, nil
}

// Batch returns count fresh questions of the given kind.
func (g *Generator) Batch(kind question.Kind, count int) ([]question.Question, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative question count %d", count)
	}
	questions := make([]question.Question, 0, count)
	for range count {
		q, err := g.Question(kind)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Question returns one fresh question of the given kind.
func (g *Generator) Question(kind question.Kind) (question.Question, error) {
	cfg := g.config
	switch kind {
	case question.KindSum:
		return question.Sum(g.draw(cfg.AddSub), g.draw(cfg.AddSub)), nil
	case question.KindSub:
		return question.Sub(g.draw(cfg.AddSub), g.draw(cfg.AddSub)), nil
	case question.KindMul:
		return question.Mul(g.draw(cfg.Mul), g.draw(cfg.Mul)), nil
	case question.KindDiv:
		return question.Div(g.draw(cfg.Dividend), g.draw(cfg.Divisor)), nil
	case question.KindMod:
		return question.Mod(g.draw(cfg.Dividend), g.draw(cfg.Divisor)), nil
	case question.KindPercent:
		return question.Percentage{
			Full:      float64(g.draw(cfg.Full)),
			Percent:   float64(g.draw(cfg.Percent)),
			Precision: cfg.Precision,
		}, nil
	case question.KindMissing:
		return g.Pattern(), nil
	}
	return nil, fmt.Errorf("unknown type `%s`", kind)
}

// Pattern builds a missing-item question: the universe shuffled, one item
// picked as the solution, and Options slots filled with distinct items of
// which exactly one, at a random slot, is the solution.
func (g *Generator) Pattern() question.Pattern {
	items := question.Universe()
	g.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	solution := items[g.rng.IntN(len(items))]

	n := g.config.Options
	right := g.rng.IntN(n)
	options := make([]question.SequenceItem, 0, n)
	for len(options) < n {
		if len(options) == right {
			options = append(options, solution)
			continue
		}
		candidate := items[g.rng.IntN(len(items))]
		if candidate == solution || slices.Contains(options, candidate) {
			continue
		}
		options = append(options, candidate)
	}

	return question.Pattern{Items: items, Options: options, Solution: solution}
}

func (g *Generator) draw(r Range) int {
	return r.Min + g.rng.IntN(r.Max-r.Min)
}
