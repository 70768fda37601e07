package problemgen

import "fmt"

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

func (r Range) valid() bool { return r.Max > r.Min }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.Min, r.Max) }

// Config controls the operand ranges the Generator draws from.
type Config struct {
	// AddSub bounds both operands of sum and sub questions.
	AddSub Range

	// Mul bounds both operands of mul questions.
	Mul Range

	// Dividend and Divisor bound div and mod questions. Divisor must not
	// contain zero.
	Dividend Range
	Divisor  Range

	// Full and Percent bound percentage questions; both are drawn as
	// integers and presented as reals.
	Full    Range
	Percent Range

	// Precision is the number of decimal places percentage answers are
	// compared at.
	Precision int

	// Options is the number of choices offered by a missing-item question.
	Options int
}

// DefaultConfig returns the ranges used by the CLI.
func DefaultConfig() Config {
	return Config{
		AddSub:    Range{0, 100},
		Mul:       Range{0, 25},
		Dividend:  Range{1, 20},
		Divisor:   Range{1, 10},
		Full:      Range{1, 1000},
		Percent:   Range{1, 100},
		Precision: 1,
		Options:   4,
	}
}

// Validate reports configuration that would make generation impossible.
func (c Config) Validate() error {
	for name, r := range map[string]Range{
		"add/sub":  c.AddSub,
		"mul":      c.Mul,
		"dividend": c.Dividend,
		"divisor":  c.Divisor,
		"full":     c.Full,
		"percent":  c.Percent,
	} {
		if !r.valid() {
			return fmt.Errorf("%s range %s is empty", name, r)
		}
	}
	if c.Divisor.Min <= 0 && c.Divisor.Max > 0 {
		return fmt.Errorf("divisor range %s contains zero", c.Divisor)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision %d is negative", c.Precision)
	}
	if c.Options < 1 || c.Options > 9 {
		return fmt.Errorf("options %d outside [1, 9]", c.Options)
	}
	return nil
}
