// Package question defines the quiz items a drill presents and the contract
// every kind implements: render a prompt, check a raw typed answer.
package question

import "fmt"

// Kind identifies a question family. The value doubles as the CLI token and
// the persisted question_type column.
type Kind string

const (
	KindSum     Kind = "sum"
	KindSub     Kind = "sub"
	KindMul     Kind = "mul"
	KindDiv     Kind = "div"
	KindMod     Kind = "mod"
	KindPercent Kind = "percent"
	KindMissing Kind = "missing"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindSum, KindSub, KindMul, KindDiv, KindMod, KindPercent, KindMissing}
}

// Question is a self-contained quiz item. Implementations are immutable once
// constructed, so Prompt is stable across repeated calls and Check has no
// side effects.
type Question interface {
	// Kind returns the family this question belongs to.
	Kind() Kind

	// Prompt returns the exact text to display. It may span several lines
	// and carries no trailing newline.
	Prompt() string

	// Check parses raw (surrounding whitespace is ignored) and reports
	// whether it is the right answer. Unparsable or out-of-range input
	// yields a *ValidationError.
	Check(raw string) (bool, error)
}

// ValidationError reports a malformed or out-of-range answer. It is
// recoverable: the drill shows Message and asks the same question again.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func notInteger(raw string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Input is not an integer `%s`", raw)}
}

func notReal(raw string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Input is not a real `%s`", raw)}
}

func notInRange(n int) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Input is not in range `%d`", n)}
}
