package pipeline

import "fmt"

// Policy decides whether a resolved question is followed by the next one or
// asked again.
type Policy int

const (
	// Skip always advances, right or wrong.
	Skip Policy = iota

	// UntilRight advances only after a correct answer.
	UntilRight
)

// ParsePolicy maps a CLI token ("skip" or "right") to a Policy. The empty
// string selects Skip.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "skip":
		return Skip, nil
	case "right":
		return UntilRight, nil
	}
	return Skip, fmt.Errorf("unknown mod `%s`", s)
}

func (p Policy) String() string {
	switch p {
	case Skip:
		return "skip"
	case UntilRight:
		return "right"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Advances reports whether a resolved answer with the given outcome moves
// the run to the next question.
func (p Policy) Advances(correct bool) bool {
	return p == Skip || correct
}

// Next returns the index that follows index after a resolved answer.
func (p Policy) Next(index int, correct bool) int {
	if p.Advances(correct) {
		return index + 1
	}
	return index
}
