package question

import (
	"fmt"
	"strconv"
	"strings"
)

// Form is the glyph family of a SequenceItem.
type Form int

const (
	Star Form = iota
	Ampersand
	Cover
)

var forms = [...]Form{Star, Ampersand, Cover}

func (f Form) glyph() string {
	switch f {
	case Star:
		return "*"
	case Ampersand:
		return "&"
	case Cover:
		return "^"
	}
	panic(fmt.Sprintf("question: unknown form %d", int(f)))
}

func (f Form) String() string {
	switch f {
	case Star:
		return "star"
	case Ampersand:
		return "ampersand"
	case Cover:
		return "cover"
	}
	return "form(" + strconv.Itoa(int(f)) + ")"
}

// Size is how many times a SequenceItem's glyph repeats.
type Size int

const (
	Small Size = iota
	Medium
	Big
)

var sizes = [...]Size{Small, Medium, Big}

func (s Size) repeat() int {
	switch s {
	case Small:
		return 1
	case Medium:
		return 2
	case Big:
		return 3
	}
	panic(fmt.Sprintf("question: unknown size %d", int(s)))
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Big:
		return "big"
	}
	return "size(" + strconv.Itoa(int(s)) + ")"
}

// SequenceItem is one cell of a pattern. Items compare structurally with ==.
type SequenceItem struct {
	Form Form
	Size Size
}

// Item is shorthand for SequenceItem{Form: f, Size: s}.
func Item(f Form, s Size) SequenceItem {
	return SequenceItem{Form: f, Size: s}
}

// Glyph renders the item, e.g. "&&&" for a big ampersand.
func (i SequenceItem) Glyph() string {
	return strings.Repeat(i.Form.glyph(), i.Size.repeat())
}

func (i SequenceItem) String() string {
	return i.Form.String() + "-" + i.Size.String()
}

// UniverseSize is the number of distinct sequence items.
const UniverseSize = len(forms) * len(sizes)

// Universe returns all sequence items, form-major then size-minor.
func Universe() []SequenceItem {
	items := make([]SequenceItem, 0, UniverseSize)
	for _, f := range forms {
		for _, s := range sizes {
			items = append(items, Item(f, s))
		}
	}
	return items
}

// UniverseAt returns the i-th item of Universe. It panics when i is out of range.
func UniverseAt(i int) SequenceItem {
	if i < 0 || i >= UniverseSize {
		panic(fmt.Sprintf("question: universe index %d out of range", i))
	}
	return Item(forms[i/len(sizes)], sizes[i%len(sizes)])
}

// placeholder stands in for the missing item in a rendered pattern.
const placeholder = "?"

// Pattern shows a sequence with one item hidden and asks which numbered
// option fills the gap. Solution must appear in both Items and Options.
type Pattern struct {
	Items    []SequenceItem
	Options  []SequenceItem
	Solution SequenceItem
}

var _ Question = Pattern{}

func (q Pattern) Kind() Kind { return KindMissing }

// Prompt renders the items on the first line, with every item equal to the
// solution replaced by "?", and the 1-based options on the second.
func (q Pattern) Prompt() string {
	items := make([]string, len(q.Items))
	for i, item := range q.Items {
		if item == q.Solution {
			items[i] = placeholder
			continue
		}
		items[i] = item.Glyph()
	}
	options := make([]string, len(q.Options))
	for i, opt := range q.Options {
		options[i] = fmt.Sprintf("%d. %s", i+1, opt.Glyph())
	}
	return strings.Join(items, " ") + "\n" + strings.Join(options, " ")
}

// Check reads raw as a 1-based option index.
func (q Pattern) Check(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, notInteger(raw)
	}
	if n < 1 || n > len(q.Options) {
		return false, notInRange(n)
	}
	return q.Options[n-1] == q.Solution, nil
}
