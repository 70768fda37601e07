package session

import (
	"fmt"
	"io"
	"time"

	"github.com/abhisek/mathdrill/internal/stats"
)

// Summary is the reduced form of a drill's samples. Each half is present
// only when its option was requested.
type Summary struct {
	HasTime     bool
	AverageTime time.Duration

	HasRate bool
	Rate    stats.PassFail
}

// BuildSummary reduces collected samples. A time summary needs at least
// one sample, so a drill with no advancing step reports no average.
func BuildSummary(c stats.Collected) Summary {
	var s Summary
	if len(c.Times) > 0 {
		s.HasTime = true
		s.AverageTime = stats.AverageTime(c.Times)
	}
	if c.Outcomes != nil {
		s.HasRate = true
		s.Rate = stats.Tally(c.Outcomes)
	}
	return s
}

// Lines formats the summary, one line per requested half:
//
//	Average time: <secs> secs
//	Rate: <positive> / <total>
func (s Summary) Lines() []string {
	var lines []string
	if s.HasTime {
		lines = append(lines, fmt.Sprintf("Average time: %d secs", int64(s.AverageTime/time.Second)))
	}
	if s.HasRate {
		lines = append(lines, fmt.Sprintf("Rate: %d / %d", s.Rate.Positive, s.Rate.Total()))
	}
	return lines
}

// Render writes the summary lines, each terminated by a newline.
func Render(w io.Writer, s Summary) error {
	for _, line := range s.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
