// Package input provides the line source a drill reads answers from.
package input

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrExhausted is returned when the source has no more answers to give.
var ErrExhausted = errors.New("input exhausted")

// LineReader yields one answer line per call. *bufio.Reader satisfies it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// New wraps r in a buffered LineReader.
func New(r io.Reader) LineReader {
	return bufio.NewReader(r)
}

// ReadLine reads one line from r. A final line without a trailing newline is
// returned as-is; a read that yields nothing at end of input returns
// ErrExhausted.
func ReadLine(r LineReader) (string, error) {
	line, err := r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrExhausted
	}
	return "", err
}

// delayed sleeps a fixed duration every time it hands out bytes.
type delayed struct {
	inner LineReader
	delay time.Duration
	clock clockwork.Clock
}

// Delayed decorates r so that each consumption of bytes costs delay on
// clock, simulating a user who takes that long to type every answer. It is
// meant for tests; production sources have no delay.
func Delayed(r LineReader, delay time.Duration, clock clockwork.Clock) LineReader {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &delayed{inner: r, delay: delay, clock: clock}
}

func (d *delayed) ReadString(delim byte) (string, error) {
	line, err := d.inner.ReadString(delim)
	if len(line) > 0 && d.delay > 0 {
		d.clock.Sleep(d.delay)
	}
	return line, err
}
