// Package stats collects timing and accuracy samples from a drill run
// through pipeline hooks and reduces them to summary figures.
package stats

import (
	"fmt"
	"strings"
)

// Option tokens accepted by ParseConfig.
const (
	OptionTime       = "time"
	OptionPercentage = "percentage"
)

// Config selects which samples a Collector records.
type Config struct {
	// Time records the elapsed time since the run began at every advancing step.
	Time bool

	// Percentage records the outcome of every resolved step.
	Percentage bool
}

// Enabled reports whether any sample kind is selected.
func (c Config) Enabled() bool {
	return c.Time || c.Percentage
}

// ParseConfig reads whitespace-separated option tokens, e.g. "time percentage".
func ParseConfig(opts string) (Config, error) {
	var cfg Config
	for _, tok := range strings.Fields(opts) {
		switch tok {
		case OptionTime:
			cfg.Time = true
		case OptionPercentage:
			cfg.Percentage = true
		default:
			return Config{}, fmt.Errorf("unknown stats option `%s`", tok)
		}
	}
	return cfg, nil
}
