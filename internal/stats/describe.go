package stats

import (
	"fmt"
	"time"

	mstats "github.com/montanaflynn/stats"
)

// Distribution summarizes a set of per-answer durations.
type Distribution struct {
	Count  int
	Mean   time.Duration
	Median time.Duration
	P90    time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Describe computes the distribution of durations. It returns an error for
// an empty input.
func Describe(durations []time.Duration) (Distribution, error) {
	if len(durations) == 0 {
		return Distribution{}, fmt.Errorf("describe: %w", mstats.ErrEmptyInput)
	}
	data := make(mstats.Float64Data, len(durations))
	for i, d := range durations {
		data[i] = float64(d)
	}

	dist := Distribution{Count: len(durations)}
	for _, m := range []struct {
		dst *time.Duration
		fn  func(mstats.Float64Data) (float64, error)
	}{
		{&dist.Mean, mstats.Mean},
		{&dist.Median, mstats.Median},
		{&dist.Min, mstats.Min},
		{&dist.Max, mstats.Max},
		{&dist.P90, func(d mstats.Float64Data) (float64, error) { return mstats.PercentileNearestRank(d, 90) }},
	} {
		v, err := m.fn(data)
		if err != nil {
			return Distribution{}, fmt.Errorf("describe: %w", err)
		}
		*m.dst = time.Duration(v)
	}
	return dist, nil
}
