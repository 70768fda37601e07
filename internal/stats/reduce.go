package stats

import "time"

// AverageTime reduces cumulative elapsed-time samples to last/count, i.e.
// total time over answered count. Note this is not the mean of the gaps
// between samples.
//
// times must not be empty; callers guarantee at least one advancing step.
func AverageTime(times []time.Duration) time.Duration {
	if len(times) == 0 {
		panic("stats: average of empty sample set")
	}
	return times[len(times)-1] / time.Duration(len(times))
}

// PassFail counts right and wrong outcomes.
type PassFail struct {
	Positive int
	Negative int
}

// Total returns Positive + Negative.
func (p PassFail) Total() int {
	return p.Positive + p.Negative
}

// Ratio returns the share of positive outcomes, or 0 for an empty tally.
func (p PassFail) Ratio() float64 {
	if p.Total() == 0 {
		return 0
	}
	return float64(p.Positive) / float64(p.Total())
}

// Tally counts the outcomes.
func Tally(outcomes []bool) PassFail {
	var pf PassFail
	for _, ok := range outcomes {
		if ok {
			pf.Positive++
		} else {
			pf.Negative++
		}
	}
	return pf
}
