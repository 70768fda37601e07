package question

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Percentage asks to estimate percent % of full to Precision decimal places.
type Percentage struct {
	Full      float64
	Percent   float64
	Precision int
}

var _ Question = Percentage{}

func (q Percentage) Kind() Kind { return KindPercent }

func (q Percentage) Prompt() string {
	return fmt.Sprintf("%s = 100 %%\n? ~= %s %%", formatReal(q.Full), formatReal(q.Percent))
}

// Solution returns full * percent / 100.
func (q Percentage) Solution() float64 {
	return q.Full * q.Percent / 100
}

// Check parses raw as a real. Values too large for a float64 parse to
// ±Inf and are simply wrong.
func (q Percentage) Check(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	answer, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false, notReal(raw)
	}
	return TruncEqual(answer, q.Solution(), q.Precision), nil
}

// TruncEqual reports whether a and b agree once both are scaled by
// 10^places and truncated toward zero. Values are never rounded, so 14.79
// and 14.71 match at one place while 14.69 and 14.70 do not.
func TruncEqual(a, b float64, places int) bool {
	factor := math.Pow(10, float64(places))
	return math.Trunc(a*factor) == math.Trunc(b*factor)
}

// formatReal prints the shortest decimal that round-trips, without a
// trailing ".0" for whole numbers.
func formatReal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
