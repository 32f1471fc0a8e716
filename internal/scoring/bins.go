package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RateFor resolves a ratio value to its binned rate. NaN goes to the
// Missing bucket. A numeric value must fall inside exactly one interval,
// low < v <= high; a value outside every interval is an OutOfRangeError,
// never a silent clamp.
func (t Table) RateFor(ratio string, v float64) (float64, error) {
	if math.IsNaN(v) {
		return t.MissingRate, nil
	}
	for _, iv := range t.Intervals {
		if (iv.Low == nil || v > *iv.Low) && (iv.High == nil || v <= *iv.High) {
			return iv.Rate, nil
		}
	}
	return 0, &OutOfRangeError{Ratio: ratio, Value: v}
}

// OutOfRangeError reports a numeric value no interval of the ratio's
// scoring table covers.
type OutOfRangeError struct {
	Ratio string
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %v of ratio %q falls outside every scoring interval", e.Value, e.Ratio)
}

// MissingFeaturesError reports required ratios a row did not supply at all.
type MissingFeaturesError struct {
	Missing []string
}

func (e *MissingFeaturesError) Error() string {
	m := append([]string(nil), e.Missing...)
	sort.Strings(m)
	return "missing required ratios: " + strings.Join(m, ", ")
}
