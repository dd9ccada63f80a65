package chrono

import (
	"math"
	"time"

	"github.com/opd-ai/go-qtty/pkg/qtty"
)

// FromDuration converts a time.Duration to seconds.
func FromDuration(d time.Duration) Seconds {
	return NewSeconds(d.Seconds())
}

// ToDuration converts any time quantity to a time.Duration, rounding to the
// nearest nanosecond. Values beyond the range of time.Duration saturate.
func ToDuration[U Unit](q qtty.Quantity[U]) time.Duration {
	ns := math.Round(qtty.To[Second](q).Value() * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
