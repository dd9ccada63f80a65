package chrono

import (
	"math"
	"testing"
	"time"

	"github.com/opd-ai/go-qtty/pkg/qtty"
	"github.com/stretchr/testify/assert"
)

func TestFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Duration
		expected float64
	}{
		{"zero", 0, 0},
		{"one_and_a_half_seconds", 1500 * time.Millisecond, 1.5},
		{"negative_minute", -time.Minute, -60},
		{"day", 24 * time.Hour, 86400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FromDuration(tt.in).Value(), 1e-9)
		})
	}

	assert.InDelta(t, 1.0, qtty.To[Day](FromDuration(24*time.Hour)).Value(), 1e-12)
}

func TestToDuration(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"hours", ToDuration(NewHours(2)), 2 * time.Hour},
		{"milliseconds", ToDuration(NewMilliseconds(250)), 250 * time.Millisecond},
		{"negative_days", ToDuration(NewDays(-1)), -24 * time.Hour},
		{"week", ToDuration(NewWeeks(1)), 7 * 24 * time.Hour},
		{"saturates_high", ToDuration(NewCenturies(1e9)), time.Duration(math.MaxInt64)},
		{"saturates_low", ToDuration(NewCenturies(-1e9)), time.Duration(math.MinInt64)},
		{"nan", ToDuration(qtty.NaN[Second]()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, float64(tt.expected), float64(tt.got), float64(time.Microsecond))
		})
	}
}

func TestTimeUnits(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"seconds_per_minute", qtty.To[Second](NewMinutes(1)).Value(), 60},
		{"minutes_per_hour", qtty.To[Minute](NewHours(1)).Value(), 60},
		{"days_per_week", qtty.To[Day](NewWeeks(1)).Value(), 7},
		{"days_per_year", qtty.To[Day](NewYears(1)).Value(), 365.2425},
		{"years_per_century", qtty.To[Year](NewCenturies(1)).Value(), 100},
		{"julian_days_per_century", qtty.To[Day](NewJulianCenturies(1)).Value(), 36525},
		{"ms_per_second", qtty.To[Millisecond](NewSeconds(1)).Value(), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.expected, tt.got, 1e-12)
		})
	}
}
