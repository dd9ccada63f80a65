package registry

import (
	"testing"

	"github.com/opd-ai/go-qtty/pkg/qtty/angular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullTurn(t *testing.T) {
	tests := []struct {
		id   UnitID
		want float64
	}{
		{Degree, 360},
		{HourAngle, 24},
		{Arcsecond, 1_296_000},
		{Radian, angular.Tau},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			got, err := FullTurn(tt.id)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-15)
		})
	}

	deg, err := FullTurn(Degree)
	require.NoError(t, err)
	assert.Equal(t, angular.FullTurn[angular.Degree](), deg)

	_, err = FullTurn(Meter)
	assert.ErrorIs(t, err, ErrIncompatibleDimension)
	_, err = FullTurn(UnitID(999))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Quantity
		r    angular.Range
		want float64
	}{
		{"pos", Quantity{Value: -90, Unit: Degree}, angular.RangePositive, 270},
		{"signed", Quantity{Value: 270, Unit: Degree}, angular.RangeSigned, -90},
		{"signed edge", Quantity{Value: -180, Unit: Degree}, angular.RangeSigned, 180},
		{"signed-lo edge", Quantity{Value: 180, Unit: Degree}, angular.RangeSignedLo, -180},
		{"quarter", Quantity{Value: 100, Unit: Degree}, angular.RangeQuarterFold, 80},
		{"hour angle", Quantity{Value: 25, Unit: HourAngle}, angular.RangePositive, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.in, tt.r)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value, 1e-12)
			assert.Equal(t, tt.in.Unit, got.Unit)
		})
	}

	_, err := Wrap(Quantity{Value: 1, Unit: Second}, angular.RangePositive)
	assert.ErrorIs(t, err, ErrIncompatibleDimension)
}

func TestSeparation(t *testing.T) {
	signed, abs, err := Separation(Quantity{Value: 10, Unit: Degree}, Quantity{Value: 350, Unit: Degree})
	require.NoError(t, err)
	assert.InDelta(t, 20, signed.Value, 1e-12)
	assert.InDelta(t, 20, abs.Value, 1e-12)

	signed, abs, err = Separation(Quantity{Value: 350, Unit: Degree}, Quantity{Value: 1, Unit: HourAngle})
	require.NoError(t, err)
	assert.InDelta(t, -25, signed.Value, 1e-12)
	assert.InDelta(t, 25, abs.Value, 1e-12)
	assert.Equal(t, Degree, abs.Unit)

	_, _, err = Separation(Quantity{Value: 1, Unit: Degree}, Quantity{Value: 1, Unit: Meter})
	assert.ErrorIs(t, err, ErrIncompatibleDimension)
}
