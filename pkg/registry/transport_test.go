package registry

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestQuantity_JSON(t *testing.T) {
	q := Quantity{Value: 12.5, Unit: Kilometer}

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":12.5,"unit_id":101}`, string(data))

	var decoded Quantity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, q, decoded)
}

func TestQuantity_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
		status  Status
	}{
		{"missing_value", `{"unit_id":100}`, ErrInvalidValue, StatusInvalidValue},
		{"string_value", `{"value":"ten","unit_id":100}`, ErrInvalidValue, StatusInvalidValue},
		{"null_value", `{"value":null,"unit_id":100}`, ErrInvalidValue, StatusInvalidValue},
		{"missing_unit", `{"value":1}`, ErrUnknownUnit, StatusUnknownUnit},
		{"unknown_unit", `{"value":1,"unit_id":150}`, ErrUnknownUnit, StatusUnknownUnit},
		{"negative_unit", `{"value":1,"unit_id":-1}`, ErrUnknownUnit, StatusUnknownUnit},
		{"fractional_unit", `{"value":1,"unit_id":100.5}`, ErrUnknownUnit, StatusUnknownUnit},
		{"not_an_object", `[1,100]`, ErrInvalidValue, StatusInvalidValue},
		{"null", `null`, ErrInvalidValue, StatusInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := q.UnmarshalJSON([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.status, StatusOf(err))
			assert.Equal(t, Quantity{}, q)
		})
	}

	var q Quantity
	assert.ErrorIs(t, q.UnmarshalJSON([]byte(`{"value":}`)), ErrInvalidValue)
}

func TestValueOnlyJSON(t *testing.T) {
	data, err := MarshalValue(Quantity{Value: 42.5, Unit: Degree})
	require.NoError(t, err)
	assert.Equal(t, "42.5", string(data))

	q, err := UnmarshalValue(data, Degree)
	require.NoError(t, err)
	assert.Equal(t, Quantity{Value: 42.5, Unit: Degree}, q)

	_, err = UnmarshalValue([]byte(`"42.5"`), Degree)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = UnmarshalValue([]byte(`nope`), Degree)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = UnmarshalValue(data, 1234)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = MarshalValue(Quantity{Value: math.NaN(), Unit: Degree})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRate_JSON(t *testing.T) {
	r := Rate{Value: 29.78, Num: Kilometer, Den: Second}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":29.78,"num_unit_id":101,"den_unit_id":200}`, string(data))

	var decoded Rate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)

	assert.ErrorIs(t, decoded.UnmarshalJSON([]byte(`{"value":1,"num_unit_id":101}`)), ErrUnknownUnit)

	_, err = json.Marshal(Rate{Value: math.Inf(1), Num: Meter, Den: Second})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestQuantity_YAML(t *testing.T) {
	out, err := yaml.Marshal(Quantity{Value: 4.24, Unit: LightYear})
	require.NoError(t, err)
	assert.Contains(t, string(out), "value: 4.24")
	assert.Contains(t, string(out), "unit_id: 103")
	assert.Contains(t, string(out), "unit: Ly")

	var back Quantity
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, Quantity{Value: 4.24, Unit: LightYear}, back)

	tests := []struct {
		name     string
		doc      string
		expected Quantity
		wantErr  error
	}{
		{"by_symbol", "value: 2\nunit: Km\n", Quantity{Value: 2, Unit: Kilometer}, nil},
		{"by_name", "value: 1\nunit: SolarMass\n", Quantity{Value: 1, Unit: SolarMass}, nil},
		{"by_id", "value: 7\nunit_id: 205\n", Quantity{Value: 7, Unit: Week}, nil},
		{"missing_value", "unit: Km\n", Quantity{}, ErrInvalidValue},
		{"missing_unit", "value: 3\n", Quantity{}, ErrUnknownUnit},
		{"unknown_symbol", "value: 3\nunit: furlong\n", Quantity{}, ErrUnknownUnit},
		{"unknown_id", "value: 3\nunit_id: 999\n", Quantity{}, ErrUnknownUnit},
		{"mismatch", "value: 3\nunit_id: 100\nunit: Km\n", Quantity{}, ErrUnknownUnit},
		{"bad_value", "value: lots\nunit: Km\n", Quantity{}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := yaml.Unmarshal([]byte(tt.doc), &q)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}
