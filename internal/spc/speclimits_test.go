package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecLimitsNormalization(t *testing.T) {
	tests := []struct {
		name      string
		lower     OptionalValue
		upper     OptionalValue
		target    OptionalValue
		wantLower OptionalValue
		wantUpper OptionalValue
		wantTgt   OptionalValue
	}{
		{
			name:  "bilateral with explicit target",
			lower: Value(5), upper: Value(8), target: Value(6),
			wantLower: Value(5), wantUpper: Value(8), wantTgt: Value(6),
		},
		{
			name:  "bilateral target defaults to midpoint",
			lower: Value(5), upper: Value(8), target: Absent(),
			wantLower: Value(5), wantUpper: Value(8), wantTgt: Value(6.5),
		},
		{
			name:  "swapped limits are corrected",
			lower: Value(8), upper: Value(5), target: Absent(),
			wantLower: Value(5), wantUpper: Value(8), wantTgt: Value(6.5),
		},
		{
			name:  "lone lower limit without target stays put",
			lower: Value(5), upper: Absent(), target: Absent(),
			wantLower: Value(5), wantUpper: Absent(), wantTgt: Absent(),
		},
		{
			name:  "lone upper limit without target stays put",
			lower: Absent(), upper: Value(8), target: Absent(),
			wantLower: Absent(), wantUpper: Value(8), wantTgt: Absent(),
		},
		{
			name:  "lower below target is confirmed as lower",
			lower: Value(5), upper: Absent(), target: Value(7),
			wantLower: Value(5), wantUpper: Absent(), wantTgt: Value(7),
		},
		{
			name:  "lower above target is reinterpreted as upper",
			lower: Value(9), upper: Absent(), target: Value(7),
			wantLower: Absent(), wantUpper: Value(9), wantTgt: Value(7),
		},
		{
			name:  "upper below target is reinterpreted as lower",
			lower: Absent(), upper: Value(5), target: Value(7),
			wantLower: Value(5), wantUpper: Absent(), wantTgt: Value(7),
		},
		{
			name:  "limit equal to target keeps its slot",
			lower: Value(7), upper: Absent(), target: Value(7),
			wantLower: Value(7), wantUpper: Absent(), wantTgt: Value(7),
		},
		{
			name:  "target only",
			lower: Absent(), upper: Absent(), target: Value(7),
			wantLower: Absent(), wantUpper: Absent(), wantTgt: Value(7),
		},
		{
			name:  "nothing at all",
			lower: Absent(), upper: Absent(), target: Absent(),
			wantLower: Absent(), wantUpper: Absent(), wantTgt: Absent(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits, err := NewSpecLimits(tt.lower, tt.upper, tt.target)
			require.NoError(t, err)

			got, ok := limits.Lower()
			assert.Equal(t, tt.wantLower.Valid, ok, "lower presence")
			if tt.wantLower.Valid {
				assert.Equal(t, tt.wantLower.Value, got, "lower value")
			}

			got, ok = limits.Upper()
			assert.Equal(t, tt.wantUpper.Valid, ok, "upper presence")
			if tt.wantUpper.Valid {
				assert.Equal(t, tt.wantUpper.Value, got, "upper value")
			}

			got, ok = limits.Target()
			assert.Equal(t, tt.wantTgt.Valid, ok, "target presence")
			if tt.wantTgt.Valid {
				assert.Equal(t, tt.wantTgt.Value, got, "target value")
			}
		})
	}
}

func TestNewSpecLimitsTargetOutsideLimits(t *testing.T) {
	for _, target := range []float64{4.9, 8.1} {
		_, err := NewSpecLimits(Value(5), Value(8), Value(target))
		require.Error(t, err, "target %g", target)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "target", verr.Field)
		assert.Equal(t, target, verr.Value)
	}

	// Targets on the boundary are fine.
	for _, target := range []float64{5, 8} {
		_, err := NewSpecLimits(Value(5), Value(8), Value(target))
		assert.NoError(t, err, "target %g", target)
	}
}

func TestSpecLimitsHasSpec(t *testing.T) {
	empty, err := NewSpecLimits(Absent(), Absent(), Absent())
	require.NoError(t, err)
	assert.False(t, empty.HasSpec())

	targetOnly, err := NewSpecLimits(Absent(), Absent(), Value(7))
	require.NoError(t, err)
	assert.True(t, targetOnly.HasSpec())

	lowerOnly, err := NewSpecLimits(Value(5), Absent(), Absent())
	require.NoError(t, err)
	assert.True(t, lowerOnly.HasSpec())
}
