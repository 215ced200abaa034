package kinematics

import (
	stdErrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supakorn-kn/go-catalog/errors"
)

func TestComputeDistance(t *testing.T) {

	t.Run("Should compute distance from km/h over seconds", func(t *testing.T) {

		actual, err := ComputeDistance(New(0, Kilometers), New(10000, KilometersPerHour), New(3600, Seconds))
		require.NoError(t, err)
		assert.Equal(t, Kilometers, actual.Unit)
		assert.InDelta(t, 10000, actual.Value, 1e-9)
	})

	t.Run("Should convert mixed units before combining", func(t *testing.T) {

		actual, err := ComputeDistance(New(500, Meters), New(10, MetersPerSecond), New(0.5, Hours))
		require.NoError(t, err)
		assert.InDelta(t, 0.5+18, actual.Value, 1e-9)
	})

	t.Run("Should return initial distance exactly when elapsed time is zero", func(t *testing.T) {

		for _, d0 := range []float64{0, 0.1, 1234.5678, -3.3} {

			actual, err := ComputeDistance(New(d0, Kilometers), New(98765.4321, KilometersPerHour), New(0, Seconds))
			require.NoError(t, err)
			assert.Equal(t, d0, actual.Value)
		}
	})

	t.Run("Should be non-decreasing in elapsed time for non-negative velocity", func(t *testing.T) {

		previous := math.Inf(-1)
		for seconds := 0.0; seconds <= 7200; seconds += 137 {

			actual, err := ComputeDistance(New(42, Kilometers), New(1500, KilometersPerHour), New(seconds, Seconds))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, actual.Value, previous)
			previous = actual.Value
		}
	})

	t.Run("Should throw error when elapsed time is negative", func(t *testing.T) {

		_, err := ComputeDistance(New(0, Kilometers), New(10, KilometersPerHour), New(-1, Seconds))
		assert.True(t, errors.InvalidInputError.IsEqual(err))
	})

	t.Run("Should throw error when units do not match the operands", func(t *testing.T) {

		var testCases = map[string][3]Quantity{
			"acceleration as velocity": {New(0, Kilometers), New(3, MetersPerSecondSquared), New(1, Seconds)},
			"velocity as distance":     {New(0, KilometersPerHour), New(3, KilometersPerHour), New(1, Seconds)},
			"distance as time":         {New(0, Kilometers), New(3, KilometersPerHour), New(1, Kilometers)},
			"missing unit":             {New(0, Kilometers), {Value: 3}, New(1, Seconds)},
		}

		for name, args := range testCases {

			t.Run(name, func(t *testing.T) {

				_, err := ComputeDistance(args[0], args[1], args[2])
				assert.True(t, errors.UnitMismatchError.IsEqual(err), "got %v", err)
			})
		}
	})

	t.Run("Should throw error when a value is not finite", func(t *testing.T) {

		_, err := ComputeDistance(New(0, Kilometers), New(math.NaN(), KilometersPerHour), New(1, Seconds))
		assert.True(t, errors.InvalidInputError.IsEqual(err))
	})

	t.Run("Should throw error when the result overflows", func(t *testing.T) {

		_, err := ComputeDistance(New(0, Kilometers), New(1e308, KilometersPerHour), New(1e10, Hours))
		assert.True(t, errors.InvalidInputError.IsEqual(err), "got %v", err)

		_, err = ComputeDistance(New(math.MaxFloat64, Kilometers), New(math.MaxFloat64, KilometersPerHour), New(1, Hours))
		assert.True(t, errors.InvalidInputError.IsEqual(err), "got %v", err)
	})
}

func TestComputeRemainingFuel(t *testing.T) {

	t.Run("Should compute remaining fuel", func(t *testing.T) {

		actual, err := ComputeRemainingFuel(New(5000, Kilograms), New(0.5, KilogramsPerSecond), New(3600, Seconds), RejectDepletion)
		require.NoError(t, err)
		assert.Equal(t, New(3200, Kilograms), actual)
	})

	t.Run("Should allow burning exactly all fuel", func(t *testing.T) {

		actual, err := ComputeRemainingFuel(New(100, Kilograms), New(1, KilogramsPerSecond), New(100, Seconds), RejectDepletion)
		require.NoError(t, err)
		assert.Equal(t, 0.0, actual.Value)
	})

	t.Run("Should reject depletion by default", func(t *testing.T) {

		actual, err := ComputeRemainingFuel(New(100, Kilograms), New(1, KilogramsPerSecond), New(101, Seconds), RejectDepletion)
		require.Error(t, err)
		assert.True(t, errors.DepletedFuelError.IsEqual(err))
		assert.Empty(t, actual)
	})

	t.Run("Should clamp to zero with clamp policy", func(t *testing.T) {

		actual, err := ComputeRemainingFuel(New(100, Kilograms), New(1, KilogramsPerSecond), New(1, Hours), ClampDepletion)
		require.NoError(t, err)
		assert.Equal(t, New(0, Kilograms), actual)
	})

	t.Run("Should never return negative fuel", func(t *testing.T) {

		for _, policy := range []DepletionPolicy{RejectDepletion, ClampDepletion} {
			for seconds := 0.0; seconds < 20000; seconds += 999 {

				actual, err := ComputeRemainingFuel(New(5000, Kilograms), New(0.5, KilogramsPerSecond), New(seconds, Seconds), policy)
				if err != nil {
					assert.True(t, errors.DepletedFuelError.IsEqual(err))
					continue
				}
				assert.GreaterOrEqual(t, actual.Value, 0.0)
			}
		}
	})

	t.Run("Should throw error when input is invalid", func(t *testing.T) {

		_, err := ComputeRemainingFuel(New(100, Kilograms), New(1, KilogramsPerSecond), New(-1, Seconds), ClampDepletion)
		assert.True(t, errors.InvalidInputError.IsEqual(err))

		_, err = ComputeRemainingFuel(New(100, Kilograms), New(-1, KilogramsPerSecond), New(1, Seconds), ClampDepletion)
		assert.True(t, errors.InvalidInputError.IsEqual(err))

		_, err = ComputeRemainingFuel(New(-100, Kilograms), New(1, KilogramsPerSecond), New(1, Seconds), ClampDepletion)
		assert.True(t, errors.InvalidInputError.IsEqual(err))
	})

	t.Run("Should throw error when burn rate is not a mass flow", func(t *testing.T) {

		_, err := ComputeRemainingFuel(New(100, Kilograms), New(1, Kilograms), New(1, Seconds), RejectDepletion)
		assert.True(t, errors.UnitMismatchError.IsEqual(err))
	})

	t.Run("Should throw error when the burned fuel overflows", func(t *testing.T) {

		for _, policy := range []DepletionPolicy{RejectDepletion, ClampDepletion} {

			_, err := ComputeRemainingFuel(New(100, Kilograms), New(1e308, KilogramsPerSecond), New(1e10, Seconds), policy)
			assert.True(t, errors.InvalidInputError.IsEqual(err), "%s: got %v", policy, err)
		}
	})
}

func TestComputeFinalVelocity(t *testing.T) {

	t.Run("Should derive final velocity from acceleration", func(t *testing.T) {

		actual, err := ComputeFinalVelocity(New(10000, KilometersPerHour), New(3, MetersPerSecondSquared), New(3600, Seconds))
		require.NoError(t, err)
		assert.Equal(t, KilometersPerHour, actual.Unit)
		assert.InDelta(t, 48880, actual.Value, 1e-6)
	})

	t.Run("Should keep the unit of the initial velocity", func(t *testing.T) {

		actual, err := ComputeFinalVelocity(New(10, MetersPerSecond), New(12960, KilometersPerHourSquared), New(10, Seconds))
		require.NoError(t, err)
		assert.Equal(t, MetersPerSecond, actual.Unit)
		assert.InDelta(t, 20, actual.Value, 1e-9)
	})

	t.Run("Should return initial velocity when elapsed time is zero", func(t *testing.T) {

		actual, err := ComputeFinalVelocity(New(123, KilometersPerHour), New(3, MetersPerSecondSquared), New(0, Seconds))
		require.NoError(t, err)
		assert.InDelta(t, 123, actual.Value, 1e-9)
	})

	t.Run("Should throw error when acceleration is not an acceleration", func(t *testing.T) {

		_, err := ComputeFinalVelocity(New(10000, KilometersPerHour), New(3, MetersPerSecond), New(3600, Seconds))
		assert.True(t, errors.UnitMismatchError.IsEqual(err))
	})

	t.Run("Should throw error when elapsed time is negative", func(t *testing.T) {

		_, err := ComputeFinalVelocity(New(10000, KilometersPerHour), New(3, MetersPerSecondSquared), New(-3600, Seconds))
		assert.True(t, errors.InvalidInputError.IsEqual(err))
	})

	t.Run("Should throw error when the result overflows", func(t *testing.T) {

		_, err := ComputeFinalVelocity(New(0, MetersPerSecond), New(1e308, MetersPerSecondSquared), New(1e10, Seconds))
		assert.True(t, errors.InvalidInputError.IsEqual(err), "got %v", err)
	})
}

func TestMissionReport(t *testing.T) {

	t.Run("Should compute the default mission", func(t *testing.T) {

		report, err := DefaultMission().Report(RejectDepletion)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"New Velocity: 48880.00 km/h",
			"New Distance: 10000.00 km",
			"Remaining Fuel: 3200.00 kg",
		}, report.Lines())
	})

	t.Run("Should wrap errors with the failing value", func(t *testing.T) {

		mission := DefaultMission()
		mission.Elapsed = New(3, Hours)

		_, err := mission.Report(RejectDepletion)
		require.Error(t, err)
		assert.True(t, stdErrors.Is(err, errors.DepletedFuelError))
		assert.Contains(t, err.Error(), "remaining fuel")

		report, err := mission.Report(ClampDepletion)
		require.NoError(t, err)
		assert.Equal(t, 0.0, report.RemainingFuel.Value)
	})
}

func TestParseDepletionPolicy(t *testing.T) {

	policy, err := ParseDepletionPolicy("clamp")
	require.NoError(t, err)
	assert.Equal(t, ClampDepletion, policy)

	policy, err = ParseDepletionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RejectDepletion, policy)

	_, err = ParseDepletionPolicy("ignore")
	assert.True(t, errors.InvalidInputError.IsEqual(err))
}
