package kinematics

import (
	"fmt"
	"math"

	"github.com/supakorn-kn/go-catalog/errors"
)

// DepletionPolicy decides what ComputeRemainingFuel does when the burn outlasts the fuel.
type DepletionPolicy uint8

const (
	// RejectDepletion fails with DepletedFuelError.
	RejectDepletion DepletionPolicy = iota
	// ClampDepletion reports zero remaining fuel.
	ClampDepletion
)

func ParseDepletionPolicy(s string) (DepletionPolicy, error) {

	switch s {
	case "", "reject":
		return RejectDepletion, nil
	case "clamp":
		return ClampDepletion, nil
	default:
		return RejectDepletion, errors.InvalidInputError.New(fmt.Sprintf("unknown depletion policy %q", s))
	}
}

func (p DepletionPolicy) String() string {

	if p == ClampDepletion {
		return "clamp"
	}

	return "reject"
}

// ComputeDistance returns initialDistance + velocity*elapsed in kilometers.
func ComputeDistance(initialDistance, velocity, elapsed Quantity) (Quantity, error) {

	hours, err := elapsedIn(elapsed, Hours)
	if err != nil {
		return Quantity{}, err
	}

	d0, err := initialDistance.as("initial distance", Length, Kilometers)
	if err != nil {
		return Quantity{}, err
	}

	v, err := velocity.as("velocity", Velocity, KilometersPerHour)
	if err != nil {
		return Quantity{}, err
	}

	return finite("distance", New(d0+v*hours, Kilometers))
}

// ComputeRemainingFuel returns initialFuel - burnRate*elapsed in kilograms.
// A burn that would leave negative fuel is handled by policy.
func ComputeRemainingFuel(initialFuel, burnRate, elapsed Quantity, policy DepletionPolicy) (Quantity, error) {

	seconds, err := elapsedIn(elapsed, Seconds)
	if err != nil {
		return Quantity{}, err
	}

	fuel, err := initialFuel.as("initial fuel", Mass, Kilograms)
	if err != nil {
		return Quantity{}, err
	}

	if fuel < 0 {
		return Quantity{}, errors.InvalidInputError.New("initial fuel cannot be negative")
	}

	rate, err := burnRate.as("burn rate", MassFlow, KilogramsPerSecond)
	if err != nil {
		return Quantity{}, err
	}

	if rate < 0 {
		return Quantity{}, errors.InvalidInputError.New("burn rate cannot be negative")
	}

	burned, err := finite("burned fuel", New(rate*seconds, Kilograms))
	if err != nil {
		return Quantity{}, err
	}

	remaining := fuel - burned.Value
	if remaining >= 0 {
		return New(remaining, Kilograms), nil
	}

	if policy == ClampDepletion {
		return New(0, Kilograms), nil
	}

	return Quantity{}, errors.DepletedFuelError.New(fuel/rate, -remaining)
}

// ComputeFinalVelocity returns initialVelocity + acceleration*elapsed, expressed in the unit of initialVelocity.
func ComputeFinalVelocity(initialVelocity, acceleration, elapsed Quantity) (Quantity, error) {

	seconds, err := elapsedIn(elapsed, Seconds)
	if err != nil {
		return Quantity{}, err
	}

	v0, err := initialVelocity.as("initial velocity", Velocity, MetersPerSecond)
	if err != nil {
		return Quantity{}, err
	}

	a, err := acceleration.as("acceleration", Acceleration, MetersPerSecondSquared)
	if err != nil {
		return Quantity{}, err
	}

	velocity, err := New(v0+a*seconds, MetersPerSecond).In(initialVelocity.Unit)
	if err != nil {
		return Quantity{}, err
	}

	return finite("final velocity", velocity)
}

// finite rejects a result that overflowed the float64 range.
func finite(result string, q Quantity) (Quantity, error) {

	if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
		return Quantity{}, errors.InvalidInputError.New(fmt.Sprintf("%s overflows", result))
	}

	return q, nil
}

func elapsedIn(elapsed Quantity, unit Unit) (float64, error) {

	value, err := elapsed.as("elapsed time", Time, unit)
	if err != nil {
		return 0, err
	}

	if value < 0 {
		return 0, errors.InvalidInputError.New("elapsed time cannot be negative")
	}

	return value, nil
}
