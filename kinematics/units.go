package kinematics

import (
	"fmt"
	"math"

	"github.com/supakorn-kn/go-catalog/errors"
)

type Unit string

const (
	Kilometers Unit = "km"
	Meters     Unit = "m"

	KilometersPerHour Unit = "km/h"
	MetersPerSecond   Unit = "m/s"

	MetersPerSecondSquared   Unit = "m/s^2"
	KilometersPerHourSquared Unit = "km/h^2"

	Seconds Unit = "s"
	Hours   Unit = "h"

	Kilograms Unit = "kg"
	Tonnes    Unit = "t"

	KilogramsPerSecond Unit = "kg/s"
	KilogramsPerHour   Unit = "kg/h"
)

type Dimension uint8

const (
	UnknownDimension Dimension = iota
	Length
	Velocity
	Acceleration
	Time
	Mass
	MassFlow
)

func (d Dimension) String() string {

	switch d {
	case Length:
		return "length"
	case Velocity:
		return "velocity"
	case Acceleration:
		return "acceleration"
	case Time:
		return "time"
	case Mass:
		return "mass"
	case MassFlow:
		return "mass flow"
	default:
		return "unknown"
	}
}

type unitInfo struct {
	dimension Dimension
	// toSI multiplies a value in this unit into m, m/s, m/s^2, s, kg or kg/s.
	toSI float64
}

var units = map[Unit]unitInfo{
	Kilometers:               {Length, 1000},
	Meters:                   {Length, 1},
	KilometersPerHour:        {Velocity, 1000.0 / 3600.0},
	MetersPerSecond:          {Velocity, 1},
	MetersPerSecondSquared:   {Acceleration, 1},
	KilometersPerHourSquared: {Acceleration, 1000.0 / (3600.0 * 3600.0)},
	Seconds:                  {Time, 1},
	Hours:                    {Time, 3600},
	Kilograms:                {Mass, 1},
	Tonnes:                   {Mass, 1000},
	KilogramsPerSecond:       {MassFlow, 1},
	KilogramsPerHour:         {MassFlow, 1.0 / 3600.0},
}

// Dimension returns UnknownDimension for an empty or unrecognised unit.
func (u Unit) Dimension() Dimension {
	return units[u].dimension
}

func (u Unit) Known() bool {
	_, ok := units[u]
	return ok
}

// Quantity is a value tagged with its unit of measurement.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// In converts q into unit. Both units must share a dimension.
func (q Quantity) In(unit Unit) (Quantity, error) {

	from, ok := units[q.Unit]
	if !ok {
		return Quantity{}, errors.UnitMismatchError.New(fmt.Sprintf("unknown unit %q", q.Unit))
	}

	to, ok := units[unit]
	if !ok {
		return Quantity{}, errors.UnitMismatchError.New(fmt.Sprintf("unknown unit %q", unit))
	}

	if from.dimension != to.dimension {
		return Quantity{}, errors.UnitMismatchError.New(fmt.Sprintf("cannot convert %s (%s) to %s (%s)", q.Unit, from.dimension, unit, to.dimension))
	}

	if q.Unit == unit {
		return q, nil
	}

	return Quantity{Value: q.Value * from.toSI / to.toSI, Unit: unit}, nil
}

// as validates q as the named operand of the given dimension and returns its value in unit.
func (q Quantity) as(operand string, dimension Dimension, unit Unit) (float64, error) {

	if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
		return 0, errors.InvalidInputError.New(fmt.Sprintf("%s must be a finite number", operand))
	}

	if q.Unit == "" {
		return 0, errors.UnitMismatchError.New(fmt.Sprintf("%s has no unit", operand))
	}

	if got := q.Unit.Dimension(); got != dimension {
		return 0, errors.UnitMismatchError.New(fmt.Sprintf("%s must be a %s, got %q (%s)", operand, dimension, q.Unit, got))
	}

	converted, err := q.In(unit)
	if err != nil {
		return 0, err
	}

	return converted.Value, nil
}
