package kinematics

import "fmt"

// Mission is the set of flight parameters a report is computed from.
type Mission struct {
	InitialVelocity Quantity `json:"initial_velocity" yaml:"initial_velocity"`
	Acceleration    Quantity `json:"acceleration" yaml:"acceleration"`
	Elapsed         Quantity `json:"elapsed" yaml:"elapsed"`
	InitialDistance Quantity `json:"initial_distance" yaml:"initial_distance"`
	InitialFuel     Quantity `json:"initial_fuel" yaml:"initial_fuel"`
	BurnRate        Quantity `json:"burn_rate" yaml:"burn_rate"`
}

type Report struct {
	FinalVelocity Quantity `json:"final_velocity"`
	Distance      Quantity `json:"distance"`
	RemainingFuel Quantity `json:"remaining_fuel"`
}

// DefaultMission is one hour of flight from 10000 km/h at 3 m/s^2, burning 0.5 kg/s of a 5000 kg load.
func DefaultMission() Mission {

	return Mission{
		InitialVelocity: New(10000, KilometersPerHour),
		Acceleration:    New(3, MetersPerSecondSquared),
		Elapsed:         New(3600, Seconds),
		InitialDistance: New(0, Kilometers),
		InitialFuel:     New(5000, Kilograms),
		BurnRate:        New(0.5, KilogramsPerSecond),
	}
}

func (m Mission) Report(policy DepletionPolicy) (Report, error) {

	velocity, err := ComputeFinalVelocity(m.InitialVelocity, m.Acceleration, m.Elapsed)
	if err != nil {
		return Report{}, fmt.Errorf("final velocity: %w", err)
	}

	distance, err := ComputeDistance(m.InitialDistance, m.InitialVelocity, m.Elapsed)
	if err != nil {
		return Report{}, fmt.Errorf("distance: %w", err)
	}

	fuel, err := ComputeRemainingFuel(m.InitialFuel, m.BurnRate, m.Elapsed, policy)
	if err != nil {
		return Report{}, fmt.Errorf("remaining fuel: %w", err)
	}

	return Report{FinalVelocity: velocity, Distance: distance, RemainingFuel: fuel}, nil
}

// Lines formats each value of the report with two decimals.
func (r Report) Lines() []string {

	return []string{
		fmt.Sprintf("New Velocity: %.2f %s", r.FinalVelocity.Value, r.FinalVelocity.Unit),
		fmt.Sprintf("New Distance: %.2f %s", r.Distance.Value, r.Distance.Unit),
		fmt.Sprintf("Remaining Fuel: %.2f %s", r.RemainingFuel.Value, r.RemainingFuel.Unit),
	}
}
