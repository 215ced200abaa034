package errors

const (
	InvalidInputErrorCode = 300_001
	UnitMismatchErrorCode = 300_002
	DepletedFuelErrorCode = 300_003
)

// InvalidInputError indicates a calculation got a value outside its domain, e.g. negative elapsed time
var InvalidInputError = new(InvalidInputErrorCode, "InvalidInput", "invalid input: %s")

// UnitMismatchError indicates quantities with incompatible or missing units were combined
var UnitMismatchError = new(UnitMismatchErrorCode, "UnitMismatch", "unit mismatch: %s")

// DepletedFuelError indicates the remaining fuel would become negative
var DepletedFuelError = new(DepletedFuelErrorCode, "DepletedFuel", "fuel depleted after %.2f s, %.2f kg short")
