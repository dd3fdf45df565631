// Package units provides shared constants and conversion for speed units.
// Telemetry stores speed in m/s; conversions exist for display only.
package units

// Unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, MPH, KMPH}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Derived trackpoint speeds are always m/s; unknown units fall back to m/s.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPH:
		return speedMPS * 2.23694 // m/s to mph
	case KMPH:
		return speedMPS * 3.6 // m/s to km/h
	default:
		return speedMPS
	}
}
