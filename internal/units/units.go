// Package units provides the unit conversions used when embedding numeric
// literals into generated code. The SolidWorks API works internally in
// meters and radians; instructions and parameter tables use millimeters
// and degrees. Conversion happens exactly once, at the template call
// site — template functions never convert.
package units

import (
	"math"
	"strconv"
)

// MMToMeters converts a length in millimeters to meters.
func MMToMeters(mm float64) float64 {
	return mm / 1000.0
}

// MetersToMM converts a length in meters to millimeters.
func MetersToMM(m float64) float64 {
	return m * 1000.0
}

// DegToRadians converts an angle in degrees to radians.
func DegToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadiansToDeg converts an angle in radians to degrees.
func RadiansToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Format renders a float for embedding in generated code. It uses the
// shortest decimal representation that round-trips, so 0.025 renders as
// "0.025" and whole values render without a trailing ".0" — matching
// what the C# compiler accepts for double literals.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatInt renders an integer-valued count for embedding in generated code.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}
