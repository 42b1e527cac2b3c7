// Package convert turns one wage into its equivalent under every
// (Unit, Prefix) combination.
//
// Every conversion passes through the hourly base rate: the value divided by
// the hours in its own period, then multiplied by the hours in the target
// period. Hours are always positive for valid enumeration values, so no
// conversion can fail.
package convert

import "wageman/core/wage"

// Canonical prefix and unit every wage normalizes to.
const (
	BasePrefix = wage.PrefixHour
	BaseUnit   = wage.UnitHour4
)

// HourlyRate returns w's value per single hour.
func HourlyRate(w wage.Wage) float64 {
	return w.Value / float64(w.Hours())
}

// Convert restates w per prefix, given a workday of unit hours.
func Convert(w wage.Wage, prefix wage.Prefix, unit wage.Unit) float64 {
	return HourlyRate(w) * float64(prefix.Hours(unit))
}

// To is Convert returning the result as a Wage.
func To(w wage.Wage, prefix wage.Prefix, unit wage.Unit) wage.Wage {
	return wage.New(Convert(w, prefix, unit), prefix, unit)
}

// Normalize restates w at the canonical base (per Hour, 4-hour workday).
func Normalize(w wage.Wage) wage.Wage {
	return To(w, BasePrefix, BaseUnit)
}
