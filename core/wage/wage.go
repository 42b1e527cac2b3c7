package wage

import "strconv"

// Wage is an amount of money stated per Prefix, assuming a workday of
// Unit hours. Wages are plain values and compare with ==.
type Wage struct {
	Value  float64
	Prefix Prefix
	Unit   Unit
}

// New builds a Wage.
func New(value float64, prefix Prefix, unit Unit) Wage {
	return Wage{Value: value, Prefix: prefix, Unit: unit}
}

// Hours returns the hours covered by one period of this wage.
func (w Wage) Hours() int {
	return w.Prefix.Hours(w.Unit)
}

// String renders the wage as "20 per Hour (8 hours)".
func (w Wage) String() string {
	return strconv.FormatFloat(w.Value, 'g', -1, 64) + " per " + w.Prefix.String() + " (" + w.Unit.String() + ")"
}
