// Package wage defines the closed enumerations a wage is stated in and the
// Wage value object itself.
package wage

import (
	"fmt"

	"wageman/core/enumit"
)

// Prefix is the pay period a wage is stated per.
type Prefix int

const (
	PrefixHour Prefix = iota
	PrefixDay
	PrefixMonth
)

// DaysPerMonth is the number of workdays counted in one Month period.
const DaysPerMonth = 30

var prefixVariants = []Prefix{PrefixHour, PrefixDay, PrefixMonth}

// Prefixes returns a fresh iterator over every prefix in declaration order.
func Prefixes() *enumit.Iter[Prefix] {
	return enumit.New(prefixVariants)
}

// String returns the display label.
func (p Prefix) String() string {
	switch p {
	case PrefixHour:
		return "Hour"
	case PrefixDay:
		return "Day"
	case PrefixMonth:
		return "Month"
	}
	return fmt.Sprintf("Prefix(%d)", int(p))
}

// Hours returns how many hours one period of p spans when a workday is u
// long. The result is positive for every valid (p, u) pair.
func (p Prefix) Hours(u Unit) int {
	switch p {
	case PrefixHour:
		return 1
	case PrefixDay:
		return u.Hours()
	case PrefixMonth:
		return u.Hours() * DaysPerMonth
	}
	panic(fmt.Sprintf("wage: unknown prefix %d", int(p)))
}
