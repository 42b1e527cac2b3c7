package wage

import (
	"fmt"

	"wageman/core/enumit"
)

// Unit is the length of one workday.
type Unit int

const (
	UnitHour4 Unit = iota
	UnitHour6
	UnitHour8
)

var unitVariants = []Unit{UnitHour4, UnitHour6, UnitHour8}

// Units returns a fresh iterator over every unit in declaration order.
func Units() *enumit.Iter[Unit] {
	return enumit.New(unitVariants)
}

// String returns the display label.
func (u Unit) String() string {
	switch u {
	case UnitHour4:
		return "4 hours"
	case UnitHour6:
		return "6 hours"
	case UnitHour8:
		return "8 hours"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Hours returns the workday length in hours.
func (u Unit) Hours() int {
	switch u {
	case UnitHour4:
		return 4
	case UnitHour6:
		return 6
	case UnitHour8:
		return 8
	}
	panic(fmt.Sprintf("wage: unknown unit %d", int(u)))
}
