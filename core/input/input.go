// Package input turns command-line text and flags into a validated wage.
package input

import (
	"math"
	"strconv"
	"strings"

	"wageman/core/wage"
	"wageman/internal/errors"
)

// Selection records which prefix and unit flags were given.
type Selection struct {
	Hour  bool
	Day   bool
	Month bool

	Hour4 bool
	Hour6 bool
	Hour8 bool
}

// Prefix returns the single selected prefix.
func (s Selection) Prefix() (wage.Prefix, error) {
	chosen := pick(
		[]bool{s.Hour, s.Day, s.Month},
		[]wage.Prefix{wage.PrefixHour, wage.PrefixDay, wage.PrefixMonth},
	)
	switch len(chosen) {
	case 0:
		return 0, errors.Input("you must specify a prefix (-H, -d or -m)")
	case 1:
		return chosen[0], nil
	}
	return 0, errors.Input("only one prefix may be specified").WithContext("prefixes", chosen)
}

// Unit returns the single selected unit.
func (s Selection) Unit() (wage.Unit, error) {
	chosen := pick(
		[]bool{s.Hour4, s.Hour6, s.Hour8},
		[]wage.Unit{wage.UnitHour4, wage.UnitHour6, wage.UnitHour8},
	)
	switch len(chosen) {
	case 0:
		return 0, errors.Input("you must specify a unit (-4, -6 or -8)")
	case 1:
		return chosen[0], nil
	}
	return 0, errors.Input("only one unit may be specified").WithContext("units", chosen)
}

func pick[T any](set []bool, variants []T) []T {
	var out []T
	for i, ok := range set {
		if ok {
			out = append(out, variants[i])
		}
	}
	return out
}

// ParseValue parses a wage amount. Surrounding whitespace is ignored;
// NaN and infinities are rejected.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Input("value must be a number").WithContext("value", s)
	}
	return v, nil
}

// Parse validates the value and flag selection together.
func Parse(value string, sel Selection) (wage.Wage, error) {
	v, err := ParseValue(value)
	if err != nil {
		return wage.Wage{}, err
	}
	prefix, err := sel.Prefix()
	if err != nil {
		return wage.Wage{}, err
	}
	unit, err := sel.Unit()
	if err != nil {
		return wage.Wage{}, err
	}
	return wage.New(v, prefix, unit), nil
}

// ParsePrefix accepts a prefix label or its short name, in any case:
// "hour"/"h", "day"/"d", "month"/"m".
func ParsePrefix(s string) (wage.Prefix, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hour", "h", "hourly":
		return wage.PrefixHour, nil
	case "day", "d", "daily":
		return wage.PrefixDay, nil
	case "month", "m", "monthly":
		return wage.PrefixMonth, nil
	}
	return 0, errors.Input("unknown prefix " + strconv.Quote(s))
}

// ParseUnit accepts a workday length as "8", "8h" or "8 hours".
func ParseUnit(s string) (wage.Unit, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "hours")
	norm = strings.TrimSuffix(norm, "h")
	norm = strings.TrimSpace(norm)

	for u := range wage.Units().Seq() {
		if norm == strconv.Itoa(u.Hours()) {
			return u, nil
		}
	}
	return 0, errors.Input("unknown unit " + strconv.Quote(s) + " (want 4, 6 or 8)")
}
