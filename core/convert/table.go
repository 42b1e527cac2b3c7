package convert

import "wageman/core/wage"

// Row holds one unit's values keyed by prefix.
type Row map[wage.Prefix]float64

// Table holds the converted value for every (Unit, Prefix) pair.
type Table map[wage.Unit]Row

// Cell is one entry of a Table.
type Cell struct {
	Unit   wage.Unit
	Prefix wage.Prefix
	Value  float64
}

// Wage returns the cell as a Wage.
func (c Cell) Wage() wage.Wage {
	return wage.New(c.Value, c.Prefix, c.Unit)
}

// ToAll builds the full table for w. The wage is normalized once, then
// re-expanded into each cell.
func ToAll(w wage.Wage) Table {
	base := Normalize(w)

	units := wage.Units()
	table := make(Table, units.Remaining())
	for unit := range units.Seq() {
		prefixes := wage.Prefixes()
		row := make(Row, prefixes.Remaining())
		for prefix := range prefixes.Seq() {
			row[prefix] = Convert(base, prefix, unit)
		}
		table[unit] = row
	}
	return table
}

// Get returns the value at (unit, prefix).
func (t Table) Get(unit wage.Unit, prefix wage.Prefix) (float64, bool) {
	row, ok := t[unit]
	if !ok {
		return 0, false
	}
	v, ok := row[prefix]
	return v, ok
}

// Len counts the cells in the table.
func (t Table) Len() int {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	return n
}

// Cells lists the table units-first, each in declaration order.
func (t Table) Cells() []Cell {
	cells := make([]Cell, 0, t.Len())
	for unit := range wage.Units().Seq() {
		for prefix := range wage.Prefixes().Seq() {
			if v, ok := t.Get(unit, prefix); ok {
				cells = append(cells, Cell{Unit: unit, Prefix: prefix, Value: v})
			}
		}
	}
	return cells
}
