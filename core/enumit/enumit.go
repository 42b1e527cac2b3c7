// Package enumit provides ordered iteration over closed enumerations.
// Each enumeration keeps one static list of its variants and hands out a
// fresh Iter per walk, so walks never share position.
package enumit

import "iter"

// Iter walks a fixed, ordered list of values.
// The zero value is an exhausted iterator.
type Iter[T any] struct {
	values []T
	pos    int
}

// New returns an iterator positioned at the first element of values.
// The slice is read, never written.
func New[T any](values []T) *Iter[T] {
	return &Iter[T]{values: values}
}

// Next returns the next value. Once the list is exhausted it returns the
// zero value and false on every call.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos >= len(it.values) {
		var zero T
		return zero, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

// Remaining returns how many values Next will still produce.
func (it *Iter[T]) Remaining() int {
	return len(it.values) - it.pos
}

// Seq adapts the iterator for range-over-func. Values consumed by the
// loop are consumed from the iterator as well.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the iterator into a new slice.
func (it *Iter[T]) Collect() []T {
	out := make([]T, 0, it.Remaining())
	for v := range it.Seq() {
		out = append(out, v)
	}
	return out
}
