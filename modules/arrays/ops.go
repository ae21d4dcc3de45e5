package arraymod

import (
	"slices"

	"github.com/rubiojr/pyproto/modules"
)

// Append adds item to the end of s.
func Append[T any](s *[]T, item T) {
	*s = append(*s, item)
}

// Count returns how many elements of s equal item.
func Count[T comparable](s []T, item T) int {
	return CountFunc(s, func(v T) bool { return v == item })
}

// CountFunc returns how many elements of s satisfy match.
func CountFunc[T any](s []T, match func(T) bool) int {
	n := 0
	for _, v := range s {
		if match(v) {
			n++
		}
	}
	return n
}

// Extend appends every value produced by other, in its iteration order.
func Extend[T any](s *[]T, other modules.Iterable[T]) {
	*s = append(*s, other.Values()...)
}

// Index returns the position of the first element equal to item.
func Index[T comparable](s []T, item T) (int, error) {
	return IndexFunc(s, func(v T) bool { return v == item })
}

// IndexFunc returns the position of the first element satisfying match.
func IndexFunc[T any](s []T, match func(T) bool) (int, error) {
	if i := slices.IndexFunc(s, match); i >= 0 {
		return i, nil
	}
	return -1, modules.Errorf(modules.ErrNotFound, "arrays.index", "item not in sequence")
}

// Insert places item before position idx. A negative idx counts from the
// end; positions outside the sequence clamp to the nearest end.
func Insert[T any](s *[]T, idx int, item T) {
	n := len(*s)
	if idx < 0 {
		idx = max(n+idx, 0)
	}
	idx = min(idx, n)
	*s = slices.Insert(*s, idx, item)
}

// PopItem removes and returns the element at idx, or the last element when
// idx is omitted.
func PopItem[T any](s *[]T, idx ...int) (T, error) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, modules.Errorf(modules.ErrOutOfRange, "arrays.popItem", "pop from empty sequence")
	}
	i := n - 1
	if len(idx) > 0 {
		i = idx[0]
	}
	if i < 0 || i >= n {
		return zero, modules.Errorf(modules.ErrOutOfRange, "arrays.popItem", "index %d out of range [0, %d)", i, n)
	}
	v := (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return v, nil
}

// Remove deletes the first element equal to item.
func Remove[T comparable](s *[]T, item T) error {
	return RemoveFunc(s, func(v T) bool { return v == item })
}

// RemoveFunc deletes the first element satisfying match.
func RemoveFunc[T any](s *[]T, match func(T) bool) error {
	i := slices.IndexFunc(*s, match)
	if i < 0 {
		return modules.Errorf(modules.ErrNotFound, "arrays.remove", "item not in sequence")
	}
	*s = slices.Delete(*s, i, i+1)
	return nil
}
