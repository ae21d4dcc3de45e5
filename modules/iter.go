package modules

import (
	"cmp"
	"slices"
	"strconv"
)

// Iterable produces the values of a collection in a stable order. Both
// sequences and mappings implement it, so operations that consume "either
// a list or a dict" accept an Iterable instead of inspecting types.
type Iterable[T any] interface {
	Values() []T
}

// Keyed resolves a string key to a value.
type Keyed[T any] interface {
	Lookup(key string) (T, bool)
}

// Seq adapts a slice. Its keys are the decimal indices "0".."n-1".
type Seq[T any] []T

func (s Seq[T]) Values() []T { return s }

func (s Seq[T]) Lookup(key string) (T, bool) {
	var zero T
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(s) || strconv.Itoa(i) != key {
		return zero, false
	}
	return s[i], true
}

// Map adapts a string-keyed map. Values come in ascending key order.
type Map[V any] map[string]V

func (m Map[V]) Values() []V {
	keys := SortedKeys(m)
	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return vals
}

func (m Map[V]) Lookup(key string) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// AsIterable adapts the dynamic shapes produced by decoders and callers:
// []interface{}, *[]interface{}, []string, map[string]interface{}.
func AsIterable(v interface{}) (Iterable[interface{}], bool) {
	switch x := v.(type) {
	case Iterable[interface{}]:
		return x, true
	case []interface{}:
		return Seq[interface{}](x), true
	case *[]interface{}:
		if x == nil {
			return nil, false
		}
		return Seq[interface{}](*x), true
	case []string:
		return Seq[interface{}](anySlice(x)), true
	case map[string]interface{}:
		return Map[interface{}](x), true
	case map[string]string:
		m := make(Map[interface{}], len(x))
		for k, s := range x {
			m[k] = s
		}
		return m, true
	}
	return nil, false
}

// AsKeyed adapts the same shapes as AsIterable for key lookup.
func AsKeyed(v interface{}) (Keyed[interface{}], bool) {
	if k, ok := v.(Keyed[interface{}]); ok {
		return k, true
	}
	it, ok := AsIterable(v)
	if !ok {
		return nil, false
	}
	k, ok := it.(Keyed[interface{}])
	return k, ok
}

func anySlice(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
