package mapmod

import (
	"cmp"
	"maps"

	"github.com/rubiojr/pyproto/modules"
)

// Item is one key/value pair of a mapping.
type Item[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Clear removes every entry of m in place.
func Clear[K comparable, V any](m map[K]V) {
	clear(m)
}

// Copy returns a shallow copy of m. Nested values are shared.
func Copy[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}

// FromKeys builds a mapping where every key maps to value.
func FromKeys[K comparable, V any](keys []K, value V) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		out[k] = value
	}
	return out
}

// GetVal returns the value stored at key, or def.
func GetVal[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Items returns the entries of m in ascending key order.
func Items[K cmp.Ordered, V any](m map[K]V) []Item[K, V] {
	keys := modules.SortedKeys(m)
	items := make([]Item[K, V], len(keys))
	for i, k := range keys {
		items[i] = Item[K, V]{Key: k, Value: m[k]}
	}
	return items
}

// Pop removes and returns the value at key. When key is absent, def is
// returned if given; otherwise Pop fails with ErrNotFound.
func Pop[K comparable, V any](m map[K]V, key K, def ...V) (V, error) {
	if v, ok := m[key]; ok {
		delete(m, key)
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	var zero V
	return zero, modules.Errorf(modules.ErrNotFound, "maps.pop", "key %v not found", key)
}

// PopItem removes and returns the entry with the greatest key, so repeated
// calls drain the mapping in the reverse of Items order.
func PopItem[K cmp.Ordered, V any](m map[K]V) (Item[K, V], error) {
	if len(m) == 0 {
		return Item[K, V]{}, modules.Errorf(modules.ErrNotFound, "maps.popitem", "empty")
	}
	first := true
	var key K
	for k := range m {
		if first || k > key {
			key, first = k, false
		}
	}
	item := Item[K, V]{Key: key, Value: m[key]}
	delete(m, key)
	return item, nil
}

// SetDefault returns the value at key, inserting def first when key is absent.
func SetDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	m[key] = def
	return def
}

// Update copies every entry of other into m, overwriting on collision.
func Update[K comparable, V any](m, other map[K]V) {
	maps.Copy(m, other)
}

// Values returns the values of m in the same order as Items.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	keys := modules.SortedKeys(m)
	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return vals
}
