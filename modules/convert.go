package modules

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ToString accepts only string values; there is no implicit formatting.
func ToString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// ToInt converts integral numbers of any Go numeric type. Values that do
// not fit in an int are rejected rather than wrapped.
func ToInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("int %d out of range", n)
		}
		return int(n), nil
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return uintToInt(uint64(n))
	case uint64:
		return uintToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, fmt.Errorf("expected int, got %T", v)
	}
}

func uintToInt(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, fmt.Errorf("int %d out of range", n)
	}
	return int(n), nil
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("expected int, got non-integral %v", f)
	}
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("int %v out of range", f)
	}
	return int(f), nil
}

func ToFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	i, err := ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("expected float, got %T", v)
	}
	return float64(i), nil
}

// ToBool accepts booleans and numbers (non-zero is true).
func ToBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case nil:
		return false, nil
	}
	f, err := ToFloat(v)
	if err != nil {
		return false, fmt.Errorf("expected bool, got %T", v)
	}
	return f != 0, nil
}

// Stringify renders v the way the reference language's str() does for
// scalars: None, True/False, integral floats without a fraction.
func Stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Stringify(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Map {
		return stringifyMap(rv)
	}
	return fmt.Sprintf("%v", v)
}

// stringifyMap renders a map as "{k: v, ...}" with entries sorted by their
// rendered key.
func stringifyMap(rv reflect.Value) string {
	parts := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		parts = append(parts, Stringify(iter.Key().Interface())+": "+Stringify(iter.Value().Interface()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal reports strict equality between two dynamic values. Numbers compare
// by value across Go numeric types; slices and maps compare by identity.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, err := ToFloat(a); err == nil {
		if fb, err := ToFloat(b); err == nil {
			return fa == fb
		}
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}
