package modules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	for _, v := range []interface{}{3, int64(3), uint8(3), 3.0, float32(3)} {
		n, err := ToInt(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 3, n)
	}
	_, err := ToInt("3")
	assert.Error(t, err)
	_, err = ToInt(3.2)
	assert.Error(t, err)

	for _, v := range []interface{}{uint64(math.MaxUint64), uint(math.MaxInt) + 1, 1e19, -1e19, math.Inf(1), math.NaN()} {
		_, err := ToInt(v)
		assert.Error(t, err, "%v", v)
	}
	n, err := ToInt(uint64(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)
}

func TestToBool(t *testing.T) {
	for v, want := range map[interface{}]bool{true: true, false: false, 1: true, 0: false, 2.5: true} {
		got, err := ToBool(v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", v)
	}
	got, err := ToBool(nil)
	require.NoError(t, err)
	assert.False(t, got)
	_, err = ToBool("yes")
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, "None"},
		{"x", "x"},
		{true, "True"},
		{false, "False"},
		{3, "3"},
		{2.0, "2"},
		{2.5, "2.5"},
		{[]interface{}{1, "a", nil}, "[1, a, None]"},
		{map[string]interface{}{"b": true, "a": 1}, "{a: 1, b: True}"},
		{map[string]interface{}{}, "{}"},
		{[]interface{}{map[string]string{"k": "v"}}, "[{k: v}]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stringify(tt.in))
	}
}

func TestEqual(t *testing.T) {
	s := []interface{}{1}
	m := map[string]interface{}{"a": 1}

	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1.0))
	assert.True(t, Equal(int64(2), uint8(2)))
	assert.True(t, Equal("a", "a"))
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal(s, s))
	assert.True(t, Equal(m, m))

	assert.False(t, Equal(1, "1"))
	assert.False(t, Equal("1", 1))
	assert.False(t, Equal(nil, 0))
	assert.False(t, Equal(true, 1))
	assert.False(t, Equal(s, []interface{}{1}))
	assert.False(t, Equal(m, map[string]interface{}{"a": 1}))

	type box struct{ v interface{} }
	assert.True(t, Equal(box{1}, box{1}))
	assert.False(t, Equal(box{[]int{1}}, box{[]int{1}}))
	assert.False(t, Equal(box{1}, box{[]int{1}}))
	assert.True(t, Equal(uint64(math.MaxUint64), uint64(math.MaxUint64)))
}

func TestSeqAndMap(t *testing.T) {
	seq := Seq[string]{"a", "b"}
	assert.Equal(t, []string{"a", "b"}, seq.Values())
	v, ok := seq.Lookup("1")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	for _, key := range []string{"2", "-1", "01", "+1", "x"} {
		_, ok := seq.Lookup(key)
		assert.False(t, ok, key)
	}

	m := Map[int]{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []int{1, 2, 3}, m.Values())
	n, ok := m.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestAsIterable(t *testing.T) {
	list := []interface{}{1, 2}
	tests := []struct {
		name string
		in   interface{}
		want []interface{}
	}{
		{"slice", list, []interface{}{1, 2}},
		{"slice pointer", &list, []interface{}{1, 2}},
		{"strings", []string{"x", "y"}, []interface{}{"x", "y"}},
		{"map", map[string]interface{}{"b": 2, "a": 1}, []interface{}{1, 2}},
		{"string map", map[string]string{"b": "y", "a": "x"}, []interface{}{"x", "y"}},
		{"seq", Seq[interface{}]{3}, []interface{}{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := AsIterable(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, it.Values())
		})
	}

	_, ok := AsIterable("not iterable")
	assert.False(t, ok)
	_, ok = AsIterable(42)
	assert.False(t, ok)
}

func TestAsKeyed(t *testing.T) {
	k, ok := AsKeyed([]interface{}{"zero"})
	require.True(t, ok)
	v, found := k.Lookup("0")
	assert.True(t, found)
	assert.Equal(t, "zero", v)

	k, ok = AsKeyed(map[string]interface{}{"name": "x"})
	require.True(t, ok)
	v, found = k.Lookup("name")
	assert.True(t, found)
	assert.Equal(t, "x", v)

	_, ok = AsKeyed(3)
	assert.False(t, ok)
}
