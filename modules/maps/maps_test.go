package mapmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/pyproto/modules"
)

func TestClear(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	Clear(m)
	assert.Empty(t, m)
}

func TestCopy(t *testing.T) {
	nested := []int{1}
	m := map[string][]int{"a": nested}
	c := Copy(m)
	assert.Equal(t, m, c)

	c["b"] = nil
	assert.NotContains(t, m, "b")

	c["a"][0] = 9
	assert.Equal(t, 9, m["a"][0], "nested values are shared")

	assert.NotNil(t, Copy(map[string]int(nil)))
}

func TestFromKeys(t *testing.T) {
	shared := []int{1}
	m := FromKeys([]string{"a", "b"}, shared)
	require.Len(t, m, 2)
	m["a"][0] = 5
	assert.Equal(t, 5, m["b"][0])

	assert.Equal(t, map[string]interface{}{"x": nil}, FromKeys[string, interface{}]([]string{"x"}, nil))
}

func TestGetValHasKey(t *testing.T) {
	m := map[string]string{"a": "1"}
	assert.Equal(t, "1", GetVal(m, "a", "def"))
	assert.Equal(t, "def", GetVal(m, "z", "def"))
	assert.True(t, HasKey(m, "a"))
	assert.False(t, HasKey(m, "z"))
	assert.Len(t, m, 1)
}

func TestItemsValues(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	assert.Equal(t, []Item[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}, Items(m))
	assert.Equal(t, []int{1, 2, 3}, Values(m))
	assert.Empty(t, Items(map[string]int{}))
}

func TestPop(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	v, err := Pop(m, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.NotContains(t, m, "a")

	v, err = Pop(m, "z", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Len(t, m, 1)

	_, err = Pop(m, "z")
	assert.ErrorIs(t, err, modules.ErrNotFound)
}

func TestPopItem(t *testing.T) {
	_, err := PopItem(map[string]int{})
	assert.ErrorIs(t, err, modules.ErrNotFound)
	assert.EqualError(t, err, "maps.popitem: empty")

	m := map[string]int{"a": 1, "c": 3, "b": 2}
	var order []string
	for len(m) > 0 {
		it, err := PopItem(m)
		require.NoError(t, err)
		assert.False(t, HasKey(m, it.Key))
		order = append(order, it.Key)
	}
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestSetDefault(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.Equal(t, 1, SetDefault(m, "a", 9))
	assert.Equal(t, 9, SetDefault(m, "b", 9))
	assert.Equal(t, map[string]int{"a": 1, "b": 9}, m)
}

func TestUpdate(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	Update(m, map[string]int{"b": 20, "c": 30})
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, m)
}

func TestModuleRegistered(t *testing.T) {
	m, ok := modules.Get("maps")
	require.True(t, ok)
	alias, ok := modules.Get("objects")
	require.True(t, ok)
	assert.Same(t, m, alias)
	assert.Equal(t, modules.TargetMapping, m.Target)
	assert.Len(t, m.Funcs, 11)
}

func TestInvokeThroughRegistry(t *testing.T) {
	m, ok := modules.Get("objects")
	require.True(t, ok)

	d := map[string]interface{}{"b": 2, "a": 1}

	got, err := m.Invoke("items", d)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{[]interface{}{"a", 1}, []interface{}{"b", 2}}, got)

	got, err = m.Invoke("values", d)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, got)

	got, err = m.Invoke("getVal", d, "z")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = m.Invoke("getVal", d, "z", "dflt")
	require.NoError(t, err)
	assert.Equal(t, "dflt", got)

	got, err = m.Invoke("setdefault", d, "c")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, d, "c")

	_, err = m.Invoke("update", d, map[string]interface{}{"a": 10})
	require.NoError(t, err)
	assert.Equal(t, 10, d["a"])

	_, err = m.Invoke("update", d, []interface{}{1})
	assert.ErrorIs(t, err, modules.ErrInvalidArgument)

	got, err = m.Invoke("pop", d, "a")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = m.Invoke("pop", d, "a")
	assert.ErrorIs(t, err, modules.ErrNotFound)

	got, err = m.Invoke("pop", d, "a", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = m.Invoke("popitem", d)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"c", nil}, got)

	got, err = m.Invoke("hasKey", d, "c")
	require.NoError(t, err)
	assert.Equal(t, false, got)

	got, err = m.Invoke("fromkeys", d, []interface{}{"x", 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"x": nil, "1": nil}, got)

	got, err = m.Invoke("fromkeys", d, map[string]interface{}{"k": 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"k": 0}, got)

	_, err = m.Invoke("fromkeys", d, 5)
	assert.ErrorIs(t, err, modules.ErrInvalidArgument)

	c, err := m.Invoke("copy", d)
	require.NoError(t, err)
	assert.Equal(t, d, c)

	_, err = m.Invoke("clear", d)
	require.NoError(t, err)
	assert.Empty(t, d)
	assert.NotEmpty(t, c)

	_, err = m.Invoke("popitem", d)
	assert.ErrorIs(t, err, modules.ErrNotFound)
}
