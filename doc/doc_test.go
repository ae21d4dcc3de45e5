package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/pyproto/install"
	_ "github.com/rubiojr/pyproto/modules/arrays"
	_ "github.com/rubiojr/pyproto/modules/maps"
	_ "github.com/rubiojr/pyproto/modules/strings"
)

func TestLookupSymbol(t *testing.T) {
	doc, sig, found := LookupSymbol("strings.center")
	require.True(t, found)
	assert.Equal(t, "strings.center(arg0 int, [arg1 string])", sig)
	assert.Contains(t, doc, "extra padding on the right")

	_, sig, found = LookupSymbol("objects.pop")
	require.True(t, found)
	assert.Equal(t, "maps.pop(arg0 string, [arg1 any])", sig)

	for _, q := range []string{"strings", "strings.nope", "nope.center", ""} {
		_, _, found = LookupSymbol(q)
		assert.False(t, found, q)
	}
}

func TestLookup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, ok := Lookup("objects")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(out, "module maps (mapping) alias objects\n"))

	out, ok = Lookup("arrays.insert")
	require.True(t, ok)
	assert.Equal(t, "arrays.insert(arg0 int, arg1 any)\n    Insert item before idx, clamping to either end.\n", out)

	_, ok = Lookup("sets")
	assert.False(t, ok)
}

func TestFormatModule(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, ok := Lookup("arrays")
	require.True(t, ok)
	assert.Contains(t, out, "arrays.popItem([arg0 int]) (in place)\n")
	assert.Contains(t, out, "arrays.count(arg0 any)\n    Number of elements equal to item.\n")
	assert.NotContains(t, out, "\033[")
}

func TestFormatModuleColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	out, ok := Lookup("strings")
	require.True(t, ok)
	assert.Contains(t, out, "\033[1mmodule strings (text)\033[0m")
	assert.Contains(t, out, "\033[36mstrings.zfill(arg0 int)\033[0m")
}

func TestFormatAllModules(t *testing.T) {
	out := FormatAllModules()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Modules:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  arrays     sequence "))
	assert.True(t, strings.HasPrefix(lines[2], "  maps       mapping  "))
	assert.True(t, strings.HasPrefix(lines[3], "  strings    text     "))
}

func TestFormatPrototypes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	in := install.New()
	assert.Equal(t, "text (0)\n    nothing installed\nmapping (0)\n    nothing installed\nsequence (0)\n    nothing installed\n", FormatPrototypes(in))

	require.NoError(t, in.Configure(install.Options{Exclude: map[string]install.Exclusion{
		"strings": {All: true},
		"maps":    {Funcs: []string{"clear", "copy", "fromkeys", "getVal", "hasKey", "items", "pop", "popitem", "setdefault"}},
	}}))
	require.NoError(t, in.Start())
	assert.Equal(t,
		"text (0)\n    nothing installed\n"+
			"mapping (2)\n    update values\n"+
			"sequence (7)\n    append count extend index insert popItem remove\n",
		FormatPrototypes(in))
}
