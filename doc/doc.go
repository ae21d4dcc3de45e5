// Package doc renders module tables and installed prototypes for the
// terminal.
//
// Queries name a module ("strings"), an alias ("objects") or a single
// function ("strings.center"). Output is colored with ANSI escapes unless
// NO_COLOR is set.
package doc

import (
	"strings"

	"github.com/rubiojr/pyproto/modules"
)

// LookupSymbol resolves a "module.func" query to its doc and signature.
func LookupSymbol(query string) (doc string, signature string, found bool) {
	mod, fn, ok := strings.Cut(query, ".")
	if !ok {
		return "", "", false
	}
	m, ok := modules.Get(mod)
	if !ok {
		return "", "", false
	}
	f, ok := m.Func(fn)
	if !ok {
		return "", "", false
	}
	return f.Doc, m.Name + "." + f.Signature(), true
}

// Lookup renders the documentation for query: a module name, an alias, or
// a "module.func" symbol.
func Lookup(query string) (string, bool) {
	if m, ok := modules.Get(query); ok {
		return FormatModule(m), true
	}
	doc, sig, ok := LookupSymbol(query)
	if !ok {
		return "", false
	}
	return FormatSymbol(doc, sig), true
}
