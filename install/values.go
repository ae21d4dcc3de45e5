package install

import (
	"github.com/rubiojr/pyproto/modules"
)

// Str is a text value whose methods come from the default installer.
type Str string

// Call invokes an installed text method.
func (s Str) Call(method string, args ...interface{}) (interface{}, error) {
	return std.Call(modules.TargetText, string(s), method, unwrap(args)...)
}

// Has reports whether method is installed for text values.
func (s Str) Has(method string) bool {
	return std.Prototype(modules.TargetText).Has(method)
}

// List is a sequence value. Mutating methods change the list in place, so
// Call takes a pointer receiver.
type List []interface{}

// Call invokes an installed sequence method.
func (l *List) Call(method string, args ...interface{}) (interface{}, error) {
	return std.Call(modules.TargetSequence, (*[]interface{})(l), method, unwrap(args)...)
}

// Has reports whether method is installed for sequence values.
func (l *List) Has(method string) bool {
	return std.Prototype(modules.TargetSequence).Has(method)
}

// Dict is a mapping value.
type Dict map[string]interface{}

// Call invokes an installed mapping method.
func (d Dict) Call(method string, args ...interface{}) (interface{}, error) {
	return std.Call(modules.TargetMapping, map[string]interface{}(d), method, unwrap(args)...)
}

// Has reports whether method is installed for mapping values.
func (d Dict) Has(method string) bool {
	return std.Prototype(modules.TargetMapping).Has(method)
}

// unwrap converts wrapper values passed as arguments back to the plain
// shapes the modules accept.
func unwrap(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case Str:
			out[i] = string(v)
		case List:
			out[i] = []interface{}(v)
		case *List:
			out[i] = (*[]interface{})(v)
		case Dict:
			out[i] = map[string]interface{}(v)
		default:
			out[i] = a
		}
	}
	return out
}
