// Package modules holds the registry of operation modules.
//
// Each operation module (strings, arrays, maps) lives in its own package and
// self-registers via init(). A module is a named table of functions that can
// be invoked on dynamic values; the install package binds these tables onto
// the native-looking container wrappers.
package modules

import (
	"fmt"
	"sort"
	"strings"
)

// ArgType represents the expected type of a function argument.
type ArgType int

const (
	String ArgType = iota
	Int
	Float
	Bool
	Any
)

func (t ArgType) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "any"
	}
}

// Target is the container kind a module extends.
type Target int

const (
	TargetText Target = iota
	TargetSequence
	TargetMapping
)

func (t Target) String() string {
	switch t {
	case TargetText:
		return "text"
	case TargetSequence:
		return "sequence"
	case TargetMapping:
		return "mapping"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// CallFunc implements a module function on dynamic values. recv has already
// been checked against the module's Target and args converted per FuncDef.
type CallFunc func(recv interface{}, args []interface{}) (interface{}, error)

// FuncDef describes a function exposed by a module.
type FuncDef struct {
	// Name is the exposed function name (e.g. "center").
	Name string
	// Args lists the required arguments after the receiver.
	Args []ArgType
	// Optional lists trailing arguments that may be omitted.
	Optional []ArgType
	// Mutates is true when the function modifies its receiver in place.
	Mutates bool
	// Doc is the documentation string shown by `pyproto doc`.
	Doc  string
	Call CallFunc
}

// Module represents an operation module that can be installed.
type Module struct {
	// Name is the canonical module name (e.g. "strings").
	Name string
	// Aliases are accepted in place of Name in configuration.
	Aliases []string
	Target  Target
	Doc     string
	Funcs   []FuncDef
}

var (
	registry = make(map[string]*Module)
	aliases  = make(map[string]string)
)

// Register adds a module to the global registry.
func Register(m *Module) {
	registry[m.Name] = m
	for _, a := range m.Aliases {
		aliases[a] = m.Name
	}
}

// Canonical resolves an alias to the registered module name.
func Canonical(name string) string {
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Get returns a registered module by name or alias.
func Get(name string) (*Module, bool) {
	m, ok := registry[Canonical(name)]
	return m, ok
}

// IsModule returns true if name is a registered module or alias.
func IsModule(name string) bool {
	_, ok := Get(name)
	return ok
}

// LookupFunc resolves a module function by name.
func LookupFunc(module, funcName string) (*FuncDef, bool) {
	m, ok := Get(module)
	if !ok {
		return nil, false
	}
	return m.Func(funcName)
}

// Names returns sorted names of all registered modules.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Func returns the named function of m.
func (m *Module) Func(name string) (*FuncDef, bool) {
	for i := range m.Funcs {
		if m.Funcs[i].Name == name {
			return &m.Funcs[i], true
		}
	}
	return nil, false
}

// FuncNames returns the function names of m in declaration order.
func (m *Module) FuncNames() []string {
	names := make([]string, len(m.Funcs))
	for i, f := range m.Funcs {
		names[i] = f.Name
	}
	return names
}

// Invoke calls the named function of m on recv.
func (m *Module) Invoke(name string, recv interface{}, args ...interface{}) (interface{}, error) {
	f, ok := m.Func(name)
	if !ok {
		return nil, Errorf(ErrNotFound, m.Name, "no function %q", name)
	}
	return f.Invoke(m, recv, args...)
}

// Invoke checks the receiver and arity, converts args and calls f.
func (f *FuncDef) Invoke(m *Module, recv interface{}, args ...interface{}) (interface{}, error) {
	op := m.Name + "." + f.Name
	if err := checkReceiver(op, m.Target, recv, f.Mutates); err != nil {
		return nil, err
	}
	min, max := len(f.Args), len(f.Args)+len(f.Optional)
	if len(args) < min {
		return nil, Errorf(ErrInvalidArgument, op, "requires at least %d argument(s), got %d", min, len(args))
	}
	if len(args) > max {
		return nil, Errorf(ErrInvalidArgument, op, "accepts at most %d argument(s), got %d", max, len(args))
	}
	converted := make([]interface{}, len(args))
	for i, a := range args {
		var t ArgType
		if i < min {
			t = f.Args[i]
		} else {
			t = f.Optional[i-min]
		}
		v, err := convert(op, i, a, t)
		if err != nil {
			return nil, err
		}
		converted[i] = v
	}
	return f.Call(recv, converted)
}

// Signature renders f as "name(arg0 int, [arg1 string])".
func (f *FuncDef) Signature() string {
	var params []string
	for i, a := range f.Args {
		params = append(params, fmt.Sprintf("arg%d %s", i, a))
	}
	for i, a := range f.Optional {
		params = append(params, fmt.Sprintf("[arg%d %s]", len(f.Args)+i, a))
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(params, ", "))
}

// checkReceiver rejects receivers of the wrong shape. A nil list pointer is
// never usable and a nil map cannot be written to.
func checkReceiver(op string, t Target, recv interface{}, mutates bool) error {
	ok := false
	switch t {
	case TargetText:
		_, ok = recv.(string)
	case TargetSequence:
		var p *[]interface{}
		if p, ok = recv.(*[]interface{}); ok && p == nil {
			return Errorf(ErrInvalidArgument, op, "receiver is a nil list")
		}
	case TargetMapping:
		var m map[string]interface{}
		if m, ok = recv.(map[string]interface{}); ok && m == nil && mutates {
			return Errorf(ErrInvalidArgument, op, "receiver is a nil map")
		}
	default:
		return Errorf(ErrInternal, op, "unknown target %s", t)
	}
	if !ok {
		return Errorf(ErrInvalidArgument, op, "receiver must be %s, got %T", t, recv)
	}
	return nil
}

func convert(op string, index int, v interface{}, t ArgType) (interface{}, error) {
	var (
		out interface{}
		err error
	)
	switch t {
	case String:
		out, err = ToString(v)
	case Int:
		out, err = ToInt(v)
	case Float:
		out, err = ToFloat(v)
	case Bool:
		out, err = ToBool(v)
	default:
		return v, nil
	}
	if err != nil {
		return nil, Errorf(ErrInvalidArgument, op, "argument %d: %v", index, err)
	}
	return out, nil
}
