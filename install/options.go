package install

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rubiojr/pyproto/modules"
)

// Modules lists the installable modules in installation order.
var Modules = []string{"strings", "maps", "arrays"}

// Options selects which module functions Start binds. The zero value
// excludes nothing.
type Options struct {
	// Exclude is keyed by canonical module name.
	Exclude map[string]Exclusion
}

// Exclusion removes a whole module or some of its functions.
type Exclusion struct {
	All   bool
	Funcs []string
}

// Excludes reports whether fn of module is excluded.
func (o Options) Excludes(module, fn string) bool {
	ex, ok := o.Exclude[modules.Canonical(module)]
	if !ok {
		return false
	}
	return ex.All || slices.Contains(ex.Funcs, fn)
}

// ExcludesModule reports whether module is excluded entirely.
func (o Options) ExcludesModule(module string) bool {
	return o.Exclude[modules.Canonical(module)].All
}

// Validate checks every module and function name in o.
func (o Options) Validate() error {
	seen := make(map[string]string, len(o.Exclude))
	for _, name := range modules.SortedKeys(o.Exclude) {
		if err := validateExclusion(name, o.Exclude[name]); err != nil {
			return err
		}
		if err := claim(seen, name); err != nil {
			return err
		}
	}
	return nil
}

// claim records name under its canonical module so an alias and the name
// it stands for cannot both configure the same module.
func claim(seen map[string]string, name string) error {
	canonical := modules.Canonical(name)
	if prev, ok := seen[canonical]; ok {
		return modules.Errorf(modules.ErrInvalidArgument, "install.configure", "%q and %q both name module %q", prev, name, canonical)
	}
	seen[canonical] = name
	return nil
}

func validateExclusion(name string, ex Exclusion) error {
	if !slices.Contains(Modules, modules.Canonical(name)) {
		return modules.Errorf(modules.ErrInvalidArgument, "install.configure", "unknown module %q", name)
	}
	if len(ex.Funcs) == 0 {
		return nil
	}
	m, ok := modules.Get(name)
	if !ok {
		return modules.Errorf(modules.ErrInvalidArgument, "install.configure", "module %q is not registered", name)
	}
	for _, fn := range ex.Funcs {
		if _, ok := m.Func(fn); !ok {
			return modules.Errorf(modules.ErrInvalidArgument, "install.configure", "module %q has no function %q", name, fn)
		}
	}
	return nil
}

// ParseOptions converts a decoded configuration value into Options.
//
//	exclude:
//	  strings: true            # whole module
//	  arrays: [insert, remove] # selected functions
//
// raw must be a mapping; module names may be aliases ("objects"). The
// result is fully validated.
func ParseOptions(raw interface{}) (Options, error) {
	top, ok := raw.(map[string]interface{})
	if !ok {
		return Options{}, modules.Errorf(modules.ErrInvalidArgument, "install.configure", "options must be a mapping, got %T", raw)
	}
	opts := Options{Exclude: map[string]Exclusion{}}
	seen := map[string]string{}
	ex, ok := top["exclude"]
	if !ok || ex == nil {
		return opts, nil
	}
	table, ok := ex.(map[string]interface{})
	if !ok {
		return Options{}, modules.Errorf(modules.ErrInvalidArgument, "install.configure", "exclude must be a mapping, got %T", ex)
	}
	for _, name := range modules.SortedKeys(table) {
		var e Exclusion
		switch v := table[name].(type) {
		case bool:
			e.All = v
		case []interface{}:
			for _, fn := range v {
				s, ok := fn.(string)
				if !ok {
					return Options{}, modules.Errorf(modules.ErrInvalidArgument, "install.configure", "%s: function names must be strings, got %T", name, fn)
				}
				e.Funcs = append(e.Funcs, s)
			}
		case []string:
			e.Funcs = append(e.Funcs, v...)
		default:
			return Options{}, modules.Errorf(modules.ErrInvalidArgument, "install.configure", "%s: expected a bool or a list of function names, got %T", name, v)
		}
		if err := validateExclusion(name, e); err != nil {
			return Options{}, err
		}
		if err := claim(seen, name); err != nil {
			return Options{}, err
		}
		opts.Exclude[modules.Canonical(name)] = e
	}
	return opts, nil
}

// LoadOptions reads a YAML or TOML configuration file. The format follows
// the extension; anything other than .toml is read as YAML.
func LoadOptions(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var data map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return Options{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return Options{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
