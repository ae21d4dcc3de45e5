// Package install binds the registered operation modules onto per-container
// method tables ("prototypes") and exposes native-looking wrappers (Str,
// List, Dict) that dispatch method calls through them.
//
// Usage:
//
//	install.Configure(install.Options{Exclude: map[string]install.Exclusion{
//		"strings": {Funcs: []string{"title"}},
//	}})
//	install.Start()
//	install.Str("center me").Call("center", 11)
//
// Configure replaces the exclusion set wholesale. Start is meant to run once
// during program startup, before the wrappers are used concurrently.
package install

import (
	"log/slog"
	"sync/atomic"

	"github.com/rubiojr/pyproto/modules"
)

// State is the configuration state of an Installer.
type State int

const (
	Unconfigured State = iota
	Configured
)

func (s State) String() string {
	if s == Configured {
		return "configured"
	}
	return "unconfigured"
}

// Prototype is the method table of one container kind.
type Prototype struct {
	Target  modules.Target
	methods map[string]method
}

type method struct {
	module *modules.Module
	fn     *modules.FuncDef
}

func newPrototype(t modules.Target) *Prototype {
	return &Prototype{Target: t, methods: make(map[string]method)}
}

// Has reports whether name is installed.
func (p *Prototype) Has(name string) bool {
	_, ok := p.methods[name]
	return ok
}

// Names returns the installed method names in sorted order.
func (p *Prototype) Names() []string {
	return modules.SortedKeys(p.methods)
}

// Lookup returns the function bound to name and the module it came from.
func (p *Prototype) Lookup(name string) (*modules.Module, *modules.FuncDef, bool) {
	m, ok := p.methods[name]
	return m.module, m.fn, ok
}

// Call invokes the method name on recv.
func (p *Prototype) Call(recv interface{}, name string, args ...interface{}) (interface{}, error) {
	m, ok := p.methods[name]
	if !ok {
		return nil, modules.Errorf(modules.ErrNotFound, p.Target.String(), "no method %q", name)
	}
	return m.fn.Invoke(m.module, recv, args...)
}

type prototypes map[modules.Target]*Prototype

func emptyPrototypes() *prototypes {
	return &prototypes{
		modules.TargetText:     newPrototype(modules.TargetText),
		modules.TargetSequence: newPrototype(modules.TargetSequence),
		modules.TargetMapping:  newPrototype(modules.TargetMapping),
	}
}

// Installer holds a configuration and the prototypes built from it.
type Installer struct {
	opts   Options
	state  State
	logger *slog.Logger
	protos atomic.Pointer[prototypes]
}

// InstallerOption configures an Installer.
type InstallerOption func(*Installer)

// WithLogger sets the logger used for configuration and installation events.
func WithLogger(l *slog.Logger) InstallerOption {
	return func(in *Installer) {
		in.logger = l
	}
}

// New returns an unconfigured Installer with nothing installed.
func New(options ...InstallerOption) *Installer {
	in := &Installer{logger: slog.New(slog.DiscardHandler)}
	for _, o := range options {
		o(in)
	}
	in.protos.Store(emptyPrototypes())
	return in
}

// State returns the configuration state.
func (in *Installer) State() State { return in.state }

// Options returns the active configuration.
func (in *Installer) Options() Options { return in.opts }

// Configure validates opts and replaces the current configuration. Nothing
// is installed until Start.
func (in *Installer) Configure(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	normalized := Options{Exclude: make(map[string]Exclusion, len(opts.Exclude))}
	for name, ex := range opts.Exclude {
		normalized.Exclude[modules.Canonical(name)] = ex
	}
	in.opts = normalized
	in.state = Configured
	in.logger.Info("configured", "excluded", len(normalized.Exclude))
	return nil
}

// ConfigureRaw parses a decoded configuration value and applies it.
func (in *Installer) ConfigureRaw(raw interface{}) error {
	opts, err := ParseOptions(raw)
	if err != nil {
		return err
	}
	return in.Configure(opts)
}

// Start builds the prototypes from the current configuration, binding
// modules in the order strings, maps, arrays. Calling Start again rebuilds
// them.
func (in *Installer) Start() error {
	protos := emptyPrototypes()
	for _, name := range Modules {
		if in.opts.ExcludesModule(name) {
			in.logger.Debug("module excluded", "module", name)
			continue
		}
		m, ok := modules.Get(name)
		if !ok {
			in.logger.Debug("module not registered", "module", name)
			continue
		}
		if err := in.bind(*protos, m); err != nil {
			return err
		}
	}
	in.protos.Store(protos)
	in.logger.Info("started", "state", in.state)
	return nil
}

func (in *Installer) bind(protos prototypes, m *modules.Module) error {
	p, ok := protos[m.Target]
	if !ok {
		return modules.Errorf(modules.ErrInternal, "install.start", "module %q has unknown target %s", m.Name, m.Target)
	}
	for i := range m.Funcs {
		fn := &m.Funcs[i]
		if in.opts.Excludes(m.Name, fn.Name) {
			in.logger.Debug("method excluded", "module", m.Name, "method", fn.Name)
			continue
		}
		p.methods[fn.Name] = method{module: m, fn: fn}
		in.logger.Debug("method bound", "module", m.Name, "method", fn.Name, "target", m.Target)
	}
	return nil
}

// Prototype returns the method table for t.
func (in *Installer) Prototype(t modules.Target) *Prototype {
	if p, ok := (*in.protos.Load())[t]; ok {
		return p
	}
	return newPrototype(t)
}

// Call invokes method on recv through the prototype of t.
func (in *Installer) Call(t modules.Target, recv interface{}, method string, args ...interface{}) (interface{}, error) {
	return in.Prototype(t).Call(recv, method, args...)
}

var std = New()

// Default returns the installer behind the package-level functions and the
// Str, List and Dict wrappers.
func Default() *Installer { return std }

// SetLogger replaces the default installer's logger.
func SetLogger(l *slog.Logger) { std.logger = l }

// Configure applies opts to the default installer.
func Configure(opts Options) error { return std.Configure(opts) }

// ConfigureRaw applies a decoded configuration value to the default installer.
func ConfigureRaw(raw interface{}) error { return std.ConfigureRaw(raw) }

// Start installs the default installer's prototypes.
func Start() error { return std.Start() }
