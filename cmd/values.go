package cmd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rubiojr/pyproto/modules"
)

// decodeReceiver turns a command-line receiver into the value the target
// expects. Text is taken verbatim; sequences and mappings are YAML flow
// values such as "[1, 2]" and "{a: 1}".
func decodeReceiver(t modules.Target, raw string) (interface{}, error) {
	switch t {
	case modules.TargetText:
		return raw, nil
	case modules.TargetSequence:
		var list []interface{}
		if err := yaml.Unmarshal([]byte(raw), &list); err != nil {
			return nil, modules.Errorf(modules.ErrInvalidArgument, "call", "receiver is not a list: %v", err)
		}
		if list == nil {
			list = []interface{}{}
		}
		return &list, nil
	case modules.TargetMapping:
		var m map[string]interface{}
		if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
			return nil, modules.Errorf(modules.ErrInvalidArgument, "call", "receiver is not a map: %v", err)
		}
		if m == nil {
			m = map[string]interface{}{}
		}
		return m, nil
	}
	return nil, modules.Errorf(modules.ErrInternal, "call", "unknown target %s", t)
}

// decodeArgs decodes each argument as YAML, except string parameters which
// are passed through untouched so "1" or "yes" stay text.
func decodeArgs(f *modules.FuncDef, raw []string) ([]interface{}, error) {
	out := make([]interface{}, len(raw))
	for i, r := range raw {
		if paramType(f, i) == modules.String {
			out[i] = r
			continue
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(r), &v); err != nil {
			return nil, modules.Errorf(modules.ErrInvalidArgument, "call", "argument %d: %v", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func paramType(f *modules.FuncDef, i int) modules.ArgType {
	if i < len(f.Args) {
		return f.Args[i]
	}
	if j := i - len(f.Args); j < len(f.Optional) {
		return f.Optional[j]
	}
	return modules.Any
}

// writeValue prints text as is and everything else as a single-line YAML
// flow value.
func writeValue(w io.Writer, v interface{}) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	flow(&n)
	out, err := yaml.Marshal(&n)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func flow(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode || n.Kind == yaml.MappingNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		flow(c)
	}
}
