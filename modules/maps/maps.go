// Package mapmod implements key/value operations and registers them as the
// "maps" module. The module is also reachable as "objects".
package mapmod

import (
	"github.com/rubiojr/pyproto/modules"
)

func init() {
	s, a := modules.String, modules.Any
	modules.Register(&modules.Module{
		Name:    "maps",
		Aliases: []string{"objects"},
		Target:  modules.TargetMapping,
		Doc:     "Mapping operations: lookup with defaults, copying, merging and draining.",
		Funcs: []modules.FuncDef{
			{Name: "clear", Mutates: true, Doc: "Remove every entry.", Call: func(recv interface{}, _ []interface{}) (interface{}, error) {
				Clear(dict(recv))
				return nil, nil
			}},
			{Name: "copy", Doc: "Shallow copy; nested values are shared.", Call: func(recv interface{}, _ []interface{}) (interface{}, error) {
				return Copy(dict(recv)), nil
			}},
			{Name: "fromkeys", Args: []modules.ArgType{a}, Optional: []modules.ArgType{a}, Doc: "New mapping with every key bound to value.", Call: fromKeysCall},
			{Name: "getVal", Args: []modules.ArgType{s}, Optional: []modules.ArgType{a}, Doc: "Value at key, or default (None).", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return GetVal(dict(recv), args[0].(string), optional(args, 1)), nil
			}},
			{Name: "hasKey", Args: []modules.ArgType{s}, Doc: "Report whether key is present.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return HasKey(dict(recv), args[0].(string)), nil
			}},
			{Name: "items", Doc: "List of [key, value] pairs in key order.", Call: func(recv interface{}, _ []interface{}) (interface{}, error) {
				items := Items(dict(recv))
				out := make([]interface{}, len(items))
				for i, it := range items {
					out[i] = pair(it)
				}
				return out, nil
			}},
			{Name: "pop", Args: []modules.ArgType{s}, Optional: []modules.ArgType{a}, Mutates: true, Doc: "Remove and return the value at key, or default.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return Pop(dict(recv), args[0].(string), args[1:]...)
			}},
			{Name: "popitem", Mutates: true, Doc: "Remove and return the [key, value] pair with the greatest key.", Call: func(recv interface{}, _ []interface{}) (interface{}, error) {
				it, err := PopItem(dict(recv))
				if err != nil {
					return nil, err
				}
				return pair(it), nil
			}},
			{Name: "setdefault", Args: []modules.ArgType{s}, Optional: []modules.ArgType{a}, Mutates: true, Doc: "Value at key, inserting default first when absent.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return SetDefault(dict(recv), args[0].(string), optional(args, 1)), nil
			}},
			{Name: "update", Args: []modules.ArgType{a}, Mutates: true, Doc: "Copy every entry of other, overwriting on collision.", Call: updateCall},
			{Name: "values", Doc: "List of values in key order.", Call: func(recv interface{}, _ []interface{}) (interface{}, error) {
				return Values(dict(recv)), nil
			}},
		},
	})
}

func dict(recv interface{}) map[string]interface{} {
	return recv.(map[string]interface{})
}

func optional(args []interface{}, i int) interface{} {
	if len(args) > i {
		return args[i]
	}
	return nil
}

func pair(it Item[string, interface{}]) []interface{} {
	return []interface{}{it.Key, it.Value}
}

func fromKeysCall(_ interface{}, args []interface{}) (interface{}, error) {
	if m, ok := args[0].(map[string]interface{}); ok {
		return FromKeys(modules.SortedKeys(m), optional(args, 1)), nil
	}
	it, ok := modules.AsIterable(args[0])
	if !ok {
		return nil, modules.Errorf(modules.ErrInvalidArgument, "maps.fromkeys", "keys must be a list, got %T", args[0])
	}
	vals := it.Values()
	keys := make([]string, len(vals))
	for i, v := range vals {
		keys[i] = modules.Stringify(v)
	}
	return FromKeys(keys, optional(args, 1)), nil
}

func updateCall(recv interface{}, args []interface{}) (interface{}, error) {
	var other map[string]interface{}
	switch x := args[0].(type) {
	case map[string]interface{}:
		other = x
	case map[string]string:
		other = make(map[string]interface{}, len(x))
		for k, v := range x {
			other[k] = v
		}
	default:
		return nil, modules.Errorf(modules.ErrInvalidArgument, "maps.update", "argument must be a map, got %T", args[0])
	}
	Update(dict(recv), other)
	return nil, nil
}
