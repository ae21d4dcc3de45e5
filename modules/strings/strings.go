// Package strmod implements text operations with the semantics of the
// reference language's str methods, and registers them as the "strings"
// module.
package strmod

import (
	"github.com/rubiojr/pyproto/modules"
)

func init() {
	s, i, b, a := modules.String, modules.Int, modules.Bool, modules.Any
	bounds := []modules.ArgType{i, i}
	modules.Register(&modules.Module{
		Name:   "strings",
		Target: modules.TargetText,
		Doc:    "Text operations: slicing, padding, case transforms, partitioning, trimming.",
		Funcs: []modules.FuncDef{
			{Name: "capitalize", Doc: "Uppercase the first character, lowercase the rest.", Call: text(Capitalize)},
			{Name: "center", Args: []modules.ArgType{i}, Optional: []modules.ArgType{s}, Doc: "Center in width, extra padding on the right.", Call: justify(Center)},
			{Name: "count", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Count non-overlapping occurrences of sub in [start, end).", Call: search(func(r, sub string, bs ...int) (interface{}, error) {
				return Count(r, sub, bs...), nil
			})},
			{Name: "endswith", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Report whether [start, end) ends with suffix.", Call: search(func(r, suffix string, bs ...int) (interface{}, error) {
				return EndsWith(r, suffix, bs...), nil
			})},
			{Name: "find", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Lowest index of sub in [start, end), or -1.", Call: search(func(r, sub string, bs ...int) (interface{}, error) {
				return Find(r, sub, bs...), nil
			})},
			{Name: "format", Args: []modules.ArgType{a}, Doc: "Replace {key} placeholders from a list or a map.", Call: formatCall},
			{Name: "index", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Like find, but fails with not found.", Call: search(func(r, sub string, bs ...int) (interface{}, error) {
				return Index(r, sub, bs...)
			})},
			{Name: "isalnum", Doc: "Non-empty and only ASCII letters and digits.", Call: predicate(IsAlnum)},
			{Name: "isalpha", Doc: "Non-empty and only ASCII letters.", Call: predicate(IsAlpha)},
			{Name: "isdigit", Doc: "Non-empty and only ASCII digits.", Call: predicate(IsDigit)},
			{Name: "islower", Doc: "Has a cased character and no uppercase ones.", Call: predicate(IsLower)},
			{Name: "isspace", Doc: "Non-empty and only whitespace.", Call: predicate(IsSpace)},
			{Name: "istitle", Doc: "Every word starts uppercase and continues lowercase.", Call: predicate(IsTitle)},
			{Name: "isupper", Doc: "Has a cased character and no lowercase ones.", Call: predicate(IsUpper)},
			{Name: "join", Args: []modules.ArgType{a}, Doc: "Join the items of a list, or the values of a map, with the receiver.", Call: joinCall},
			{Name: "ljust", Args: []modules.ArgType{i}, Optional: []modules.ArgType{s}, Doc: "Left-justify in width.", Call: justify(LJust)},
			{Name: "lower", Doc: "Lowercase every character.", Call: text(Lower)},
			{Name: "lstrip", Optional: []modules.ArgType{s}, Doc: "Remove leading characters in chars (whitespace by default).", Call: strip(LStrip)},
			{Name: "partition", Args: []modules.ArgType{s}, Doc: "Split at the first sep into [head, sep, tail].", Call: partition(Partition)},
			{Name: "rfind", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Highest index of sub in [start, end), or -1.", Call: search(func(r, sub string, bs ...int) (interface{}, error) {
				return RFind(r, sub, bs...), nil
			})},
			{Name: "rindex", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Like rfind, but fails with not found.", Call: search(func(r, sub string, bs ...int) (interface{}, error) {
				return RIndex(r, sub, bs...)
			})},
			{Name: "rjust", Args: []modules.ArgType{i}, Optional: []modules.ArgType{s}, Doc: "Right-justify in width.", Call: justify(RJust)},
			{Name: "rpartition", Args: []modules.ArgType{s}, Doc: "Split at the last sep into [head, sep, tail].", Call: partition(RPartition)},
			{Name: "rstrip", Optional: []modules.ArgType{s}, Doc: "Remove trailing characters in chars (whitespace by default).", Call: strip(RStrip)},
			{Name: "splitlines", Optional: []modules.ArgType{b}, Doc: "Split at line boundaries, optionally keeping the breaks.", Call: splitLinesCall},
			{Name: "startswith", Args: []modules.ArgType{s}, Optional: bounds, Doc: "Report whether [start, end) starts with prefix.", Call: search(func(r, prefix string, bs ...int) (interface{}, error) {
				return StartsWith(r, prefix, bs...), nil
			})},
			{Name: "strip", Optional: []modules.ArgType{s}, Doc: "Remove leading and trailing characters in chars.", Call: strip(Strip)},
			{Name: "swapcase", Doc: "Invert the case of every cased character.", Call: text(SwapCase)},
			{Name: "title", Optional: []modules.ArgType{s}, Doc: "Capitalize every word; chars in the argument do not break words.", Call: strip(Title)},
			{Name: "upper", Doc: "Uppercase every character.", Call: text(Upper)},
			{Name: "zfill", Args: []modules.ArgType{i}, Doc: "Left-pad with zeros to width.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return ZFill(recv.(string), args[0].(int)), nil
			}},
		},
	})
}

func text(fn func(string) string) modules.CallFunc {
	return func(recv interface{}, _ []interface{}) (interface{}, error) {
		return fn(recv.(string)), nil
	}
}

func predicate(fn func(string) bool) modules.CallFunc {
	return func(recv interface{}, _ []interface{}) (interface{}, error) {
		return fn(recv.(string)), nil
	}
}

func justify(fn func(string, int, ...string) (string, error)) modules.CallFunc {
	return func(recv interface{}, args []interface{}) (interface{}, error) {
		out, err := fn(recv.(string), args[0].(int), stringArgs(args[1:])...)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

func strip(fn func(string, ...string) string) modules.CallFunc {
	return func(recv interface{}, args []interface{}) (interface{}, error) {
		return fn(recv.(string), stringArgs(args)...), nil
	}
}

func search(fn func(string, string, ...int) (interface{}, error)) modules.CallFunc {
	return func(recv interface{}, args []interface{}) (interface{}, error) {
		bs := make([]int, 0, 2)
		for _, a := range args[1:] {
			bs = append(bs, a.(int))
		}
		return fn(recv.(string), args[0].(string), bs...)
	}
}

func partition(fn func(string, string) ([3]string, error)) modules.CallFunc {
	return func(recv interface{}, args []interface{}) (interface{}, error) {
		parts, err := fn(recv.(string), args[0].(string))
		if err != nil {
			return nil, err
		}
		return []interface{}{parts[0], parts[1], parts[2]}, nil
	}
}

func formatCall(recv interface{}, args []interface{}) (interface{}, error) {
	keyed, ok := modules.AsKeyed(args[0])
	if !ok {
		return nil, modules.Errorf(modules.ErrInvalidArgument, "strings.format", "arguments must be a list or a map, got %T", args[0])
	}
	return Format(recv.(string), keyed), nil
}

func joinCall(recv interface{}, args []interface{}) (interface{}, error) {
	items, ok := modules.AsIterable(args[0])
	if !ok {
		return nil, modules.Errorf(modules.ErrInvalidArgument, "strings.join", "argument must be a list or a map, got %T", args[0])
	}
	return Join(recv.(string), items), nil
}

func splitLinesCall(recv interface{}, args []interface{}) (interface{}, error) {
	keepends := len(args) > 0 && args[0].(bool)
	lines := SplitLines(recv.(string), keepends)
	out := make([]interface{}, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	return out, nil
}

func stringArgs(args []interface{}) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.(string)
	}
	return out
}
