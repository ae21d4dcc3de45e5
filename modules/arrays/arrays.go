// Package arraymod implements in-place list operations and registers them as
// the "arrays" module. Mutating functions take a pointer to the slice so the
// caller observes length changes.
package arraymod

import (
	"github.com/rubiojr/pyproto/modules"
)

func init() {
	i, a := modules.Int, modules.Any
	modules.Register(&modules.Module{
		Name:   "arrays",
		Target: modules.TargetSequence,
		Doc:    "Sequence operations: counting, searching, insertion and removal in place.",
		Funcs: []modules.FuncDef{
			{Name: "append", Args: []modules.ArgType{a}, Mutates: true, Doc: "Add item to the end.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				Append(list(recv), args[0])
				return nil, nil
			}},
			{Name: "count", Args: []modules.ArgType{a}, Doc: "Number of elements equal to item.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return CountFunc(*list(recv), equals(args[0])), nil
			}},
			{Name: "extend", Args: []modules.ArgType{a}, Mutates: true, Doc: "Append every element of a list, or every value of a map.", Call: extendCall},
			{Name: "index", Args: []modules.ArgType{a}, Doc: "Position of the first element equal to item.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return IndexFunc(*list(recv), equals(args[0]))
			}},
			{Name: "insert", Args: []modules.ArgType{i, a}, Mutates: true, Doc: "Insert item before idx, clamping to either end.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				Insert(list(recv), args[0].(int), args[1])
				return nil, nil
			}},
			{Name: "popItem", Optional: []modules.ArgType{i}, Mutates: true, Doc: "Remove and return the element at idx, or the last one.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				idx := make([]int, 0, 1)
				if len(args) > 0 {
					idx = append(idx, args[0].(int))
				}
				return PopItem(list(recv), idx...)
			}},
			{Name: "remove", Args: []modules.ArgType{a}, Mutates: true, Doc: "Delete the first element equal to item.", Call: func(recv interface{}, args []interface{}) (interface{}, error) {
				return nil, RemoveFunc(list(recv), equals(args[0]))
			}},
		},
	})
}

func list(recv interface{}) *[]interface{} {
	return recv.(*[]interface{})
}

func equals(item interface{}) func(interface{}) bool {
	return func(v interface{}) bool { return modules.Equal(v, item) }
}

func extendCall(recv interface{}, args []interface{}) (interface{}, error) {
	other, ok := modules.AsIterable(args[0])
	if !ok {
		return nil, modules.Errorf(modules.ErrInvalidArgument, "arrays.extend", "argument must be a list or a map, got %T", args[0])
	}
	Extend(list(recv), other)
	return nil, nil
}
