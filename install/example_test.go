package install_test

import (
	"fmt"

	"github.com/rubiojr/pyproto/install"
	"github.com/rubiojr/pyproto/modules"
	_ "github.com/rubiojr/pyproto/modules/arrays"
	_ "github.com/rubiojr/pyproto/modules/maps"
	_ "github.com/rubiojr/pyproto/modules/strings"
)

func ExampleInstaller() {
	in := install.New()
	if err := in.ConfigureRaw(map[string]interface{}{
		"exclude": map[string]interface{}{"arrays": true},
	}); err != nil {
		panic(err)
	}
	if err := in.Start(); err != nil {
		panic(err)
	}

	out, _ := in.Prototype(modules.TargetText).Call("center me", "center", 12, "*")
	fmt.Println(out)
	_, err := in.Call(modules.TargetSequence, &[]interface{}{1}, "popItem")
	fmt.Println(err)
	// Output:
	// *center me**
	// sequence: no method "popItem"
}

func ExampleList_Call() {
	if err := install.Start(); err != nil {
		panic(err)
	}
	l := install.List{"a", "b", "c"}
	last, _ := l.Call("popItem")
	_, _ = l.Call("insert", 0, last)
	fmt.Println(l)

	d := install.Dict{"a": 1}
	v, _ := d.Call("setdefault", "b", 2)
	fmt.Println(v, len(d))
	// Output:
	// [c a b]
	// 2 2
}
