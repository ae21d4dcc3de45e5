package main

import (
	"github.com/rubiojr/pyproto/cmd"
	_ "github.com/rubiojr/pyproto/modules/arrays"
	_ "github.com/rubiojr/pyproto/modules/maps"
	_ "github.com/rubiojr/pyproto/modules/strings"
)

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
