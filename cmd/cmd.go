package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiojr/pyproto/doc"
	"github.com/rubiojr/pyproto/install"
	"github.com/rubiojr/pyproto/modules"
)

// Execute runs the pyproto CLI with the given version string.
// Import modules via blank imports before calling this function
// so they register via init().
func Execute(version string) {
	if err := New(version).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// New returns the root command. Output goes to the command's Writer and
// ErrWriter, which default to stdout and stderr.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:                   "pyproto",
		Usage:                  "Python-style methods for strings, lists and maps",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log installation events to stderr",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "call",
				Usage:     "Invoke one operation on a receiver",
				ArgsUsage: "<module> <function> <receiver> [args...]",
				Flags:     []cli.Flag{configFlag()},
				Action:    callAction,
			},
			{
				Name:   "list",
				Usage:  "Show the methods installed on each container kind",
				Flags:  []cli.Flag{configFlag()},
				Action: listAction,
			},
			{
				Name:      "doc",
				Usage:     "Show documentation for a module or function",
				ArgsUsage: "[module | module.function]",
				Action:    docAction,
			},
			{
				Name:      "check",
				Usage:     "Validate a configuration file",
				ArgsUsage: "<file>",
				Action:    checkAction,
			},
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML or TOML file with the exclusion set",
	}
}

// setup disables color when asked to, when NO_COLOR is already set, or when
// output is not a terminal.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" || !isTerminal(cmd.Root().Writer) {
		os.Setenv("NO_COLOR", "1")
	}
	return ctx, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newInstaller(cmd *cli.Command) (*install.Installer, error) {
	var options []install.InstallerOption
	if cmd.Bool("verbose") {
		h := slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug})
		options = append(options, install.WithLogger(slog.New(h)))
	}
	in := install.New(options...)
	if path := cmd.String("config"); path != "" {
		opts, err := install.LoadOptions(path)
		if err != nil {
			return nil, err
		}
		if err := in.Configure(opts); err != nil {
			return nil, err
		}
	}
	if err := in.Start(); err != nil {
		return nil, err
	}
	return in, nil
}

func callAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 3 {
		return fmt.Errorf("usage: pyproto call [--config FILE] <module> <function> <receiver> [args...]")
	}
	args := cmd.Args().Slice()
	m, ok := modules.Get(args[0])
	if !ok {
		return modules.Errorf(modules.ErrNotFound, "call", "unknown module %q", args[0])
	}
	in, err := newInstaller(cmd)
	if err != nil {
		return err
	}
	_, f, ok := in.Prototype(m.Target).Lookup(args[1])
	if !ok {
		return modules.Errorf(modules.ErrNotFound, "call", "%s has no installed function %q", m.Name, args[1])
	}
	recv, err := decodeReceiver(m.Target, args[2])
	if err != nil {
		return err
	}
	callArgs, err := decodeArgs(f, args[3:])
	if err != nil {
		return err
	}
	out, err := in.Call(m.Target, recv, f.Name, callArgs...)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if out != nil || !f.Mutates {
		if err := writeValue(w, out); err != nil {
			return err
		}
	}
	if f.Mutates {
		if p, ok := recv.(*[]interface{}); ok {
			recv = *p
		}
		return writeValue(w, recv)
	}
	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	in, err := newInstaller(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.Root().Writer, doc.FormatPrototypes(in))
	return nil
}

func docAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	if cmd.NArg() == 0 {
		fmt.Fprint(w, doc.FormatAllModules())
		return nil
	}
	out, ok := doc.Lookup(cmd.Args().First())
	if !ok {
		return fmt.Errorf("unknown module or function %q", cmd.Args().First())
	}
	fmt.Fprint(w, out)
	return nil
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: pyproto check <file>")
	}
	path := cmd.Args().First()
	opts, err := install.LoadOptions(path)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	fmt.Fprintf(w, "%s: ok\n", path)
	for _, name := range modules.SortedKeys(opts.Exclude) {
		ex := opts.Exclude[name]
		switch {
		case ex.All:
			fmt.Fprintf(w, "  %s: excluded\n", name)
		case len(ex.Funcs) > 0:
			fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(ex.Funcs, ", "))
		default:
			fmt.Fprintf(w, "  %s: nothing excluded\n", name)
		}
	}
	return nil
}
