package doc

import (
	"fmt"
	"os"
	"strings"

	"github.com/rubiojr/pyproto/install"
	"github.com/rubiojr/pyproto/modules"
)

func colorize(code, s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func bold(s string) string { return colorize("1", s) }
func cyan(s string) string { return colorize("36", s) }
func gray(s string) string { return colorize("90", s) }

// FormatSymbol formats a single symbol lookup result.
func FormatSymbol(docStr, signature string) string {
	var sb strings.Builder
	sb.WriteString(cyan(signature))
	sb.WriteString("\n")
	if docStr != "" {
		sb.WriteString("    ")
		sb.WriteString(strings.ReplaceAll(docStr, "\n", "\n    "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatModule formats a module table for terminal display.
func FormatModule(m *modules.Module) string {
	var sb strings.Builder

	header := fmt.Sprintf("module %s (%s)", m.Name, m.Target)
	if len(m.Aliases) > 0 {
		header += " alias " + strings.Join(m.Aliases, ", ")
	}
	sb.WriteString(bold(header))
	sb.WriteString("\n")
	if m.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(m.Doc)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, f := range m.Funcs {
		sig := cyan(m.Name + "." + f.Signature())
		if f.Mutates {
			sig += " " + gray("(in place)")
		}
		sb.WriteString(sig)
		sb.WriteString("\n")
		if f.Doc != "" {
			sb.WriteString("    ")
			sb.WriteString(f.Doc)
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatAllModules lists all registered modules.
func FormatAllModules() string {
	var sb strings.Builder

	sb.WriteString("Modules:\n")
	for _, name := range modules.Names() {
		m, _ := modules.Get(name)
		line := fmt.Sprintf("  %-10s %-9s", name, m.Target)
		if m.Doc != "" {
			line += " " + m.Doc
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatPrototypes lists the methods installed by in for each container
// kind, in installation order.
func FormatPrototypes(in *install.Installer) string {
	var sb strings.Builder
	for _, t := range []modules.Target{modules.TargetText, modules.TargetMapping, modules.TargetSequence} {
		names := in.Prototype(t).Names()
		sb.WriteString(bold(fmt.Sprintf("%s (%d)", t, len(names))))
		sb.WriteString("\n")
		if len(names) == 0 {
			sb.WriteString("    " + gray("nothing installed") + "\n")
			continue
		}
		sb.WriteString("    ")
		sb.WriteString(strings.Join(names, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
