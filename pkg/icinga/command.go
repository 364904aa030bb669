// Package icinga renders Icinga2 CheckCommand configuration objects for
// plugins built on this module, so a plugin can emit its own command
// definition instead of that definition being maintained by hand.
package icinga

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// EnvVar triggers config generation when set in the plugin's
// environment (see PrintIfEnv).
const EnvVar = "GENERATE_ICINGA_COMMAND"

// Argument describes one command line argument of a plugin.
type Argument struct {
	// Name is the argument as passed on the command line, e.g. "--warning".
	Name string

	// Variable is the Icinga custom variable the argument reads from,
	// e.g. "warning". Dashes are replaced with underscores.
	Variable string

	// Description is the flag's help text, if any.
	Description string

	// IsFlag marks boolean arguments, which render as set_if instead
	// of value.
	IsFlag bool

	// Default is the flag's default value. Empty strings, false
	// booleans and zero numerics are treated as no default.
	Default string
}

// Command is the argument surface of a plugin, ready to render as an
// Icinga2 CheckCommand object.
type Command struct {
	Arguments []Argument
}

// CommandFromCobra builds a Command from the long flags of cmd. Flags
// without a long name cannot be addressed in a CheckCommand definition
// and are an error.
func CommandFromCobra(cmd *cobra.Command) (Command, error) {
	var args []Argument
	var walkErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if walkErr != nil {
			return
		}
		if f.Name == "" {
			walkErr = fmt.Errorf("icinga: flag with shorthand %q has no long name", f.Shorthand)
			return
		}

		args = append(args, Argument{
			Name:        "--" + f.Name,
			Variable:    strings.ReplaceAll(f.Name, "-", "_"),
			Description: f.Usage,
			IsFlag:      f.Value.Type() == "bool",
			Default:     defaultValue(f),
		})
	})

	if walkErr != nil {
		return Command{}, walkErr
	}
	return Command{Arguments: args}, nil
}

// defaultValue returns the flag default worth carrying into the
// generated config. Zero values would only add noise.
func defaultValue(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "0", "false":
		return ""
	}
	return f.DefValue
}

// Render emits the Icinga2 object definition for a CheckCommand with
// the given name executing exePath.
func (c Command) Render(name, exePath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "object CheckCommand %q {\n", name)
	fmt.Fprintf(&b, "  command = [ \"%s\" ]\n", escape(exePath))
	b.WriteString("  arguments = {\n")

	for _, arg := range c.Arguments {
		fmt.Fprintf(&b, "    \"%s\" = {\n", arg.Name)
		if arg.IsFlag {
			fmt.Fprintf(&b, "      set_if = \"$%s$\"\n", arg.Variable)
		} else {
			fmt.Fprintf(&b, "      value = \"$%s$\"\n", arg.Variable)
		}
		if arg.Description != "" {
			fmt.Fprintf(&b, "      description = \"%s\"\n", escape(arg.Description))
		}
		b.WriteString("    }\n")
	}
	b.WriteString("  }\n")

	for _, arg := range c.Arguments {
		if arg.Default != "" {
			fmt.Fprintf(&b, "  vars.%s = \"%s\"\n", arg.Variable, escape(arg.Default))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// escape backslash-escapes the characters Icinga2 treats specially
// inside double-quoted strings.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "$", `\$`)
}

// PrintIfEnv renders the CheckCommand config for cmd to w when EnvVar
// is set. It reports whether generation was requested; the caller is
// expected to exit without running the check when it was.
func PrintIfEnv(w io.Writer, name string, cmd *cobra.Command) (bool, error) {
	if os.Getenv(EnvVar) == "" {
		return false, nil
	}

	command, err := CommandFromCobra(cmd)
	if err != nil {
		return true, err
	}
	exe, err := os.Executable()
	if err != nil {
		return true, fmt.Errorf("icinga: resolve executable path: %w", err)
	}

	_, err = io.WriteString(w, command.Render(name, exe))
	return true, err
}
