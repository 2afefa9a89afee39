package commands

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Command is a console subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag
// state and positional arguments via FlagSet.Arg.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with
// Execute. Every line submitted to the editor console is a command.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a console line
// (e.g. "add"). fs is that command's FlagSet; run is called after
// fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted. Used by the help command.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse tokenizes a console line by whitespace. ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional
// arguments. Returns an error for an unknown command, a flag parse error, or
// from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (try help)", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}
