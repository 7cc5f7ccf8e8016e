package commands

import (
	"maps"
	"slices"
)

// Registry maps command names to commands. It is read-only once built.
type Registry struct {
	commands map[string]Command
}

// Default holds every built-in command.
var Default = NewRegistry(
	Cd{},
	Chmod{},
	Exit{},
	Ls{},
	Pwd{},
	Tail{},
	Tree{},
	Whoami{},
)

func NewRegistry(commands ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(commands)+1)}
	for _, command := range commands {
		r.commands[command.Name()] = command
	}
	r.commands["help"] = Help{registry: r}
	return r
}

func (r *Registry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Names returns the registered command names in alphabetical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.commands))
}

// Dispatch runs the named command, reporting unknown commands the way a shell would.
func (r *Registry) Dispatch(env *Env, name string, args []string) Output {
	command, ok := r.Lookup(name)
	if !ok {
		return Print(name + ": command not found")
	}

	return command.Execute(env, args)
}
