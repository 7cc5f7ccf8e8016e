package commands

import (
	"fmt"
	"strings"
)

type Help struct {
	registry *Registry
}

func (Help) Name() string {
	return "help"
}

func (Help) Description() string {
	return "List the available commands"
}

func (h Help) Execute(_ *Env, _ []string) Output {
	names := h.registry.Names()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		command, _ := h.registry.Lookup(name)
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, name, command.Description()))
	}

	return Print(strings.Join(lines, "\n"))
}
