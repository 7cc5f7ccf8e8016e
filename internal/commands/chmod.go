package commands

import (
	"fmt"

	"github.com/rwx-research/vsh/internal/permissions"
)

type Chmod struct{}

func (Chmod) Name() string {
	return "chmod"
}

func (Chmod) Description() string {
	return "Change file and directory permissions"
}

func (Chmod) Execute(env *Env, args []string) Output {
	if len(args) < 2 {
		return Print("chmod: missing operand\nUsage: chmod MODE FILE")
	}
	mode, path := args[0], args[1]

	node, ok := env.FS.GetNode(path)
	if !ok {
		return Print(fmt.Sprintf("chmod: cannot access '%s': No such file or directory", path))
	}

	perms, err := permissions.ApplyChmod(mode, node.Permissions())
	if err != nil {
		return Print(fmt.Sprintf("chmod: %s", err))
	}

	node.SetPermissions(perms)
	return NoOutput
}
