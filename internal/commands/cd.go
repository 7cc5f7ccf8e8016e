package commands

import (
	"fmt"

	"github.com/rwx-research/vsh/internal/vfs"
)

// FallbackHome is used by cd when the user's own home directory doesn't exist.
const FallbackHome = "/home/user"

type Cd struct{}

func (Cd) Name() string {
	return "cd"
}

func (Cd) Description() string {
	return "Change the current directory"
}

func (Cd) Execute(env *Env, args []string) Output {
	var target string
	if len(args) == 0 {
		target = vfs.HomeDir(env.FS.Username())
		if _, ok := env.FS.GetNode(target); !ok {
			target = FallbackHome
		}
	} else {
		target = args[0]
	}

	if err := env.FS.ChangeDirectory(target); err != nil {
		return Print(fmt.Sprintf("cd: %s: No such file or directory", target))
	}

	return NoOutput
}
