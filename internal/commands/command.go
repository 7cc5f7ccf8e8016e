// Package commands implements the shell's built-in commands and the registry that
// dispatches to them.
package commands

import (
	"github.com/rwx-research/vsh/internal/vfs"
)

// Output is the result of running a command. The zero value means the command
// produced no output at all, which is distinct from producing empty text.
type Output struct {
	text    string
	present bool
}

var NoOutput = Output{}

func Print(text string) Output {
	return Output{text: text, present: true}
}

func (o Output) HasOutput() bool {
	return o.present
}

func (o Output) String() string {
	return o.text
}

// Env is everything a command may read or change.
type Env struct {
	FS       *vfs.VFS
	Username string
	Hostname string
	Running  bool
}

func NewEnv(fs *vfs.VFS, username, hostname string) *Env {
	return &Env{
		FS:       fs,
		Username: username,
		Hostname: hostname,
		Running:  true,
	}
}

type Command interface {
	Name() string
	Description() string
	Execute(env *Env, args []string) Output
}
