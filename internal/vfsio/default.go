package vfsio

import (
	"github.com/rwx-research/vsh/internal/vfs"
)

const (
	DefaultHostname = "emulator-host"

	welcomeMessage = "Welcome to the shell emulator!\n"
	bashrcContents = "# bash configuration\nexport PS1='\\u@\\h:\\w\\$ '\n"
)

// NewDefault builds the tree used when no filesystem file is provided.
func NewDefault(username string) *vfs.VFS {
	v := vfs.New(username)
	home := vfs.HomeDir(username)

	for _, dir := range []string{"/home", home, "/etc", "/tmp", "/var"} {
		mustSucceed(v.MkdirAll(dir, vfs.DefaultDirectoryPermissions))
	}

	mustSucceed(v.CreateFile(home+"/welcome.txt", []byte(welcomeMessage), vfs.DefaultFilePermissions))
	mustSucceed(v.CreateFile(home+"/.bashrc", []byte(bashrcContents), vfs.DefaultFilePermissions))
	mustSucceed(v.CreateFile("/etc/hostname", []byte(DefaultHostname+"\n"), vfs.DefaultFilePermissions))

	return v
}

// The default tree is built from fixed paths, so any failure is a programming error.
func mustSucceed[T any](_ T, err error) {
	if err != nil {
		panic(err)
	}
}
