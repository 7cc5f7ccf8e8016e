package commands

import (
	"fmt"
	"strings"

	"github.com/rwx-research/vsh/internal/vfs"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	blank      = "    "
)

type Tree struct{}

func (Tree) Name() string {
	return "tree"
}

func (Tree) Description() string {
	return "Print the directory hierarchy as a tree"
}

func (Tree) Execute(env *Env, args []string) Output {
	target := env.FS.CurrentDirectory()
	if len(args) > 0 {
		target = args[0]
	}

	node, ok := env.FS.GetNode(target)
	if !ok {
		return Print(fmt.Sprintf("tree: %s: No such file or directory", target))
	}

	dir, ok := node.(*vfs.Directory)
	if !ok {
		return Print(fmt.Sprintf("tree: %s: Not a directory", target))
	}

	lines := []string{target}
	dirs, files := renderTree(dir, "", &lines)
	lines = append(lines, "", fmt.Sprintf("%d directories, %d files", dirs, files))

	return Print(strings.Join(lines, "\n"))
}

// renderTree appends one line per descendant of dir and returns how many directories
// and files it visited.
func renderTree(dir *vfs.Directory, prefix string, lines *[]string) (int, int) {
	var dirs, files int

	children := dir.Children()
	for i, child := range children {
		connector, extension := branch, pipe
		if i == len(children)-1 {
			connector, extension = lastBranch, blank
		}

		switch c := child.(type) {
		case *vfs.Directory:
			*lines = append(*lines, prefix+connector+c.Name()+"/")
			subDirs, subFiles := renderTree(c, prefix+extension, lines)
			dirs += 1 + subDirs
			files += subFiles
		case *vfs.File:
			name := c.Name()
			if c.IsExecutable() {
				name += "*"
			}
			*lines = append(*lines, prefix+connector+name)
			files++
		}
	}

	return dirs, files
}
