package commands

import (
	"fmt"
	"strings"

	"github.com/rwx-research/vsh/internal/permissions"
	"github.com/rwx-research/vsh/internal/vfs"
)

const (
	lsColumns     = 4
	directorySize = 4096
	modTimeLayout = "Jan 02 15:04"
)

type Ls struct{}

func (Ls) Name() string {
	return "ls"
}

func (Ls) Description() string {
	return "List directory contents"
}

func (Ls) Execute(env *Env, args []string) Output {
	var showHidden, long bool
	target := ""

	for _, arg := range args {
		switch {
		case arg == "-a":
			showHidden = true
		case arg == "-l":
			long = true
		case arg == "-la" || arg == "-al":
			showHidden = true
			long = true
		case strings.HasPrefix(arg, "-"):
			continue
		case target == "":
			target = arg
		}
	}

	if target == "" {
		target = env.FS.CurrentDirectory()
	}

	node, ok := env.FS.GetNode(target)
	if !ok {
		return Print(fmt.Sprintf("ls: cannot access '%s': No such file or directory", target))
	}

	dir, ok := node.(*vfs.Directory)
	if !ok {
		if long {
			return Print(longEntry(node))
		}
		return Print(node.Name())
	}

	names := dir.Names(showHidden)
	if len(names) == 0 {
		return Print("")
	}

	if long {
		lines := make([]string, 0, len(names))
		for _, name := range names {
			child, _ := dir.Child(name)
			lines = append(lines, longEntry(child))
		}
		return Print(strings.Join(lines, "\n"))
	}

	return Print(shortListing(dir, names))
}

func shortListing(dir *vfs.Directory, names []string) string {
	entries := make([]string, 0, len(names))
	for _, name := range names {
		child, _ := dir.Child(name)
		if file, ok := child.(*vfs.File); ok && file.IsExecutable() {
			name += "*"
		}
		entries = append(entries, name)
	}

	rows := make([]string, 0, (len(entries)+lsColumns-1)/lsColumns)
	for start := 0; start < len(entries); start += lsColumns {
		end := min(start+lsColumns, len(entries))
		rows = append(rows, strings.Join(entries[start:end], "  "))
	}

	return strings.Join(rows, "\n")
}

func longEntry(node vfs.Node) string {
	kind, links, size, name := "-", 1, int64(0), node.Name()

	switch n := node.(type) {
	case *vfs.Directory:
		kind, links, size, name = "d", 2, directorySize, name+"/"
	case *vfs.File:
		size = n.Size()
	}

	return fmt.Sprintf(
		"%s%s %2d %-8s %-8s %8d %s %s",
		kind,
		permissions.ToSymbolic(node.Permissions()),
		links,
		node.Owner(),
		node.Group(),
		size,
		node.ModTime().Format(modTimeLayout),
		name,
	)
}
