package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rwx-research/vsh/internal/vfs"
)

const defaultTailLines = 10

type Tail struct{}

func (Tail) Name() string {
	return "tail"
}

func (Tail) Description() string {
	return "Print the last lines of a file"
}

func (Tail) Execute(env *Env, args []string) Output {
	count := defaultTailLines
	path := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-n" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return Print(fmt.Sprintf("tail: invalid number of lines: '%s'", args[i+1]))
			}
			count = n
			i++
		case strings.HasPrefix(arg, "-"):
			continue
		case path == "":
			path = arg
		}
	}

	if path == "" {
		return Print("tail: missing file operand")
	}

	node, ok := env.FS.GetNode(path)
	if !ok {
		return Print(fmt.Sprintf("tail: cannot open '%s' for reading: No such file or directory", path))
	}

	file, ok := node.(*vfs.File)
	if !ok {
		return Print(fmt.Sprintf("tail: error reading '%s': Is a directory", path))
	}

	lines := splitLines(file.String())
	if count < len(lines) {
		lines = lines[len(lines)-count:]
	}

	return Print(strings.Join(lines, "\n"))
}

// splitLines breaks content on "\n" and "\r\n" without producing an extra empty line
// for a trailing terminator.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
