package vfs

import "strings"

const (
	Separator = "/"
	Root      = "/"
	Home      = "~"
	Previous  = "-"
)

// HomeDir is the home directory of username.
func HomeDir(username string) string {
	return "/home/" + username
}

// Resolve expands the shell shorthands "~", "~/..." and "-". Every other path is
// returned unchanged.
func Resolve(raw, username, previous string) string {
	switch {
	case raw == Home:
		return HomeDir(username)
	case strings.HasPrefix(raw, Home+Separator):
		return HomeDir(username) + raw[len(Home):]
	case raw == Previous:
		return previous
	default:
		return raw
	}
}

// Normalize makes path absolute relative to cwd and removes empty, "." and ".."
// segments. A ".." with nothing left to pop is ignored.
func Normalize(path, cwd string) string {
	if !strings.HasPrefix(path, Separator) {
		if cwd == Root {
			path = Root + path
		} else {
			path = cwd + Separator + path
		}
	}

	parts := make([]string, 0)
	for _, part := range strings.Split(path, Separator) {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return Root
	}
	return Separator + strings.Join(parts, Separator)
}

// Canonicalize resolves shorthands and normalizes the result.
func Canonicalize(path, cwd, username, previous string) string {
	return Normalize(Resolve(path, username, previous), cwd)
}

// Split returns the parent directory and base name of a canonical path.
func Split(canonical string) (string, string) {
	if canonical == Root {
		return Root, ""
	}

	idx := strings.LastIndex(canonical, Separator)
	if idx == 0 {
		return Root, canonical[1:]
	}
	return canonical[:idx], canonical[idx+1:]
}

func segments(canonical string) []string {
	if canonical == Root {
		return nil
	}
	return strings.Split(strings.TrimPrefix(canonical, Separator), Separator)
}
