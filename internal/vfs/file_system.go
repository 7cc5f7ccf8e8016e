// Package vfs implements the in-memory virtual filesystem the shell operates on.
package vfs

import (
	"time"

	"github.com/rwx-research/vsh/internal/errors"
)

const (
	RootOwner = "root"
	RootGroup = "root"
)

// VFS owns a single tree rooted at "/" along with the shell's working directory state.
// It is not safe for concurrent use.
type VFS struct {
	root         *Directory
	username     string
	currentPath  string
	previousPath string
}

func New(username string) *VFS {
	return &VFS{
		root: NewDirectory(Metadata{
			Name:        Root,
			Permissions: DefaultDirectoryPermissions,
			Owner:       RootOwner,
			Group:       RootGroup,
			ModTime:     time.Now(),
		}),
		username:     username,
		currentPath:  Root,
		previousPath: Root,
	}
}

func (v *VFS) Root() *Directory {
	return v.root
}

func (v *VFS) Username() string {
	return v.username
}

// CurrentDirectory returns the canonical working directory.
func (v *VFS) CurrentDirectory() string {
	return v.currentPath
}

func (v *VFS) PreviousDirectory() string {
	return v.previousPath
}

// Canonicalize resolves path against the VFS's working directory state.
func (v *VFS) Canonicalize(path string) string {
	return Canonicalize(path, v.currentPath, v.username, v.previousPath)
}

// GetNode looks up path, reporting false when any component is missing or an
// intermediate component isn't a directory.
func (v *VFS) GetNode(path string) (Node, bool) {
	var current Node = v.root
	for _, part := range segments(v.Canonicalize(path)) {
		dir, ok := current.(*Directory)
		if !ok {
			return nil, false
		}

		current, ok = dir.Child(part)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// ChangeDirectory moves the working directory to path, remembering the old one for "-".
func (v *VFS) ChangeDirectory(path string) error {
	canonical := v.Canonicalize(path)

	node, ok := v.GetNode(canonical)
	if !ok {
		return errors.Wrapf(errors.ErrNotExist, "%s", path)
	}
	if !node.IsDir() {
		return errors.Wrapf(errors.ErrNotDirectory, "%s", path)
	}

	v.previousPath = v.currentPath
	v.currentPath = canonical
	return nil
}

// CreateDirectory adds an empty directory at path, owned by the VFS user. The parent
// must already exist.
func (v *VFS) CreateDirectory(path string, perms string) (*Directory, error) {
	parent, name, err := v.parentOf(path)
	if err != nil {
		return nil, err
	}

	dir := NewDirectory(v.metadata(name, perms))
	parent.Add(dir)
	return dir, nil
}

// MkdirAll creates path and any missing parents.
func (v *VFS) MkdirAll(path string, perms string) (*Directory, error) {
	current := v.root
	for _, part := range segments(v.Canonicalize(path)) {
		child, ok := current.Child(part)
		if !ok {
			dir := NewDirectory(v.metadata(part, perms))
			current.Add(dir)
			current = dir
			continue
		}

		dir, ok := child.(*Directory)
		if !ok {
			return nil, errors.Wrapf(errors.ErrNotDirectory, "unable to create subdirectory of regular file at %q", part)
		}
		current = dir
	}

	return current, nil
}

// CreateFile adds a file at path, owned by the VFS user, replacing any existing entry
// with the same name. The parent must already exist.
func (v *VFS) CreateFile(path string, contents []byte, perms string) (*File, error) {
	parent, name, err := v.parentOf(path)
	if err != nil {
		return nil, err
	}

	file := NewFile(v.metadata(name, perms), contents)
	parent.Add(file)
	return file, nil
}

// Remove deletes the node at path and its subtree. The root can't be removed.
func (v *VFS) Remove(path string) error {
	parent, name, err := v.parentOf(path)
	if err != nil {
		return err
	}

	if !parent.Remove(name) {
		return errors.Wrapf(errors.ErrNotExist, "%s", path)
	}
	return nil
}

func (v *VFS) parentOf(path string) (*Directory, string, error) {
	dirPath, name := Split(v.Canonicalize(path))
	if name == "" {
		return nil, "", errors.Wrapf(errors.ErrExist, "%s", path)
	}

	node, ok := v.GetNode(dirPath)
	if !ok {
		return nil, "", errors.Wrapf(errors.ErrNotExist, "parent directory doesn't exist at %q", dirPath)
	}

	parent, ok := node.(*Directory)
	if !ok {
		return nil, "", errors.Wrapf(errors.ErrNotDirectory, "%s", dirPath)
	}

	return parent, name, nil
}

func (v *VFS) metadata(name, perms string) Metadata {
	return Metadata{
		Name:        name,
		Permissions: perms,
		Owner:       v.username,
		Group:       v.username,
		ModTime:     time.Now(),
	}
}
