package vfs

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/rwx-research/vsh/internal/permissions"
)

const (
	DefaultDirectoryPermissions = "755"
	DefaultFilePermissions      = "644"
)

// Node is a File or Directory entry in the tree.
type Node interface {
	Name() string
	Permissions() string
	SetPermissions(perms string)
	Owner() string
	Group() string
	ModTime() time.Time
	IsDir() bool
}

var (
	_ Node = (*File)(nil)
	_ Node = (*Directory)(nil)
)

type Metadata struct {
	Name        string
	Permissions string
	Owner       string
	Group       string
	ModTime     time.Time
}

type node struct {
	meta Metadata
}

func (n *node) Name() string {
	return n.meta.Name
}

func (n *node) Permissions() string {
	return n.meta.Permissions
}

func (n *node) SetPermissions(perms string) {
	n.meta.Permissions = perms
}

func (n *node) Owner() string {
	return n.meta.Owner
}

func (n *node) Group() string {
	return n.meta.Group
}

func (n *node) ModTime() time.Time {
	return n.meta.ModTime
}

func newNode(meta Metadata, defaultPermissions string) node {
	if meta.Permissions == "" {
		meta.Permissions = defaultPermissions
	}
	if meta.ModTime.IsZero() {
		meta.ModTime = time.Now()
	}
	return node{meta: meta}
}

type File struct {
	node
	contents []byte
}

func NewFile(meta Metadata, contents []byte) *File {
	return &File{
		node:     newNode(meta, DefaultFilePermissions),
		contents: bytes.Clone(contents),
	}
}

func (f *File) IsDir() bool {
	return false
}

// Bytes returns a copy of the file's contents.
func (f *File) Bytes() []byte {
	return bytes.Clone(f.contents)
}

func (f *File) String() string {
	return string(f.contents)
}

func (f *File) Size() int64 {
	return int64(len(f.contents))
}

// Write replaces the file's contents and bumps its modification time.
func (f *File) Write(contents []byte) {
	f.contents = bytes.Clone(contents)
	f.meta.ModTime = time.Now()
}

func (f *File) IsExecutable() bool {
	return permissions.IsExecutable(f.meta.Permissions)
}

type Directory struct {
	node
	children map[string]Node
}

func NewDirectory(meta Metadata) *Directory {
	return &Directory{
		node:     newNode(meta, DefaultDirectoryPermissions),
		children: make(map[string]Node),
	}
}

func (d *Directory) IsDir() bool {
	return true
}

// Add inserts child, replacing any existing entry with the same name.
func (d *Directory) Add(child Node) {
	d.children[child.Name()] = child
}

func (d *Directory) Child(name string) (Node, bool) {
	child, ok := d.children[name]
	return child, ok
}

// Remove drops the named child along with its whole subtree.
func (d *Directory) Remove(name string) bool {
	if _, ok := d.children[name]; !ok {
		return false
	}

	delete(d.children, name)
	return true
}

// Names returns child names sorted alphabetically, leaving out dot-prefixed names
// unless showHidden is set.
func (d *Directory) Names(showHidden bool) []string {
	names := slices.Sorted(maps.Keys(d.children))
	if showHidden {
		return names
	}

	return slices.DeleteFunc(names, func(name string) bool {
		return strings.HasPrefix(name, ".")
	})
}

// Children returns every child ordered by name.
func (d *Directory) Children() []Node {
	children := make([]Node, 0, len(d.children))
	for _, name := range d.Names(true) {
		children = append(children, d.children[name])
	}
	return children
}

func (d *Directory) Len() int {
	return len(d.children)
}
