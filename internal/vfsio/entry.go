// Package vfsio imports and exports virtual filesystem trees as XML or YAML documents.
package vfsio

import (
	"encoding/base64"

	"github.com/charmbracelet/log"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/permissions"
	"github.com/rwx-research/vsh/internal/versions"
	"github.com/rwx-research/vsh/internal/vfs"
)

type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"

	EncodingText   = "text"
	EncodingBase64 = "base64"

	// UnnamedEntry is used for entries that don't carry a name.
	UnnamedEntry = "unnamed"
)

// Document is the format-neutral shape shared by every codec.
type Document struct {
	Version string
	Entries []Entry
}

// Entry is a serialized node. Content holds the file contents as written in the
// document, in the given Encoding.
type Entry struct {
	Kind        Kind
	Name        string
	Permissions string
	Owner       string
	Group       string
	Encoding    string
	Content     string
	Children    []Entry
}

// FromTree serializes the whole tree of v. The root directory is written as an
// explicit "/" entry and children are ordered by name.
func FromTree(v *vfs.VFS) Document {
	return Document{
		Version: versions.FormatVersion,
		Entries: []Entry{fromNode(v.Root())},
	}
}

func fromNode(node vfs.Node) Entry {
	entry := Entry{
		Name:        node.Name(),
		Permissions: node.Permissions(),
		Owner:       node.Owner(),
		Group:       node.Group(),
	}

	switch n := node.(type) {
	case *vfs.Directory:
		entry.Kind = KindDirectory
		for _, child := range n.Children() {
			entry.Children = append(entry.Children, fromNode(child))
		}
	case *vfs.File:
		entry.Kind = KindFile
		entry.Encoding, entry.Content = encodeContent(n.Bytes())
	}

	return entry
}

// Populate builds a new VFS for username out of doc. A directory entry named "/" is
// treated as a wrapper around the root's children. Recoverable problems, such as
// malformed permissions or undecodable content, are logged and replaced by defaults.
func Populate(doc Document, username string, logger *log.Logger) (*vfs.VFS, error) {
	if err := versions.CheckFormatVersion(doc.Version); err != nil {
		return nil, err
	}

	v := vfs.New(username)
	p := populator{username: username, logger: logger}
	for _, entry := range doc.Entries {
		p.add(v.Root(), entry)
	}

	return v, nil
}

type populator struct {
	username string
	logger   *log.Logger
}

func (p populator) add(parent *vfs.Directory, entry Entry) {
	switch entry.Kind {
	case KindDirectory:
		if entry.Name == vfs.Root {
			for _, child := range entry.Children {
				p.add(parent, child)
			}
			return
		}

		dir := vfs.NewDirectory(p.metadata(entry, vfs.DefaultDirectoryPermissions))
		parent.Add(dir)
		for _, child := range entry.Children {
			p.add(dir, child)
		}
	case KindFile:
		contents, err := decodeContent(entry.Encoding, entry.Content)
		if err != nil {
			p.logger.Warn("Unable to decode file contents, leaving the file empty", "file", entry.Name, "error", err)
			contents = nil
		}

		parent.Add(vfs.NewFile(p.metadata(entry, vfs.DefaultFilePermissions), contents))
	default:
		p.logger.Warn("Skipping unknown entry", "kind", entry.Kind, "name", entry.Name)
	}
}

func (p populator) metadata(entry Entry, defaultPermissions string) vfs.Metadata {
	meta := vfs.Metadata{
		Name:        entry.Name,
		Permissions: entry.Permissions,
		Owner:       entry.Owner,
		Group:       entry.Group,
	}

	if meta.Name == "" {
		meta.Name = UnnamedEntry
	}
	if meta.Permissions == "" {
		meta.Permissions = defaultPermissions
	} else if !permissions.Valid(meta.Permissions) {
		p.logger.Warn("Ignoring malformed permissions", "name", meta.Name, "permissions", meta.Permissions, "default", defaultPermissions)
		meta.Permissions = defaultPermissions
	}
	if meta.Owner == "" {
		meta.Owner = p.username
	}
	if meta.Group == "" {
		meta.Group = p.username
	}

	return meta
}

// encodeContent keeps printable ASCII as text and base64-encodes everything else. Carriage
// returns are encoded too since XML parsers fold them into newlines.
func encodeContent(contents []byte) (string, string) {
	if len(contents) == 0 {
		return "", ""
	}

	for _, b := range contents {
		if b > 0x7e || (b < 0x20 && b != '\t' && b != '\n') {
			return EncodingBase64, base64.StdEncoding.EncodeToString(contents)
		}
	}

	return EncodingText, string(contents)
}

func decodeContent(encoding, content string) ([]byte, error) {
	switch encoding {
	case "", EncodingText:
		return []byte(content), nil
	case EncodingBase64:
		decoded, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return nil, errors.Wrap(err, "invalid base64 content")
		}
		return decoded, nil
	default:
		return nil, errors.Errorf("unknown content encoding %q", encoding)
	}
}
