package vfsio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/fs"
	"github.com/rwx-research/vsh/internal/vfs"
)

// Codec converts between raw document bytes and a Document.
type Codec interface {
	Decode(data []byte) (Document, error)
	Encode(doc Document) ([]byte, error)
}

// CodecFor picks a codec based on the extension of path.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return XML{}, nil
	case ".yml", ".yaml":
		return YAML{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "unknown file extension for %q (expected .xml, .yml or .yaml)", path)
	}
}

// Load reads the filesystem document at path and builds a VFS for username out of it.
func Load(fileSystem fs.FileSystem, path, username string, logger *log.Logger) (*vfs.VFS, error) {
	codec, err := CodecFor(path)
	if err != nil {
		return nil, err
	}

	file, err := fileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", path)
	}

	doc, err := codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %q", path)
	}

	v, err := Populate(doc, username, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %q", path)
	}

	return v, nil
}

// LoadOrDefault behaves like Load but falls back to the default tree when path is
// empty or can't be loaded. Load failures are logged.
func LoadOrDefault(fileSystem fs.FileSystem, path, username string, logger *log.Logger) *vfs.VFS {
	if path == "" {
		logger.Debug("No filesystem file given, using the default tree")
		return NewDefault(username)
	}

	v, err := Load(fileSystem, path, username, logger)
	if err != nil {
		logger.Warn("Unable to load filesystem, using the default tree", "path", path, "error", err)
		return NewDefault(username)
	}

	logger.Debug("Loaded filesystem", "path", path)
	return v
}

// Save writes the whole tree of v to path, choosing the format by extension.
func Save(fileSystem fs.FileSystem, path string, v *vfs.VFS) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}

	data, err := codec.Encode(FromTree(v))
	if err != nil {
		return err
	}

	return fileSystem.WriteFile(path, data)
}
