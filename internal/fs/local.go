package fs

import (
	"os"

	"github.com/google/renameio/v2"

	"github.com/rwx-research/vsh/internal/errors"
)

const DefaultFileMode os.FileMode = 0o644

type Local struct{}

func (l Local) Open(name string) (File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %q", name)
	}

	return fd, nil
}

// WriteFile replaces name atomically, keeping the mode of an existing file.
func (l Local) WriteFile(name string, data []byte) error {
	if err := renameio.WriteFile(name, data, DefaultFileMode, renameio.WithExistingPermissions()); err != nil {
		return errors.Wrapf(err, "unable to write %q", name)
	}

	return nil
}

func (l Local) Exists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
