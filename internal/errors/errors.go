package errors

import (
	"os"

	"github.com/pkg/errors"
)

var (
	ErrFileNotExists = os.ErrNotExist

	ErrNotExist           = errors.New("no such file or directory")
	ErrExist              = errors.New("file exists")
	ErrNotDirectory       = errors.New("not a directory")
	ErrIsDirectory        = errors.New("is a directory")
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidPermissions = errors.New("invalid permissions")
	ErrUnsupportedFormat  = errors.New("unsupported filesystem format")

	As        = errors.As
	Errorf    = errors.Errorf
	Is        = errors.Is
	New       = errors.New
	WithStack = errors.WithStack
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
)
