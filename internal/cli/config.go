package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/fs"
	"github.com/rwx-research/vsh/internal/vfsio"
)

type Config struct {
	FileSystem fs.FileSystem
	Logger     *log.Logger
	Stdin      io.ReadCloser
	Stdout     io.Writer
	Stderr     io.Writer
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Logger == nil {
		return errors.New("missing logger")
	}

	if c.Stdin == nil {
		return errors.New("missing stdin")
	}

	if c.Stdout == nil {
		return errors.New("missing stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing stderr")
	}

	return nil
}

// SessionConfig names the filesystem and identity a session starts with.
type SessionConfig struct {
	VFSPath       string
	StartupScript string
	Username      string
	Hostname      string
	// Interactive enables the line editor, the welcome message and progress output.
	Interactive bool
	// Width is the terminal width used for banners. Zero means unknown.
	Width int
}

func (c SessionConfig) Validate() error {
	if c.Username == "" {
		return errors.New("missing username")
	}

	if c.Hostname == "" {
		return errors.New("missing hostname")
	}

	return nil
}

type RunConfig struct {
	SessionConfig
	// System describes the host in the welcome message.
	System string
}

func (c RunConfig) Validate() error {
	return c.SessionConfig.Validate()
}

type ExportConfig struct {
	SessionConfig
	Output string
	Force  bool
	// Confirm is asked before an existing output file is overwritten. Without it,
	// existing files are only overwritten when Force is set.
	Confirm func(path string) (bool, error)
}

func (c ExportConfig) Validate() error {
	if err := c.SessionConfig.Validate(); err != nil {
		return err
	}

	if c.Output == "" {
		return errors.New("missing output path")
	}

	if _, err := vfsio.CodecFor(c.Output); err != nil {
		return err
	}

	return nil
}
