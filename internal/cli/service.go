package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/rwx-research/vsh/internal/commands"
	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/messages"
	"github.com/rwx-research/vsh/internal/shell"
	"github.com/rwx-research/vsh/internal/vfs"
	"github.com/rwx-research/vsh/internal/vfsio"
)

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

// Run starts a shell session: it loads the filesystem, runs the startup script if one
// is given, then reads commands until exit or end of input.
func (s Service) Run(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	sh := s.newShell(cfg.SessionConfig, s.loadOrDefault(cfg.SessionConfig))

	if err := s.runStartupScript(sh, cfg.SessionConfig); err != nil {
		return err
	}

	if !sh.Env.Running {
		return nil
	}

	if !cfg.Interactive {
		return sh.Run(shell.NewReaderSource(s.Stdin, nil))
	}

	fmt.Fprintln(s.Stdout, messages.FormatWelcome(cfg.Username, cfg.Hostname, cfg.System))

	source, err := shell.NewReadlineSource(s.Stdin, s.Stdout, s.Stderr)
	if err != nil {
		return err
	}
	defer source.Close()

	return sh.Run(source)
}

// Export loads the filesystem, runs the startup script if one is given and writes the
// resulting tree to cfg.Output.
func (s Service) Export(cfg ExportConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	exists, err := s.FileSystem.Exists(cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "unable to check whether %q exists", cfg.Output)
	}

	if exists && !cfg.Force {
		if cfg.Confirm == nil {
			return errors.Errorf("%q already exists, use --force to overwrite it", cfg.Output)
		}

		overwrite, err := cfg.Confirm(cfg.Output)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(s.Stdout, "Export cancelled.")
			return nil
		}
	}

	v, err := s.load(cfg.SessionConfig)
	if err != nil {
		return err
	}

	if err := s.runStartupScript(s.newShell(cfg.SessionConfig, v), cfg.SessionConfig); err != nil {
		return err
	}

	s.Logger.Info("Exporting filesystem", "path", cfg.Output)
	if err := vfsio.Save(s.FileSystem, cfg.Output, v); err != nil {
		return errors.Wrapf(err, "unable to export the filesystem to %q", cfg.Output)
	}

	fmt.Fprintf(s.Stdout, "Exported filesystem to %s\n", cfg.Output)
	return nil
}

func (s Service) newShell(cfg SessionConfig, v *vfs.VFS) *shell.Shell {
	env := commands.NewEnv(v, cfg.Username, cfg.Hostname)
	return shell.New(env, commands.Default, s.Stdout, s.Logger)
}

func (s Service) runStartupScript(sh *shell.Shell, cfg SessionConfig) error {
	if cfg.StartupScript == "" {
		return nil
	}

	script, err := s.FileSystem.Open(cfg.StartupScript)
	if err != nil {
		return errors.Wrap(err, "unable to read the startup script")
	}
	defer script.Close()

	return sh.RunScript(script, cfg.StartupScript, cfg.Width)
}

func (s Service) loadOrDefault(cfg SessionConfig) *vfs.VFS {
	stop := s.startProgress(cfg)
	defer stop()

	return vfsio.LoadOrDefault(s.FileSystem, cfg.VFSPath, cfg.Username, s.Logger)
}

// load is the strict variant of loadOrDefault: a filesystem that was asked for but
// can't be read is an error.
func (s Service) load(cfg SessionConfig) (*vfs.VFS, error) {
	if cfg.VFSPath == "" {
		return vfsio.NewDefault(cfg.Username), nil
	}

	stop := s.startProgress(cfg)
	defer stop()

	v, err := vfsio.Load(s.FileSystem, cfg.VFSPath, cfg.Username, s.Logger)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s Service) startProgress(cfg SessionConfig) func() {
	if !cfg.Interactive || cfg.VFSPath == "" {
		return func() {}
	}

	indicator := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(s.Stderr))
	indicator.Suffix = " Loading filesystem..."
	indicator.Start()
	return indicator.Stop
}
