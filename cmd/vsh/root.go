package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rwx-research/vsh/cmd/vsh/config"
	"github.com/rwx-research/vsh/internal/cli"
	settings "github.com/rwx-research/vsh/internal/config"
	"github.com/rwx-research/vsh/internal/fs"
	"github.com/rwx-research/vsh/internal/versions"
)

var (
	Debug bool

	cfg     settings.Config
	service cli.Service

	rootCmd = &cobra.Command{
		Use:   "vsh [flags]",
		Short: "An educational UNIX shell emulator over an in-memory filesystem",
		Long: "vsh emulates a small UNIX shell (cd, ls, pwd, whoami, tail, tree, chmod) over an\n" +
			"in-memory filesystem that can be loaded from an XML or YAML file.",
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           config.Version,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.Run(cli.RunConfig{
				SessionConfig: sessionConfig(),
				System:        fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			})
		},
	}
)

func init() {
	settings.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&Debug, settings.KeyDebug, false, "enable debug output")

	rootCmd.AddCommand(exportCmd)
}

// setup resolves the configuration and builds the service shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	homeDir, _ := os.UserHomeDir()

	var (
		configFile string
		err        error
	)
	cfg, configFile, err = settings.Load(settings.LoadOptions{Flags: cmd.Flags(), HomeDir: homeDir})
	if err != nil {
		return err
	}
	Debug = cfg.Debug

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Debug)
	logger.Debug(
		"Configuration",
		"version", versions.GetCliCurrentVersion(),
		"format-version", versions.GetFormatVersion(),
		"config-file", configFile,
		"vfs-path", cfg.VFSPath,
		"startup-script", cfg.StartupScript,
		"username", cfg.Username,
		"hostname", cfg.Hostname,
		"interactive", isTerminal(os.Stdin),
	)

	service, err = cli.NewService(cli.Config{
		FileSystem: fs.Local{},
		Logger:     logger,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})
	return err
}

func sessionConfig() cli.SessionConfig {
	return cli.SessionConfig{
		VFSPath:       cfg.VFSPath,
		StartupScript: cfg.StartupScript,
		Username:      cfg.Username,
		Hostname:      cfg.Hostname,
		Interactive:   isTerminal(os.Stdin),
		Width:         terminalWidth(os.Stdout),
	}
}
