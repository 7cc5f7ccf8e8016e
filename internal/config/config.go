// Package config resolves the emulator's settings from flags, VSH_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rwx-research/vsh/internal/errors"
)

const (
	EnvPrefix         = "VSH"
	DefaultConfigFile = ".vsh.yaml"

	FallbackUsername = "user"
	FallbackHostname = "localhost"

	KeyVFSPath       = "vfs-path"
	KeyStartupScript = "startup-script"
	KeyUsername      = "username"
	KeyHostname      = "hostname"
	KeyDebug         = "debug"
	KeyConfig        = "config"
)

type Config struct {
	VFSPath       string `mapstructure:"vfs-path"`
	StartupScript string `mapstructure:"startup-script"`
	Username      string `mapstructure:"username"`
	Hostname      string `mapstructure:"hostname"`
	Debug         bool   `mapstructure:"debug"`
}

func (c Config) Validate() error {
	if c.Username == "" {
		return errors.New("missing username")
	}

	if strings.Contains(c.Username, "/") {
		return errors.Errorf("invalid username %q: must not contain '/'", c.Username)
	}

	if c.Hostname == "" {
		return errors.New("missing hostname")
	}

	return nil
}

// AddFlags registers every setting as a flag on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyVFSPath, "", "path to an XML or YAML filesystem to load instead of the default tree")
	flags.String(KeyStartupScript, "", "path to a script to run before the session starts")
	flags.String(KeyUsername, "", "username shown in the prompt (defaults to the current user)")
	flags.String(KeyHostname, "", "hostname shown in the prompt (defaults to this machine's hostname)")
	flags.String(KeyConfig, "", "path to a YAML config file (defaults to ~/"+DefaultConfigFile+" when present)")
}

type LoadOptions struct {
	Flags *pflag.FlagSet
	// HomeDir is searched for the default config file. It is ignored when the config
	// flag is set.
	HomeDir string
}

// Load resolves the configuration. It returns the path of the config file that was
// read, if any.
func Load(opts LoadOptions) (Config, string, error) {
	v := viper.New()

	v.SetDefault(KeyUsername, DefaultUsername())
	v.SetDefault(KeyHostname, DefaultHostname())
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := v.BindPFlags(opts.Flags); err != nil {
			return Config{}, "", errors.Wrap(err, "unable to bind flags")
		}
	}

	configFile, err := findConfigFile(v.GetString(KeyConfig), opts.HomeDir)
	if err != nil {
		return Config{}, "", err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", errors.Wrapf(err, "unable to read config file %q", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", errors.Wrap(err, "unable to parse config")
	}

	return cfg, configFile, nil
}

func findConfigFile(explicit, homeDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if homeDir == "" {
		return "", nil
	}

	candidate := filepath.Join(homeDir, DefaultConfigFile)
	if _, err := os.Stat(candidate); err != nil {
		return "", nil
	}
	return candidate, nil
}

func DefaultUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" && !strings.Contains(u.Username, "/") {
		return u.Username
	}
	return FallbackUsername
}

func DefaultHostname() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return FallbackHostname
}
