package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/rwx-research/vsh/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Validate", func() {
		It("accepts a username and hostname", func() {
			Expect(config.Config{Username: "bob", Hostname: "box"}.Validate()).To(Succeed())
		})

		It("rejects a missing username", func() {
			Expect(config.Config{Hostname: "box"}.Validate()).To(MatchError("missing username"))
		})

		It("rejects usernames containing a slash", func() {
			Expect(config.Config{Username: "a/b", Hostname: "box"}.Validate()).To(MatchError(ContainSubstring("must not contain '/'")))
		})

		It("rejects a missing hostname", func() {
			Expect(config.Config{Username: "bob"}.Validate()).To(MatchError("missing hostname"))
		})
	})

	Describe("Load", func() {
		var (
			flags   *pflag.FlagSet
			homeDir string
			args    []string
			cfg     config.Config
			file    string
			err     error
		)

		setenv := func(key, value string) {
			Expect(os.Setenv(key, value)).To(Succeed())
			DeferCleanup(os.Unsetenv, key)
		}

		BeforeEach(func() {
			flags = pflag.NewFlagSet("vsh", pflag.ContinueOnError)
			config.AddFlags(flags)
			flags.Bool(config.KeyDebug, false, "")
			homeDir = GinkgoT().TempDir()
			args = nil
		})

		JustBeforeEach(func() {
			Expect(flags.Parse(args)).To(Succeed())
			cfg, file, err = config.Load(config.LoadOptions{Flags: flags, HomeDir: homeDir})
		})

		Context("with nothing set", func() {
			It("falls back to the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(file).To(BeEmpty())
				Expect(cfg.Username).To(Equal(config.DefaultUsername()))
				Expect(cfg.Hostname).To(Equal(config.DefaultHostname()))
				Expect(cfg.VFSPath).To(BeEmpty())
				Expect(cfg.StartupScript).To(BeEmpty())
				Expect(cfg.Debug).To(BeFalse())
			})
		})

		Context("with flags", func() {
			BeforeEach(func() {
				args = []string{"--vfs-path", "tree.xml", "--startup-script", "start.sh", "--username", "bob", "--hostname", "box", "--debug"}
			})

			It("uses them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).To(Equal(config.Config{
					VFSPath:       "tree.xml",
					StartupScript: "start.sh",
					Username:      "bob",
					Hostname:      "box",
					Debug:         true,
				}))
			})
		})

		Context("with environment variables", func() {
			BeforeEach(func() {
				setenv("VSH_VFS_PATH", "env.yaml")
				setenv("VSH_USERNAME", "carol")
				args = []string{"--username", "dave"}
			})

			It("uses them below flags", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.VFSPath).To(Equal("env.yaml"))
				Expect(cfg.Username).To(Equal("dave"))
			})
		})

		Context("with a config file in the home directory", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(filepath.Join(homeDir, config.DefaultConfigFile), []byte("hostname: from-file\nvfs-path: file.xml\n"), 0o644)).To(Succeed())
				setenv("VSH_VFS_PATH", "env.xml")
			})

			It("reads it below the environment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(file).To(Equal(filepath.Join(homeDir, config.DefaultConfigFile)))
				Expect(cfg.Hostname).To(Equal("from-file"))
				Expect(cfg.VFSPath).To(Equal("env.xml"))
			})
		})

		Context("with an explicit config file", func() {
			var path string

			BeforeEach(func() {
				path = filepath.Join(GinkgoT().TempDir(), "custom.yaml")
				Expect(os.WriteFile(path, []byte("username: erin\n"), 0o644)).To(Succeed())
				args = []string{"--config", path}
			})

			It("reads it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(file).To(Equal(path))
				Expect(cfg.Username).To(Equal("erin"))
			})
		})

		Context("with a missing explicit config file", func() {
			BeforeEach(func() {
				args = []string{"--config", filepath.Join(homeDir, "missing.yaml")}
			})

			It("errors", func() {
				Expect(err).To(MatchError(ContainSubstring("config file not found")))
			})
		})
	})
})
