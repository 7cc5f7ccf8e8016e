package fs_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/fs"
)

var _ = Describe("Local", func() {
	var (
		local fs.Local
		dir   string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("writes files that can be read back", func() {
		name := filepath.Join(dir, "tree.xml")
		Expect(local.WriteFile(name, []byte("<filesystem/>"))).To(Succeed())

		exists, err := local.Exists(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		fd, err := local.Open(name)
		Expect(err).NotTo(HaveOccurred())
		defer fd.Close()

		contents, err := io.ReadAll(fd)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal("<filesystem/>"))

		info, err := os.Stat(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm() & fs.DefaultFileMode).To(Equal(info.Mode().Perm()))
	})

	It("keeps the mode of a file it overwrites", func() {
		name := filepath.Join(dir, "tree.xml")
		Expect(os.WriteFile(name, []byte("old"), 0o600)).To(Succeed())

		Expect(local.WriteFile(name, []byte("new"))).To(Succeed())

		info, err := os.Stat(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
	})

	It("reports missing files", func() {
		exists, err := local.Exists(filepath.Join(dir, "missing"))
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		_, err = local.Open(filepath.Join(dir, "missing"))
		Expect(err).To(MatchError(errors.ErrFileNotExists))
		Expect(err.Error()).To(ContainSubstring("unable to open"))
	})
})
