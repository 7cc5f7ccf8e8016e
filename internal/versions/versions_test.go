package versions_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/versions"
)

var _ = Describe("CheckFormatVersion", func() {
	It("accepts unversioned files", func() {
		Expect(versions.CheckFormatVersion("")).To(Succeed())
	})

	It("accepts any 1.x format", func() {
		Expect(versions.CheckFormatVersion("1.0.0")).To(Succeed())
		Expect(versions.CheckFormatVersion("1.4")).To(Succeed())
		Expect(versions.CheckFormatVersion(versions.FormatVersion)).To(Succeed())
	})

	It("rejects other major versions", func() {
		Expect(versions.CheckFormatVersion("2.0.0")).To(MatchError(errors.ErrUnsupportedFormat))
		Expect(versions.CheckFormatVersion("0.9.0")).To(MatchError(errors.ErrUnsupportedFormat))
	})

	It("rejects garbage", func() {
		err := versions.CheckFormatVersion("latest")
		Expect(err).To(MatchError(errors.ErrUnsupportedFormat))
		Expect(err.Error()).To(ContainSubstring(`unable to parse version "latest"`))
	})
})

var _ = Describe("GetCliCurrentVersion", func() {
	It("treats development builds as newer than any release", func() {
		Expect(versions.GetCliCurrentVersion().Major()).To(Equal(uint64(9999)))
	})
})
