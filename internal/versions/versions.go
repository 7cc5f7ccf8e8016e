package versions

import (
	semver "github.com/Masterminds/semver/v3"
	"github.com/rwx-research/vsh/cmd/vsh/config"
	"github.com/rwx-research/vsh/internal/errors"
)

// FormatVersion is written to every exported filesystem.
const FormatVersion = "1.0.0"

var (
	currentVersion *semver.Version
	formatVersion  = semver.MustParse(FormatVersion)

	// Files written by any 1.x release can be read.
	supportedFormats = mustConstraint("^1")
)

func init() {
	var err error
	currentVersion, err = semver.NewVersion(config.Version)
	if err != nil {
		// Assume this is a development build and it is newer than any release.
		currentVersion = semver.MustParse("9999+" + config.Version)
	}
}

func GetCliCurrentVersion() *semver.Version {
	return currentVersion
}

func GetFormatVersion() *semver.Version {
	return formatVersion
}

// CheckFormatVersion errors unless versionStr names a filesystem format this build can
// read. An empty version predates versioning and is accepted.
func CheckFormatVersion(versionStr string) error {
	if versionStr == "" {
		return nil
	}

	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupportedFormat, "unable to parse version %q", versionStr)
	}

	if !supportedFormats.Check(version) {
		return errors.Wrapf(errors.ErrUnsupportedFormat, "version %s is not supported (expected %s)", version, supportedFormats)
	}

	return nil
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}
