package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version of binaries built without ldflags.
const DevVersion = "dev"

// CheckRequires reports an error when version does not satisfy the semver
// constraint. An empty constraint or a dev build always passes.
func CheckRequires(constraint, version string) error {
	if constraint == "" || version == DevVersion || version == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing %s constraint %q: %w", KeyRequires, constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("settings require version %s, running %s", constraint, version)
	}
	return nil
}
