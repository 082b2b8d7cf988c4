package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires reports an error when version does not satisfy the semver
// constraint declared under "requires". An empty constraint always passes,
// as does a version that is not semver (e.g. "dev" builds).
func CheckRequires(constraint, version string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}

	if ok, errs := c.Validate(v); !ok {
		reason := "constraint not met"
		if len(errs) > 0 {
			reason = errs[0].Error()
		}
		return fmt.Errorf("config requires version %s, running %s: %s", constraint, version, reason)
	}
	return nil
}
