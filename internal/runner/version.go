package runner

import (
	"github.com/Masterminds/semver/v3"

	"github.com/monoforge-labs/monoforge/internal/ui"
)

// DetectPackageManagerVersion asks the package manager for its version and
// returns the trimmed output. When the command fails for any reason, or the
// output is not a valid semantic version, it warns and returns fallback
// instead of propagating the error. This is the only recovered external
// command failure in the system: a wrong pinned version still yields a
// usable workspace, whereas a failed install would not.
func DetectPackageManagerVersion(r Runner, out *ui.Printer, pm, fallback string) string {
	v, err := r.RunCapturing("", pm, "--version")
	if err != nil {
		out.Warn("could not detect %s version, using %s: %v", pm, fallback, err)
		return fallback
	}
	if _, err := semver.NewVersion(v); err != nil {
		out.Warn("unexpected %s version output %q, using %s", pm, v, fallback)
		return fallback
	}
	return v
}
