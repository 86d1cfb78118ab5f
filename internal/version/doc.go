// Package version parses and compares package version strings as they
// appear in extension metadata. The public part of a version follows semver
// precedence, with compact pre-release suffixes ("0.0.5b1") normalized so
// they sort below the bare release. A local part after "+" ("0.0.5+dev")
// sorts above the same public version without one; local segments compare
// numerically when both sides are numeric, lexically otherwise.
package version
