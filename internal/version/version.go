package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a parsed package version: a semver-ordered public part plus an
// optional local part ("+dev", "+build.3") that outranks the bare release.
type Version struct {
	public *semver.Version
	local  []string
	raw    string
}

// preSuffixRe matches compact pre-release forms like "0.0.5b1" or "1.2rc3".
var preSuffixRe = regexp.MustCompile(`^(\d+(?:\.\d+){0,2})[._-]?(a|b|c|rc|alpha|beta|pre|preview|dev)[._-]?(\d*)$`)

// Parse parses a version string. A leading "v" is tolerated and stripped.
func Parse(s string) (*Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return nil, fmt.Errorf("empty version string")
	}

	public := strings.TrimPrefix(raw, "v")
	var local []string
	if i := strings.IndexByte(public, '+'); i >= 0 {
		localPart := public[i+1:]
		public = public[:i]
		if localPart == "" {
			return nil, fmt.Errorf("version %q has an empty local segment", raw)
		}
		local = strings.FieldsFunc(localPart, isLocalSeparator)
	}

	sv, err := semver.NewVersion(normalizePublic(public))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", raw, err)
	}

	return &Version{public: sv, local: local, raw: raw}, nil
}

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater than o.
func (v *Version) Compare(o *Version) int {
	if c := v.public.Compare(o.public); c != 0 {
		return c
	}
	return compareLocal(v.local, o.local)
}

// String returns the version as originally supplied.
func (v *Version) String() string {
	return v.raw
}

// Compare parses both version strings and compares them.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}

// normalizePublic rewrites compact pre-release suffixes ("0.0.5b1") into
// semver pre-release form ("0.0.5-b.1") so they sort below the bare release.
// Versions already carrying a "-" pre-release pass through untouched.
func normalizePublic(s string) string {
	if strings.Contains(s, "-") {
		return s
	}
	m := preSuffixRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return s
	}
	out := m[1] + "-" + m[2]
	if m[3] != "" {
		out += "." + m[3]
	}
	return out
}

func isLocalSeparator(r rune) bool {
	return r == '.' || r == '-' || r == '_'
}

// compareLocal orders local version parts. A version with a local part
// outranks the same public version without one. Segment lists compare
// pairwise; on a common prefix the longer list wins.
func compareLocal(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	case len(b) == 0:
		return 1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareLocalSegment(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// compareLocalSegment orders two local segments: numerically when both are
// numeric, lexically when both are alphanumeric. Numeric segments outrank
// alphanumeric ones.
func compareLocalSegment(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case aErr == nil:
		return 1
	case bErr == nil:
		return -1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
