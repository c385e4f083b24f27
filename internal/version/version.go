// Package version provides the version value type used on both axes of the
// test matrix: the runtime version and the companion version.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3. Versions in
// compatibility tables are usually spelled as "major.minor" ("3.9", "2.16");
// String returns the original spelling, not the normalized three-part form.
package version

import (
	"fmt"
	"sort"

	mm "github.com/Masterminds/semver/v3"
)

// Version is a single version on either matrix axis.
//
// The zero Version is invalid; obtain one via Parse or MustParse.
type Version struct {
	v *mm.Version
}

// InvalidVersionError is returned when a version string cannot be parsed.
type InvalidVersionError struct {
	Raw string
	Err error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version format %q: %v", e.Raw, e.Err)
}

func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// Parse parses a version string such as "3.9" or "2.16.1".
func Parse(raw string) (Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return Version{}, &InvalidVersionError{Raw: raw, Err: err}
	}
	return Version{v: v}, nil
}

// MustParse is Parse for statically known inputs. It panics on error.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseAll parses a list of version strings, failing on the first bad one.
func ParseAll(raws []string) ([]Version, error) {
	versions := make([]Version, 0, len(raws))
	for _, raw := range raws {
		v, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// IsZero reports whether v is the invalid zero Version.
func (v Version) IsZero() bool {
	return v.v == nil
}

// String returns the original spelling the version was parsed from.
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.Original()
}

// Compare returns -1, 0 or 1 if v is less than, equal to or greater than o.
// The zero Version sorts before every valid version.
func (v Version) Compare(o Version) int {
	if v.v == nil && o.v == nil {
		return 0
	}
	if v.v == nil {
		return -1
	}
	if o.v == nil {
		return 1
	}
	return v.v.Compare(o.v)
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Equal reports whether v and o denote the same version, ignoring spelling
// ("3.9" equals "3.9.0").
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// Sort sorts versions ascending, in place. The sort is stable so that
// repeated runs over identical input produce identical output.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})
}

// Contains reports whether versions contains needle.
func Contains(versions []Version, needle Version) bool {
	for _, v := range versions {
		if v.Equal(needle) {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler so versions serialize with
// their original spelling in JSON documents.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Strings renders versions with their original spellings.
func Strings(versions []Version) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.String())
	}
	return out
}
