package sema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the module version: major.minor.revision with an optional tag.
type Version struct {
	Major    uint64
	Minor    uint64
	Revision uint64
	Tag      string
}

// DefaultVersion is used when the module does not set one.
var DefaultVersion = Version{Major: 1}

// ParseVersion accepts one to four dot-separated parts where the first
// three are numbers and the fourth is a free-form tag. Semantic versions
// such as "v1.2.3-beta" are accepted too; the prerelease becomes the tag.
func ParseVersion(s string) (Version, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, false
	}

	parts := strings.Split(s, ".")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 4 {
		if _, err := strconv.ParseUint(parts[2], 10, 64); err == nil {
			v, ok := ParseVersion(strings.Join(parts[:3], "."))
			if !ok || v.Tag != "" || parts[3] == "" {
				return Version{}, false
			}
			v.Tag = parts[3]
			return v, true
		}
	}

	sv, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return Version{}, false
	}
	return Version{
		Major:    sv.Major(),
		Minor:    sv.Minor(),
		Revision: sv.Patch(),
		Tag:      sv.Prerelease(),
	}, true
}

func (v Version) String() string {
	if v.Tag != "" {
		return fmt.Sprintf("%d.%d.%d.%s", v.Major, v.Minor, v.Revision, v.Tag)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Semver returns the version in semantic-versioning form, with the tag as
// the prerelease part. Tags that are not valid prerelease identifiers are dropped.
func (v Version) Semver() *semver.Version {
	if v.Tag != "" {
		if sv, err := semver.NewVersion(fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Revision, v.Tag)); err == nil {
			return sv
		}
	}
	return semver.New(v.Major, v.Minor, v.Revision, "", "")
}
