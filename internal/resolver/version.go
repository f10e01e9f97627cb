package resolver

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// latestVersion returns the greatest of names under version ordering:
// entries that parse as versions ("v20.11.1", "18", "10.2.0") compare by
// semver and rank above anything that does not parse ("system", "lts");
// the rest compare segment by segment with digit runs taken as numbers.
func latestVersion(names []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	sorted := append([]string(nil), names...)
	sortVersions(sorted)
	return sorted[len(sorted)-1], true
}

// sortVersions sorts names ascending in version order.
func sortVersions(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return compareVersions(names[i], names[j]) < 0
	})
}

// compareVersions returns -1, 0 or 1 as a sorts before, equal to or after b.
func compareVersions(a, b string) int {
	av, aerr := parseSemver(a)
	bv, berr := parseSemver(b)
	switch {
	case aerr == nil && berr == nil:
		if c := av.Compare(bv); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aerr == nil:
		return 1
	case berr == nil:
		return -1
	default:
		return compareNatural(a, b)
	}
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// compareNatural compares a and b the way `sort -V` does for names that are
// not versions: runs of digits compare numerically, everything else bytewise.
func compareNatural(a, b string) int {
	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)
		if c := compareRun(ra, rb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func nextRun(s string) (run, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func compareRun(a, b string) int {
	if isDigit(a[0]) && isDigit(b[0]) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
