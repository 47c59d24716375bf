// Package period infers reporting-period granularity from period key
// strings and provides the day-count constants used by day-based ratios.
package period

import (
	"regexp"
	"sort"
	"strconv"
)

// Periodicity is the reporting granularity of a set of period keys.
type Periodicity string

const (
	Monthly   Periodicity = "monthly"
	Quarterly Periodicity = "quarterly"
	Annual    Periodicity = "annual"
)

// Period key shapes. A bare 4-digit year is annual, "YYYY-QN" quarterly,
// "YYYY-MM" monthly. Anything else falls through to annual.
var (
	monthlyRe   = regexp.MustCompile(`^\d{4}-\d{2}$`)
	quarterlyRe = regexp.MustCompile(`^\d{4}-Q[1-4]$`)
	annualRe    = regexp.MustCompile(`^\d{4}$`)
)

// Detect infers the periodicity of a key set by scanning for the most
// granular shape present: one monthly key makes the whole set monthly,
// else one quarterly key makes it quarterly, else annual. Callers must
// not mix granularities within one computation; this precedence rule is
// what governs day counts when they do anyway.
func Detect(keys []string) Periodicity {
	for _, k := range keys {
		if monthlyRe.MatchString(k) {
			return Monthly
		}
	}
	for _, k := range keys {
		if quarterlyRe.MatchString(k) {
			return Quarterly
		}
	}
	return Annual
}

// Days returns the fixed day count a period of this granularity stands
// for in day-based ratios. These are conventions, not calendar days.
func (p Periodicity) Days() float64 {
	switch p {
	case Monthly:
		return 30
	case Quarterly:
		return 90
	default:
		return 365
	}
}

// IsMonthly reports whether key has the YYYY-MM shape.
func IsMonthly(key string) bool { return monthlyRe.MatchString(key) }

// IsQuarterly reports whether key has the YYYY-QN shape.
func IsQuarterly(key string) bool { return quarterlyRe.MatchString(key) }

// IsAnnual reports whether key is a bare 4-digit year.
func IsAnnual(key string) bool { return annualRe.MatchString(key) }

// Year extracts the 4-digit year prefix of any recognized key shape.
func Year(key string) (int, bool) {
	if len(key) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(key[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// DistinctYears counts the distinct years covered by keys.
func DistinctYears(keys []string) int {
	seen := map[int]bool{}
	for _, k := range keys {
		if y, ok := Year(k); ok {
			seen[y] = true
		}
	}
	return len(seen)
}

// SortKeys returns keys sorted ascending as plain strings. Within one
// granularity string order matches chronological order; across mixed
// granularities it does not (e.g. "2024-10" sorts before "2024-Q2").
// The engine deliberately keeps string ordering for "latest" selection.
func SortKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}

// Latest returns the lexicographically last key, or "" for an empty set.
func Latest(keys []string) string {
	latest := ""
	for _, k := range keys {
		if k > latest {
			latest = k
		}
	}
	return latest
}
