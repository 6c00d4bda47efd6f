// Package identifier implements human-readable sequential identifiers such as
// C001, B002, A010, DC003 and branch-prefixed ticket numbers like HQ-001.
// Formatting and parsing are pure functions; allocation against storage lives
// in the infrastructure layer.
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinWidth is the minimum zero-padded width of the numeric part.
// Numbers beyond 999 keep their natural width.
const MinWidth = 3

var trailingNumber = regexp.MustCompile(`-?(\d+)$`)

// Format renders a plain identifier: prefix directly followed by the
// zero-padded number, e.g. Format("C", 7) == "C007".
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, MinWidth, n)
}

// FormatDashed renders a dashed identifier used for branch-prefixed tickets,
// e.g. FormatDashed("HQ", 10) == "HQ-010".
func FormatDashed(prefix string, n int) string {
	return fmt.Sprintf("%s-%0*d", prefix, MinWidth, n)
}

// TrailingNumber extracts the trailing integer of an identifier, ignoring an
// optional dash separator. Comparison by parsed integer is what makes "C10"
// sort after "C9".
func TrailingNumber(id string) (int, bool) {
	m := trailingNumber.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxPlain returns the numerically largest trailing number among identifiers
// of the form {prefix}{digits} (no dash). Identifiers that do not match the
// namespace are skipped. Returns 0 when the namespace is empty.
func MaxPlain(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok || rest == "" || strings.Contains(rest, "-") {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// MaxDashed returns the numerically largest trailing number among identifiers
// of the form {prefix}-{digits}. Returns 0 when the namespace is empty.
func MaxDashed(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix+"-")
		if !ok || rest == "" {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// Normalize strips dashes from an identifier. Used by public ticket tracking
// so that a lookup for "T-028" still finds "T028".
func Normalize(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
