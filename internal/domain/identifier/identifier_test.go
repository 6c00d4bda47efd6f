package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		prefix   string
		n        int
		expected string
	}{
		{"C", 1, "C001"},
		{"B", 42, "B042"},
		{"A", 999, "A999"},
		{"T", 1000, "T1000"},
		{"DC", 7, "DC007"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.prefix, tt.n))
	}
}

func TestFormatDashed(t *testing.T) {
	assert.Equal(t, "HQ-001", FormatDashed("HQ", 1))
	assert.Equal(t, "BKK-010", FormatDashed("BKK", 10))
	assert.Equal(t, "HQ-1234", FormatDashed("HQ", 1234))
}

func TestTrailingNumber(t *testing.T) {
	tests := []struct {
		id       string
		n        int
		ok       bool
	}{
		{"C009", 9, true},
		{"C9", 9, true},
		{"HQ-010", 10, true},
		{"T1000", 1000, true},
		{"DC", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		n, ok := TrailingNumber(tt.id)
		assert.Equal(t, tt.ok, ok, tt.id)
		assert.Equal(t, tt.n, n, tt.id)
	}
}

func TestMaxPlain_NumericNotLexicographic(t *testing.T) {
	// "C9" must beat "C10" lexicographically but lose numerically.
	max := MaxPlain([]string{"C9", "C10", "C2"}, "C")
	assert.Equal(t, 10, max)

	// Next generated value after C9 alone is C010.
	max = MaxPlain([]string{"C9"}, "C")
	assert.Equal(t, "C010", Format("C", max+1))
}

func TestMaxPlain_IgnoresDashedAndForeign(t *testing.T) {
	ids := []string{"T001", "T099", "HQ-100", "T-050", "TX"}
	assert.Equal(t, 99, MaxPlain(ids, "T"))
}

func TestMaxPlain_EmptyNamespace(t *testing.T) {
	assert.Equal(t, 0, MaxPlain(nil, "C"))
	assert.Equal(t, "C001", Format("C", MaxPlain(nil, "C")+1))
}

func TestMaxDashed(t *testing.T) {
	ids := []string{"HQ-001", "HQ-009", "HQ2-050", "T099"}
	assert.Equal(t, 9, MaxDashed(ids, "HQ"))
	assert.Equal(t, "HQ-010", FormatDashed("HQ", MaxDashed(ids, "HQ")+1))
}

func TestMaxDashed_DisjointFromPlain(t *testing.T) {
	// Unprefixed tickets never leak into a dashed namespace and vice versa.
	ids := []string{"T500"}
	assert.Equal(t, 0, MaxDashed(ids, "T"))

	ids = []string{"T-500"}
	assert.Equal(t, 0, MaxPlain(ids, "T"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "T028", Normalize("T-028"))
	assert.Equal(t, "HQ001", Normalize("HQ-001"))
	assert.Equal(t, "T028", Normalize("T028"))
}
