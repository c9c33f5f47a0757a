package unorm_test

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-nfd/unorm"
)

//go:embed testdata/NormalizationTest.txt
var normalizationTestData string

// parseNormalizationTestLine splits one non-comment NormalizationTest.txt
// data line into its five columns, each itself a space-separated list of
// hex scalar values, and returns the five decoded strings.
func parseNormalizationTestLine(t *testing.T, line string) (cols [5]string, ok bool) {
	t.Helper()
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "@") {
		return cols, false
	}
	fields := strings.Split(line, ";")
	if len(fields) < 5 {
		t.Fatalf("malformed conformance line %q: want 5 columns, got %d", line, len(fields))
	}
	for i := 0; i < 5; i++ {
		cols[i] = decodeScalarList(t, strings.TrimSpace(fields[i]))
	}
	return cols, true
}

func decodeScalarList(t *testing.T, field string) string {
	t.Helper()
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		var r rune
		for _, c := range hex {
			r <<= 4
			switch {
			case c >= '0' && c <= '9':
				r |= rune(c - '0')
			case c >= 'A' && c <= 'F':
				r |= rune(c-'A') + 10
			default:
				t.Fatalf("bad hex digit %q in %q", c, field)
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TestConformance runs the embedded NormalizationTest.txt subset (see
// testdata/NormalizationTest.txt) through the five equalities spec.md
// section 6 defines in terms of the decomposing forms this module
// implements (it does not implement NFC/NFKC, so the NFC/NFKC-only
// equalities from the real UCD fixture header are not checked here).
func TestConformance(t *testing.T) {
	nfd, nfkd := unorm.NewNFD(), unorm.NewNFKD()

	lines := strings.Split(normalizationTestData, "\n")
	checked := 0
	for _, line := range lines {
		cols, ok := parseNormalizationTestLine(t, line)
		if !ok {
			continue
		}
		c1, c2, c3, c4, c5 := cols[0], cols[1], cols[2], cols[3], cols[4]
		checked++

		assert.Equal(t, c3, nfd.NormalizeString(c1), "toNFD(c1) for %q", c1)
		assert.Equal(t, c3, nfd.NormalizeString(c2), "toNFD(c2) for %q", c1)
		assert.Equal(t, c3, nfd.NormalizeString(c3), "toNFD(c3) for %q", c1)

		assert.Equal(t, c5, nfd.NormalizeString(c4), "toNFD(c4) for %q", c1)
		assert.Equal(t, c5, nfd.NormalizeString(c5), "toNFD(c5) for %q", c1)

		for i, c := range cols {
			assert.Equal(t, c5, nfkd.NormalizeString(c), "toNFKD(c%d) for %q", i+1, c1)
		}
	}
	if checked == 0 {
		t.Fatal("no conformance rows parsed from testdata/NormalizationTest.txt")
	}
}
