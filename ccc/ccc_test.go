package ccc_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/transform"

	"github.com/go-nfd/unorm/ccc"
)

// TestOf exercises boundaries of this module's own curated cccRanges table
// (ccc/data.go), picking one codepoint from each script block that table
// adds beyond the Latin/combining-diacritical core: Arabic harakat,
// Devanagari, Thai, and the symbol-overlay block, plus the table's actual
// last entry.
func TestOf(t *testing.T) {
	type row struct {
		codepoint rune
		want      ccc.CCC
	}

	rows := []row{
		{0x0041, 0},     // LATIN CAPITAL LETTER A: plain starter
		{0x0610, 230},   // ARABIC SIGN SALLALLAHOU ALAYHE WASSALLAM: start of an Arabic run
		{0x0651, 33},    // ARABIC SHADDA
		{0x0670, 35},    // ARABIC LETTER SUPERSCRIPT ALEF
		{0x06ED, 220},   // ARABIC SMALL LOW MEEM: end of the Arabic run this table curates
		{0x093C, 7},     // DEVANAGARI SIGN NUKTA
		{0x094D, 9},     // DEVANAGARI SIGN VIRAMA
		{0x0E39, 103},   // THAI CHARACTER SARA UU
		{0x0E4B, 107},   // THAI CHARACTER MAI CHATTAWA
		{0x20D2, 1},     // COMBINING LONG VERTICAL LINE OVERLAY
		{0x20EB, 1},     // COMBINING LONG DOUBLE SOLIDUS OVERLAY
		{0x1E94A, 7},    // ADLAM NUKTA: the curated table's last entry
		{0x1E900, 0},    // ADLAM CAPITAL LETTER ALIF: starter just before that last entry
		{0x1E94B, 0},    // ADLAM GEMINATION MARK: one past the table's last entry
		{0x3042, 0},     // HIRAGANA LETTER A: a script this table does not curate at all
	}

	for i, r := range rows {
		got := ccc.Of(r.codepoint)
		assert.Equal(t, r.want, got, "row %d: Of(%#x)", i, r.codepoint)
	}
}

// TestReorder checks the stable sort-by-CCC flush protocol against runs
// drawn from three different scripts this module's table curates, so the
// assertions aren't pinned to a single combining-mark family.
func TestReorder(t *testing.T) {
	type row struct {
		input  []rune
		output []rune
	}

	rows := []row{
		{
			// Arabic Fatha (ccc 30) before Shadda (ccc 33): already in
			// ascending order, must be left alone.
			[]rune{0x0628, 0x064E, 0x0651},
			[]rune{0x0628, 0x064E, 0x0651},
		},
		{
			// Devanagari Nukta (ccc 7) must sort ahead of Virama (ccc 9),
			// which precedes it on input: 7 before 9.
			[]rune{0x0915, 0x094D, 0x093C},
			[]rune{0x0915, 0x093C, 0x094D},
		},
		{
			// Five equal-CCC overlay marks (ccc 1) around a starter: a
			// stable sort must leave their relative order untouched even
			// though every key compares equal.
			[]rune{0x0041, 0x20D2, 0x20D3, 0x20D8, 0x20D9, 0x20DA, 0x0042},
			[]rune{0x0041, 0x20D2, 0x20D3, 0x20D8, 0x20D9, 0x20DA, 0x0042},
		},
		{
			// Three Arabic marks out of CCC order, mixed with a repeated
			// starter to check the run boundary is re-found correctly
			// after a flush.
			[]rune{0x0628, 0x0651, 0x064E, 0x064B, 0x0629, 0x0670},
			[]rune{0x0628, 0x064B, 0x064E, 0x0651, 0x0629, 0x0670},
		},
	}

	for i, r := range rows {
		t.Run("runes", func(t *testing.T) {
			input := append([]rune(nil), r.input...)
			assert.NoError(t, ccc.ReorderRunes(input))
			assert.Equal(t, r.output, input, "row %d", i)
		})
		t.Run("bytes", func(t *testing.T) {
			input := []byte(string(r.input))
			expected := []byte(string(r.output))
			assert.NoError(t, ccc.Reorder(input))
			assert.Equal(t, expected, input, "row %d", i)
		})
	}
}

// TestReorder_MaliciousInput confirms the ccc.MaxNonStarters bound (the
// spec's "can't DoS Reorder with malicious input" invariant) actually
// trips, and trips in bounded time, for a run just past the limit.
func TestReorder_MaliciousInput(t *testing.T) {
	var b []byte
	b = append(b, []byte(string(rune(0x0628)))...)
	b = append(b, bytes.Repeat([]byte(string(rune(0x064E))), ccc.MaxNonStarters+1)...)
	b = append(b, []byte(string(rune(0x0651)))...)
	runes := []rune(string(b))

	done := make(chan struct{})
	go func() {
		defer close(done)
		byteCopy := append([]byte(nil), b...)
		assert.Equal(t, ccc.ErrMaxNonStarters, ccc.ReorderRunes(runes))
		assert.Equal(t, ccc.ErrMaxNonStarters, ccc.Reorder(b))

		rdr := transform.NewReader(strings.NewReader(string(byteCopy)), ccc.Transformer)
		_, err := io.ReadAll(rdr)
		assert.Equal(t, ccc.ErrMaxNonStarters, err)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Reorder did not complete in time on a run two past MaxNonStarters")
	}
}

// transformTestLengths builds the set of input lengths TestTransform drives
// ccc.Transformer across. It isn't a copied magic-number list: the edges are
// derived from two things this module actually depends on for the
// Transformer path — golang.org/x/text/transform.NewReader's internal read
// buffer (a fixed 4096 bytes, crossed repeatedly by any multi-chunk stream,
// including unorm.Normalizer.Reader which chains through the very same
// transform.Transformer contract) and ccc.MaxNonStarters, the longest
// nonstarter run Transform will sort without returning ErrMaxNonStarters.
// Each edge is tested one below, at, and one above, since off-by-one errors
// at a buffer boundary are exactly where a byte-ranges-spanning-two-reads
// bug would show up.
func transformTestLengths() []int {
	const readBufSize = 4096
	lens := []int{0, 1, 2, 3, 5, 8}
	edges := []int{
		1,
		readBufSize / 8,
		readBufSize / 4,
		readBufSize / 2,
		readBufSize,
		readBufSize + readBufSize/2,
		2 * readBufSize,
		ccc.MaxNonStarters - 1,
		ccc.MaxNonStarters,
	}
	for _, edge := range edges {
		for _, delta := range []int{-1, 0, 1} {
			if n := edge + delta; n > 0 {
				lens = append(lens, n)
			}
		}
	}
	return lens
}

func TestTransform(t *testing.T) {
	type row struct {
		input    func(n int) string
		expected func(n int) string
	}

	// A run of Arabic marks in reverse CCC order (Shadda 33, then Fatha
	// 30) around a base letter, and its canonically ordered form.
	disordered := string([]rune{0x0628, 0x0651, 0x064E})
	ordered := string([]rune{0x0628, 0x064E, 0x0651})
	fraction := string([]rune{'1', 0x2044, '2'}) // already-ordered, no nonstarters at all

	rows := []row{
		{ // plain ASCII: no codepoint in the stream has a nonzero CCC
			func(n int) string { return strings.Repeat("go", n) },
			func(n int) string { return strings.Repeat("go", n) },
		},
		{ // multi-byte starters only (a currency sign), still no reorder
			func(n int) string { return strings.Repeat("£", n) },
			func(n int) string { return strings.Repeat("£", n) },
		},
		{ // a three-codepoint sequence with no nonstarters at all
			func(n int) string { return strings.Repeat(fraction, n) },
			func(n int) string { return strings.Repeat(fraction, n) },
		},
		{ // repeated disordered runs must each be reordered independently
			func(n int) string { return strings.Repeat(disordered, n) + "x" },
			func(n int) string { return strings.Repeat(ordered, n) + "x" },
		},
		{ // the same, with no trailing starter to force a final flush
			func(n int) string { return strings.Repeat(disordered, n) },
			func(n int) string { return strings.Repeat(ordered, n) },
		},
	}

	lens := transformTestLengths()
	for j, r := range rows {
		for _, n := range lens {
			input := r.input(n)
			expected := r.expected(n)

			rdr := transform.NewReader(strings.NewReader(input), ccc.Transformer)
			result, err := io.ReadAll(rdr)

			if !assert.NoError(t, err, "row %d, n=%d", j, n) {
				continue
			}
			assert.Equal(t, expected, string(result), "row %d, n=%d", j, n)
		}
	}
}
