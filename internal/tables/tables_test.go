package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-nfd/unorm/internal/desc"
	"github.com/go-nfd/unorm/internal/tables"
)

func TestLookupAboveLastDecomposingIsZero(t *testing.T) {
	assert.Equal(t, desc.Word(0), tables.NFD.Lookup(tables.LastDecomposingCodepoint+1))
	assert.Equal(t, desc.Word(0), tables.NFD.Lookup(0x10FFFF))
}

func TestLookupContinuousRegion(t *testing.T) {
	// U+00E9 (e-acute) is within the continuous prefix both tables share
	// and has a canonical Pair decomposition.
	d := tables.NFD.Decode(0x00E9)
	assert.Equal(t, desc.MarkerPair, d.Marker)
	assert.Equal(t, rune(0x0065), d.C1)
	assert.Equal(t, rune(0x0301), d.C2)
}

func TestLookupPagedRegion(t *testing.T) {
	// U+FB01 (fi ligature) lives above continuousBlockEnd, so this
	// exercises the index/data page indirection.
	assert.Equal(t, desc.MarkerNone, tables.NFD.Decode(0xFB01).Marker)
	assert.Equal(t, desc.MarkerPair, tables.NFKD.Decode(0xFB01).Marker)
}

func TestLookupHangulBlock(t *testing.T) {
	assert.Equal(t, desc.MarkerHangul, tables.NFD.Decode(0xAC00).Marker)
	assert.Equal(t, desc.MarkerHangul, tables.NFD.Decode(0xD7A3).Marker)
	assert.Equal(t, desc.MarkerNone, tables.NFD.Decode(0xD7A4).Marker)
}

func TestNFKDIsSupersetOfNFD(t *testing.T) {
	// Every scalar NFD decomposes, NFKD must decompose identically (NFKD
	// is built by layering compatibility mappings on top of the same
	// canonical set).
	for scalar := rune(0); scalar <= tables.LastDecomposingCodepoint; scalar += 101 {
		nfdWord := tables.NFD.Lookup(scalar)
		if nfdWord == 0 {
			continue
		}
		assert.Equal(t, tables.NFD.Decode(scalar), tables.NFKD.Decode(scalar), "scalar %#x", scalar)
	}
}

func TestExpansionSlice(t *testing.T) {
	// U+FB03 (ffi ligature, compatibility-only) decomposes to 3 scalars.
	d := tables.NFKD.Decode(0xFB03)
	assert.Equal(t, desc.MarkerExpansion, d.Marker)
	assert.Equal(t, 3, d.Count)
	cps := tables.NFKD.Expansion(d.Index, d.Count)
	assert.Len(t, cps, 3)
	assert.Equal(t, []rune{0x0066, 0x0066, 0x0069}, []rune{cps[0].Code(), cps[1].Code(), cps[2].Code()})
}
