// Package desc implements the decomposition descriptor: the tagged value
// a table word decodes into, and the decode/encode routines used both by
// the normalizer core and by the curated table data files.
//
// This module uses a 32-bit descriptor word rather than the 64-bit
// reference design discussed in the specification's design notes, folding
// the optional inline Triple variant into Expansion. See SPEC_FULL.md
// section 13 for the trade-off.
package desc

import "github.com/go-nfd/unorm/internal/ksutil"

// Word is a single entry in a table's data array.
type Word uint32

// Marker identifies which decomposition descriptor variant a Word encodes.
type Marker uint8

const (
	MarkerNone       Marker = 0 // starter, no decomposition
	MarkerNonstarter Marker = 1 // no decomposition, but itself a nonstarter
	MarkerSingleton  Marker = 2 // decomposes to exactly one (different) starter
	MarkerPair       Marker = 3 // decomposes to exactly two scalars
	MarkerExpansion  Marker = 4 // decomposes to 2+ scalars stored out of line
	MarkerHangul     Marker = 5 // precomposed Hangul syllable
)

const (
	markerBits = 3
	markerMask = Word(1)<<markerBits - 1

	nonstarterCCCShift = markerBits
	nonstarterCCCBits  = 8

	singletonShift = markerBits
	singletonBits  = 21

	pairShift = markerBits
	pairBits  = 13 // each of c1, c2; see SPEC_FULL.md section 13

	expansionCountShift = markerBits
	expansionCountBits  = 8
	expansionIndexShift = expansionCountShift + expansionCountBits
	expansionIndexBits  = 21

	// PairMaxScalar is the largest scalar value that can be packed inline
	// into a Pair descriptor. Decompositions with a component above this
	// value must use Expansion instead.
	PairMaxScalar = rune(1)<<pairBits - 1
)

// Descriptor is the decoded, tagged form of a table Word.
type Descriptor struct {
	Marker Marker
	CCC    uint8 // MarkerNonstarter
	C1, C2 rune  // MarkerSingleton (C1 only), MarkerPair
	Index  int   // MarkerExpansion: offset into the expansions table
	Count  int   // MarkerExpansion: number of codepoints, always >= 2
}

// None is the zero descriptor: a starter with no decomposition.
var None = Descriptor{Marker: MarkerNone}

// EncodeNone returns the canonical "no decomposition" word. It is always
// the zero word, so that the hot path can treat a raw table word as a
// decomposable? predicate with a single compare.
func EncodeNone() Word {
	return 0
}

// EncodeNonstarter packs a Nonstarter descriptor.
func EncodeNonstarter(ccc uint8) Word {
	return Word(MarkerNonstarter) | Word(ccc)<<nonstarterCCCShift
}

// EncodeSingleton packs a Singleton descriptor.
func EncodeSingleton(target rune) Word {
	if target < 0 || target > (1<<singletonBits-1) {
		panic("desc: singleton target out of range")
	}
	return Word(MarkerSingleton) | Word(target)<<singletonShift
}

// EncodePair packs a Pair descriptor. Both c1 and c2 must be <= PairMaxScalar;
// callers needing a larger component must use EncodeExpansion instead.
func EncodePair(c1, c2 rune) Word {
	if c1 < 0 || c1 > PairMaxScalar || c2 < 0 || c2 > PairMaxScalar {
		panic("desc: pair component out of range, use expansion")
	}
	return Word(MarkerPair) | Word(c1)<<pairShift | Word(c2)<<(pairShift+pairBits)
}

// EncodeExpansion packs an Expansion descriptor referencing count codepoints
// starting at index in the expansions table. count must be >= 2.
func EncodeExpansion(index, count int) Word {
	if count < 2 {
		panic("desc: expansion count must be >= 2")
	}
	if index < 0 || index > (1<<expansionIndexBits-1) {
		panic("desc: expansion index out of range")
	}
	if count > (1<<expansionCountBits - 1) {
		panic("desc: expansion count out of range")
	}
	return Word(MarkerExpansion) |
		Word(count)<<expansionCountShift |
		Word(index)<<expansionIndexShift
}

// EncodeHangul packs the Hangul marker-only descriptor.
func EncodeHangul() Word {
	return Word(MarkerHangul)
}

// Decode is total over every word produced by Encode*. An unrecognized
// marker means the baked table is corrupt, which is a build-time bug, not
// a runtime condition (spec section 4.1): Decode panics via ksutil.Never.
func Decode(w Word) Descriptor {
	m := Marker(w & markerMask)
	switch m {
	case MarkerNone:
		return None
	case MarkerNonstarter:
		return Descriptor{
			Marker: MarkerNonstarter,
			CCC:    uint8(w >> nonstarterCCCShift),
		}
	case MarkerSingleton:
		return Descriptor{
			Marker: MarkerSingleton,
			C1:     rune((w >> singletonShift) & (1<<singletonBits - 1)),
		}
	case MarkerPair:
		c1 := rune((w >> pairShift) & (1<<pairBits - 1))
		c2 := rune((w >> (pairShift + pairBits)) & (1<<pairBits - 1))
		return Descriptor{Marker: MarkerPair, C1: c1, C2: c2}
	case MarkerExpansion:
		count := int((w >> expansionCountShift) & (1<<expansionCountBits - 1))
		index := int((w >> expansionIndexShift) & (1<<expansionIndexBits - 1))
		return Descriptor{Marker: MarkerExpansion, Index: index, Count: count}
	case MarkerHangul:
		return Descriptor{Marker: MarkerHangul}
	default:
		ksutil.Never("desc: unknown marker %d in table word %#x", m, w)
		return Descriptor{}
	}
}
