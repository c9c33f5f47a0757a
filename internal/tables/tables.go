// Package tables implements the baked decomposition lookup table described
// in spec section 3 (data model) and the three-branch lookup of section
// 4.2: a continuous prefix indexed directly by scalar value, a paged
// region for everything above it up to the last decomposing codepoint, and
// an implicit "no decomposition" answer for everything beyond that.
package tables

import "github.com/go-nfd/unorm/internal/desc"
import "github.com/go-nfd/unorm/internal/codepoint"

// LastDecomposingCodepoint is the highest scalar value that can have a
// non-None descriptor. Every scalar above it is a starter with no
// decomposition, and Lookup returns 0 for it without touching memory.
const LastDecomposingCodepoint = 0x2FA1D

const pageShift = 7
const pageSize = 1 << pageShift // 128

// continuousBlockEnd is shared by both baked tables: the Basic Latin,
// Latin-1 Supplement, Latin Extended-A/B, IPA Extensions, Spacing
// Modifiers, Combining Diacritical Marks, Greek and Cyrillic blocks all
// fall within it, so the hottest range for real-world text needs no
// indirection (spec section 9, "Continuous prefix").
const continuousBlockEnd rune = 0x04FF

// Table is one baked table (NFD or NFKD). It is immutable after
// construction and safe for concurrent use by multiple normalizers.
type Table struct {
	// continuous holds descriptor words for scalars [0, continuousBlockEnd]
	// indexed directly by scalar value.
	continuous []desc.Word

	// data holds fixed-size (pageSize-word) blocks for the paged region.
	// Block 0 is the canonical all-None block; multiple pages may share it.
	data []desc.Word

	// index maps a page number (scalar>>pageShift, relative to the first
	// paged page) to a block number within data.
	index []uint16

	// expansions is the out-of-line storage for Expansion descriptors.
	expansions []codepoint.Codepoint

	continuousBlockEnd rune
	firstPagedPage      int
}

// Lookup returns the raw descriptor word for scalar, per spec section 4.2.
func (t *Table) Lookup(scalar rune) desc.Word {
	if scalar > LastDecomposingCodepoint {
		return 0
	}
	if scalar <= t.continuousBlockEnd {
		return t.continuous[scalar]
	}
	page := int(scalar >> pageShift)
	offset := int(scalar) & (pageSize - 1)
	block := t.index[page-t.firstPagedPage]
	return t.data[int(block)*pageSize+offset]
}

// Decode is a convenience wrapper combining Lookup and desc.Decode.
func (t *Table) Decode(scalar rune) desc.Descriptor {
	return desc.Decode(t.Lookup(scalar))
}

// Expansion returns the count packed codepoints for an Expansion
// descriptor's (index, count) pair.
func (t *Table) Expansion(index, count int) []codepoint.Codepoint {
	return t.expansions[index : index+count]
}

// ContinuousBlockEnd returns the highest scalar addressed directly.
func (t *Table) ContinuousBlockEnd() rune {
	return t.continuousBlockEnd
}
