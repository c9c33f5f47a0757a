package tables

import (
	"github.com/go-nfd/unorm/ccc"
	"github.com/go-nfd/unorm/internal/codepoint"
	"github.com/go-nfd/unorm/internal/desc"
	"github.com/go-nfd/unorm/internal/hangul"
)

// builder accumulates sparse (scalar -> descriptor word) assignments and
// bakes them into a Table. It plays the role the specification assigns to
// an offline generator (section 6, "produced by the offline generator from
// UnicodeData.txt"); this module's generator input is the curated entry
// lists in nfd_data.go/nfkd_data.go rather than a parsed UnicodeData.txt,
// since parsing that file is explicitly out of this spec's scope.
type builder struct {
	words      map[rune]desc.Word
	expansions []codepoint.Codepoint
}

func newBuilder() *builder {
	return &builder{words: make(map[rune]desc.Word)}
}

func (b *builder) nonstarter(cp rune, c uint8) {
	b.words[cp] = desc.EncodeNonstarter(c)
}

func (b *builder) singleton(cp, target rune) {
	b.words[cp] = desc.EncodeSingleton(target)
}

func (b *builder) pair(cp, c1, c2 rune) {
	if c1 <= desc.PairMaxScalar && c2 <= desc.PairMaxScalar {
		b.words[cp] = desc.EncodePair(c1, c2)
		return
	}
	b.expansion(cp, c1, c2)
}

func (b *builder) triple(cp, c1, c2, c3 rune) {
	b.expansion(cp, c1, c2, c3)
}

// decompose assigns cp's decomposition to scalars, picking the narrowest
// descriptor that fits: Singleton for one scalar, Pair (or Expansion, for
// components too large to pack inline) for two, Expansion for three or
// more. Callers with a variable-length decomposition (e.g. a table of
// Roman numerals spelled with one to four Latin letters) should use this
// instead of calling expansion/pair/singleton directly, since the
// shortest entries may not have 2+ scalars.
func (b *builder) decompose(cp rune, scalars ...rune) {
	switch len(scalars) {
	case 0:
		panic("tables: decompose requires at least one scalar")
	case 1:
		b.singleton(cp, scalars[0])
	case 2:
		b.pair(cp, scalars[0], scalars[1])
	default:
		b.expansion(cp, scalars...)
	}
}

func (b *builder) expansion(cp rune, scalars ...rune) {
	index := len(b.expansions)
	for _, s := range scalars {
		b.expansions = append(b.expansions, codepoint.Pack(s, uint8(ccc.Of(s))))
	}
	b.words[cp] = desc.EncodeExpansion(index, len(scalars))
}

// addNonstarterRanges marks every scalar covered by ccc's own curated
// combining-class ranges (up to LastDecomposingCodepoint) as a Nonstarter,
// unless that scalar already has a decomposition assigned. This must run
// before build() packs pages, so the fast-forward phase can never mistake
// a lone combining mark for already-normalized, zero-word text (spec
// section 4.4).
func (b *builder) addNonstarterRanges() {
	for _, r := range ccc.Ranges() {
		hi := r.Hi
		if hi > LastDecomposingCodepoint {
			hi = LastDecomposingCodepoint
		}
		for cp := r.Lo; cp <= hi; cp++ {
			if _, exists := b.words[cp]; exists {
				continue
			}
			b.nonstarter(cp, uint8(r.CCC))
		}
	}
}

func (b *builder) build(continuousBlockEnd rune) *Table {
	continuous := make([]desc.Word, continuousBlockEnd+1)
	for cp, w := range b.words {
		if cp <= continuousBlockEnd {
			continuous[cp] = w
		}
	}

	firstPagedPage := int(continuousBlockEnd+1) >> pageShift
	lastPage := LastDecomposingCodepoint >> pageShift

	// Block 0 is always the canonical all-None block.
	data := make([]desc.Word, pageSize)
	blockOf := make(map[[pageSize]desc.Word]uint16)
	var zeroBlock [pageSize]desc.Word
	blockOf[zeroBlock] = 0

	index := make([]uint16, lastPage-firstPagedPage+1)

	for page := firstPagedPage; page <= lastPage; page++ {
		base := rune(page) << pageShift
		var block [pageSize]desc.Word
		dirty := false

		for off := 0; off < pageSize; off++ {
			cp := base + rune(off)
			if hangul.IsSyllable(cp) {
				block[off] = desc.EncodeHangul()
				dirty = true
			}
			if w, ok := b.words[cp]; ok {
				block[off] = w
				dirty = true
			}
		}

		if !dirty {
			index[page-firstPagedPage] = 0
			continue
		}
		if bn, ok := blockOf[block]; ok {
			index[page-firstPagedPage] = bn
			continue
		}
		bn := uint16(len(data) / pageSize)
		data = append(data, block[:]...)
		blockOf[block] = bn
		index[page-firstPagedPage] = bn
	}

	return &Table{
		continuous:         continuous,
		data:               data,
		index:              index,
		expansions:         b.expansions,
		continuousBlockEnd: continuousBlockEnd,
		firstPagedPage:     firstPagedPage,
	}
}
