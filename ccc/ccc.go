// Package ccc provides the Canonical Combining Class of a Unicode code
// point and the stable reordering ("Canonical Ordering Algorithm", see
// Unicode Standard Annex #15) that keeps runs of nonstarters in a fixed,
// deterministic order.
//
// This is the same reordering step the normalizer core applies to its own
// decomposition output, exposed standalone so it can also be applied to
// text that is already decomposed but not yet canonically ordered.
package ccc

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// CCC is a Canonical Combining Class in [0, 254]. CCC 0 denotes a starter.
type CCC uint8

// MaxNonStarters bounds the length of a single run of consecutive
// nonstarters that Reorder, ReorderRunes and Transformer will sort. Text
// with a longer run of combining marks between starters is pathological
// (real text very rarely has more than a handful); bounding the run keeps
// sorting it from being usable as a denial-of-service vector.
const MaxNonStarters = 32

// ErrMaxNonStarters is returned when a run of consecutive nonstarters
// exceeds MaxNonStarters.
var ErrMaxNonStarters = errors.New("ccc: run of non-starter code points exceeds maximum")

// Of returns the Canonical Combining Class of r. A result of 0 means r is
// a starter (or is simply not a combining character at all).
func Of(r rune) CCC {
	n := len(cccRanges)
	i := sort.Search(n, func(i int) bool {
		return r <= cccRanges[i].hi
	})
	if i == n || r < cccRanges[i].lo {
		return 0
	}
	return cccRanges[i].ccc
}

type nsItem struct {
	pos, size int
	ccc       CCC
}

// Reorder stably sorts, in place, every maximal run of consecutive
// nonstarters in b by CCC. b must be well-formed UTF-8.
func Reorder(b []byte) error {
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if Of(r) == 0 {
			i += size
			continue
		}

		var run []nsItem
		p := i
		for p < len(b) {
			r2, size2 := utf8.DecodeRune(b[p:])
			if Of(r2) == 0 {
				break
			}
			run = append(run, nsItem{p, size2, Of(r2)})
			if len(run) > MaxNonStarters {
				return ErrMaxNonStarters
			}
			p += size2
		}
		if len(run) > 1 {
			sortRunStable(b, run)
		}
		i = p
	}
	return nil
}

// sortRunStable stably reorders the bytes of a nonstarter run in place by
// CCC, copying each piece out first since the pieces may be different
// lengths and overlap their own destination once reordered.
func sortRunStable(b []byte, run []nsItem) {
	type piece struct {
		bytes []byte
		ccc   CCC
	}
	pieces := make([]piece, len(run))
	for i, it := range run {
		bs := make([]byte, it.size)
		copy(bs, b[it.pos:it.pos+it.size])
		pieces[i] = piece{bs, it.ccc}
	}
	sort.SliceStable(pieces, func(i, j int) bool { return pieces[i].ccc < pieces[j].ccc })
	p := run[0].pos
	for _, pc := range pieces {
		copy(b[p:], pc.bytes)
		p += len(pc.bytes)
	}
}

// writeRunSorted writes the nonstarter run described by run (positions into
// src) to dst in CCC-sorted order, without mutating src: Transform's src is
// caller-owned and must not be written to.
func writeRunSorted(dst []byte, src []byte, run []nsItem) {
	type piece struct {
		bytes []byte
		ccc   CCC
	}
	pieces := make([]piece, len(run))
	for i, it := range run {
		pieces[i] = piece{src[it.pos : it.pos+it.size], it.ccc}
	}
	sort.SliceStable(pieces, func(i, j int) bool { return pieces[i].ccc < pieces[j].ccc })
	p := 0
	for _, pc := range pieces {
		p += copy(dst[p:], pc.bytes)
	}
}

// ReorderRunes stably sorts, in place, every maximal run of consecutive
// nonstarters in xs by CCC.
func ReorderRunes(xs []rune) error {
	i := 0
	for i < len(xs) {
		if Of(xs[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(xs) && Of(xs[j]) != 0 {
			j++
			if j-i > MaxNonStarters {
				return ErrMaxNonStarters
			}
		}
		if j-i > 1 {
			run := xs[i:j]
			sort.SliceStable(run, func(a, c int) bool { return Of(run[a]) < Of(run[c]) })
		}
		i = j
	}
	return nil
}

// Transformer applies the canonical ordering reorder across a byte stream.
// It is stateless and safe for concurrent use.
var Transformer transform.Transformer = reorderTransformer{}

type reorderTransformer struct{}

func (reorderTransformer) Reset() {}

func (reorderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, sz := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && sz <= 1 {
			if sz == 0 {
				if atEOF {
					return nDst, nSrc, nil
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, fmt.Errorf("ccc: invalid utf8 sequence")
		}

		if Of(r) == 0 {
			if cap(dst)-nDst < sz {
				return nDst, nSrc, transform.ErrShortDst
			}
			copy(dst[nDst:], src[nSrc:nSrc+sz])
			nDst += sz
			nSrc += sz
			continue
		}

		// nSrc starts a run of nonstarters.
		var run []nsItem
		q := nSrc
		for {
			if q >= len(src) {
				if atEOF {
					break
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			r2, sz2 := utf8.DecodeRune(src[q:])
			if r2 == utf8.RuneError && sz2 <= 1 {
				if sz2 == 0 {
					if atEOF {
						break
					}
					return nDst, nSrc, transform.ErrShortSrc
				}
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				break
			}
			if Of(r2) == 0 {
				break
			}
			run = append(run, nsItem{q, sz2, Of(r2)})
			if len(run) > MaxNonStarters {
				return nDst, nSrc, ErrMaxNonStarters
			}
			q += sz2
		}

		need := q - nSrc
		if cap(dst)-nDst < need {
			return nDst, nSrc, transform.ErrShortDst
		}
		if len(run) > 1 {
			writeRunSorted(dst[nDst:], src, run)
		} else {
			copy(dst[nDst:], src[nSrc:q])
		}
		nDst += need
		nSrc = q
	}
	return nDst, nSrc, nil
}
