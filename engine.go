package unorm

import (
	"sort"

	"github.com/go-nfd/unorm/ccc"
	"github.com/go-nfd/unorm/internal/codepoint"
	"github.com/go-nfd/unorm/internal/desc"
	"github.com/go-nfd/unorm/internal/hangul"
	"github.com/go-nfd/unorm/internal/ksutil"
)

// reorderReserve is the initial capacity given to a reorder buffer. It
// borrows ccc.MaxNonStarters rather than inventing its own constant: a run
// longer than that is exactly the pathological case ccc's own DoS bound
// guards against, so it is also the natural point past which growing the
// buffer is no longer "the common case".
const reorderReserve = ccc.MaxNonStarters

// decodeUTF8 decodes the scalar at b[i], returning it and its width in
// bytes. b is assumed well-formed UTF-8 starting at i; no bounds or
// continuation-byte validation is performed (spec section 4.5 - the
// normalizer's precondition is that its input already is).
func decodeUTF8(b []byte, i int) (rune, int) {
	first := b[i]
	switch {
	case first < 0x80:
		return rune(first), 1
	case first < 0xE0:
		return rune(first&0x1F)<<6 | rune(b[i+1]&0x3F), 2
	case first < 0xF0:
		return rune(first&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F), 3
	default:
		return rune(first&0x07)<<18 | rune(b[i+1]&0x3F)<<12 | rune(b[i+2]&0x3F)<<6 | rune(b[i+3]&0x3F), 4
	}
}

// cursor is the unchecked UTF-8 byte cursor the fast-forward loop advances
// (spec section 4.5). It exposes exactly the four named operations the
// spec requires of a reader: setBreakpoint, blockSlice, endingSlice and
// atBreakpoint, plus the raw decode/skip primitives the loop drives them
// with. Unlike text/runeio.Reader, which this is grounded on for shape,
// it never validates, never pushes back and never returns an error: the
// well-formed-input precondition makes all of that unnecessary.
type cursor struct {
	b          []byte
	pos        int
	breakpoint int
}

func (c *cursor) done() bool { return c.pos >= len(c.b) }

func (c *cursor) leadByte() byte { return c.b[c.pos] }

// decode reads the scalar at the cursor and advances past it.
func (c *cursor) decode() (rune, int) {
	r, width := decodeUTF8(c.b, c.pos)
	c.pos += width
	return r, width
}

// skip advances over a single byte known not to start a scalar requiring
// decomposition (the blind ASCII/continuation-byte fast path).
func (c *cursor) skip() { c.pos++ }

func (c *cursor) setBreakpoint() { c.breakpoint = c.pos }

func (c *cursor) atBreakpoint() bool { return c.pos == c.breakpoint }

// blockSlice returns the bytes from the breakpoint up to the start of the
// scalar of the given width most recently consumed by decode.
func (c *cursor) blockSlice(scalarWidth int) []byte {
	return c.b[c.breakpoint : c.pos-scalarWidth]
}

// endingSlice returns every byte from the breakpoint to the end of input.
func (c *cursor) endingSlice() []byte {
	return c.b[c.breakpoint:]
}

// flushBuf implements the flush protocol (spec section 4.4): empty is a
// no-op, a single element is emitted as-is, otherwise the buffer is
// stably sorted by CCC - the Canonical Ordering Algorithm - and emitted
// in order. buf is cleared in place.
//
// This reimplements the same stable-sort-by-CCC idea as ccc.Reorder rather
// than calling it: ccc.Reorder exists to bound a standalone pass over
// arbitrary/untrusted text (hence ErrMaxNonStarters), but the normalizer
// core has no error path at all (spec section 7) - a long nonstarter run
// here just grows buf, it is never refused.
func flushBuf(buf *[]codepoint.Codepoint, emit func(rune)) {
	switch len(*buf) {
	case 0:
		return
	case 1:
		emit((*buf)[0].Code())
	default:
		sort.SliceStable(*buf, func(i, j int) bool {
			return (*buf)[i].CCC() < (*buf)[j].CCC()
		})
		for _, cp := range *buf {
			emit(cp.Code())
		}
	}
	*buf = (*buf)[:0]
}

// quickCheckClean reports whether input never leaves the fast-forward
// phase (spec section 4.4/4.5): every scalar either falls under
// ffThreshold or looks up to a zero word, meaning none of them would ever
// trigger dispatch. That is a cheaper question than "is input normalized"
// in general - it never allocates and never runs the reorder buffer - but
// it is also a strictly conservative one: a scalar that does trigger
// dispatch does not necessarily leave the text non-normal (a lone
// nonstarter already in canonical order normalizes to itself), so
// quickCheckClean returning false only means the answer isn't free, not
// that input is disordered.
func (n *Normalizer) quickCheckClean(input []byte) bool {
	c := &cursor{b: input}
	for !c.done() {
		if c.leadByte() < n.ffThreshold {
			c.skip()
			continue
		}
		r, _ := c.decode()
		if n.table.Lookup(r) != 0 {
			return false
		}
	}
	return true
}

// dispatch applies the decomposition descriptor for word (the scalar r
// looked up to it) per spec section 4.4. It is shared between the
// byte-producing and codepoint-producing entry points: both supply their
// own emit/flush closures over their own output buffer, so the dispatch
// logic itself - the one place the decomposition rules live - is written
// once.
func (n *Normalizer) dispatch(buf *[]codepoint.Codepoint, emit func(rune), flush func(), r rune, word desc.Word) {
	d := desc.Decode(word)
	switch d.Marker {
	case desc.MarkerNonstarter:
		*buf = append(*buf, codepoint.Pack(r, d.CCC))
	case desc.MarkerSingleton:
		flush()
		emit(d.C1)
	case desc.MarkerPair:
		flush()
		emit(d.C1)
		if c2ccc := ccc.Of(d.C2); c2ccc == 0 {
			emit(d.C2)
		} else {
			*buf = append(*buf, codepoint.Pack(d.C2, uint8(c2ccc)))
		}
	case desc.MarkerExpansion:
		*buf = ksutil.Reserve(*buf, d.Count)
		for _, cp := range n.table.Expansion(d.Index, d.Count) {
			if cp.IsStarter() {
				flush()
				emit(cp.Code())
			} else {
				*buf = append(*buf, cp)
			}
		}
	case desc.MarkerHangul:
		flush()
		l, v, t, hasT := hangul.Decompose(r)
		emit(l)
		emit(v)
		if hasT {
			emit(t)
		}
	default:
		ksutil.Never("unorm: dispatch on marker %d", d.Marker)
	}
}
