// Package unorm implements Unicode canonical (NFD) and compatibility
// (NFKD) decomposing normalization of well-formed UTF-8 text, per
// Unicode Standard Annex #15.
//
// Construct a Normalizer with NewNFD or NewNFKD and reuse it: it is
// immutable after construction and safe for concurrent use.
package unorm

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/go-nfd/unorm/internal/codepoint"
	"github.com/go-nfd/unorm/internal/tables"
)

// Normalizer decomposes text into one Unicode normal form. It borrows its
// table from a process-lifetime baked instance (internal/tables) and
// holds no other state, so a single value may be shared freely.
type Normalizer struct {
	table       *tables.Table
	ffThreshold byte
}

// NewNFD returns a Normalizer that performs canonical decomposition.
func NewNFD() *Normalizer {
	return &Normalizer{table: tables.NFD, ffThreshold: 0xC3}
}

// NewNFKD returns a Normalizer that performs compatibility decomposition.
func NewNFKD() *Normalizer {
	return &Normalizer{table: tables.NFKD, ffThreshold: 0xC2}
}

// Normalize returns the normal form of input, which must be well-formed
// UTF-8. The returned slice is freshly allocated; input is never modified.
func (n *Normalizer) Normalize(input []byte) []byte {
	out := make([]byte, 0, len(input))
	buf := make([]codepoint.Codepoint, 0, reorderReserve)
	emit := func(r rune) { out = utf8.AppendRune(out, r) }
	flush := func() { flushBuf(&buf, emit) }

	c := &cursor{b: input}
	for !c.done() {
		if len(buf) == 0 {
			// Fast-forward phase: engaged only while the reorder buffer
			// is empty, so the breakpoint set here is always the point
			// a verbatim copy can safely resume from.
			c.setBreakpoint()
			for !c.done() {
				if c.leadByte() < n.ffThreshold {
					c.skip()
					continue
				}
				r, width := c.decode()
				word := n.table.Lookup(r)
				if word == 0 {
					continue
				}
				if !c.atBreakpoint() {
					out = append(out, c.blockSlice(width)...)
				}
				n.dispatch(&buf, emit, flush, r, word)
				c.setBreakpoint()
				break
			}
			continue
		}

		// The reorder buffer is non-empty: a blind byte-value skip could
		// step over a starter that must first flush it, so every scalar
		// is decoded and dispatched individually until the buffer drains.
		r, width := c.decode()
		word := n.table.Lookup(r)
		if word == 0 {
			flush()
			out = append(out, c.b[c.pos-width:c.pos]...)
		} else {
			n.dispatch(&buf, emit, flush, r, word)
		}
		c.setBreakpoint()
	}

	flush()
	out = append(out, c.endingSlice()...)
	return out
}

// NormalizeString is Normalize for a string argument and result.
func (n *Normalizer) NormalizeString(s string) string {
	return string(n.Normalize([]byte(s)))
}

// NormalizeCodepoints is a parallel entry point sharing the same
// dispatch logic as Normalize, returning scalar values directly instead
// of re-encoding them as UTF-8 (spec section 9's open question, resolved
// in favor of building it: callers that immediately re-process the
// result as runes skip a decode/encode round trip). It does not apply
// the byte-level fast-forward optimization, since there is no verbatim
// byte run to copy when the output is runes rather than bytes.
func (n *Normalizer) NormalizeCodepoints(input []byte) []rune {
	out := make([]rune, 0, len(input))
	buf := make([]codepoint.Codepoint, 0, reorderReserve)
	emit := func(r rune) { out = append(out, r) }
	flush := func() { flushBuf(&buf, emit) }

	i := 0
	for i < len(input) {
		r, width := decodeUTF8(input, i)
		i += width
		word := n.table.Lookup(r)
		if word == 0 {
			flush()
			emit(r)
			continue
		}
		n.dispatch(&buf, emit, flush, r, word)
	}
	flush()
	return out
}

// IsNormalized reports whether input is already in this Normalizer's
// form, i.e. whether Normalize(input) would return input unchanged. The
// common case is answered by the fast-forward quick-check alone (spec
// section 4.4): if fast-forward never leaves the phase, input cannot
// contain anything Normalize would rewrite. Only when it does leave the
// phase does IsNormalized fall back to a full Normalize and compare,
// since leaving the phase is a necessary but not sufficient condition
// for input being disordered.
func (n *Normalizer) IsNormalized(input []byte) bool {
	if n.quickCheckClean(input) {
		return true
	}
	return bytes.Equal(n.Normalize(input), input)
}

// IsNormalizedString is IsNormalized for a string argument.
func (n *Normalizer) IsNormalizedString(s string) bool {
	return n.IsNormalized([]byte(s))
}

// Transformer returns a transform.Transformer that normalizes its input.
// Per this module's non-goal of streaming over chunked input, it requires
// the full input before producing any output (it consumes and buffers
// every chunk of src until atEOF), then drains its result to dst
// across as many calls as dst's capacity requires. It is stateful and
// must not be shared between concurrent uses; call Transformer again for
// each new stream.
func (n *Normalizer) Transformer() transform.Transformer {
	return &streamTransformer{n: n}
}

// Reader wraps r so reads from it return normalized text.
func (n *Normalizer) Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, n.Transformer())
}

// Writer wraps w so writes to it are normalized before being written on.
func (n *Normalizer) Writer(w io.Writer) io.Writer {
	return transform.NewWriter(w, n.Transformer())
}

type streamTransformer struct {
	n    *Normalizer
	done bool
	out  []byte
	pos  int
}

func (t *streamTransformer) Reset() {
	t.done = false
	t.out = nil
	t.pos = 0
}

func (t *streamTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.done {
		// Until atEOF, t.out accumulates the raw input consumed so far.
		t.out = append(t.out, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, nil
		}
		t.out = t.n.Normalize(t.out)
		t.done = true
	}

	nDst = copy(dst, t.out[t.pos:])
	t.pos += nDst
	if t.pos < len(t.out) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}
