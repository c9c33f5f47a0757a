// Package hangul implements the algorithmic decomposition of precomposed
// Hangul syllables into their Leading/Vowel/Trailing jamo, per spec
// section 4.3. Hangul syllables are never stored in the decomposition
// tables; their decomposition is always computed.
package hangul

// Jamo base scalars and syllable counts, per Unicode Standard Annex #15
// section 16. Naming follows the L/V/T/S convention used throughout the
// Unicode Hangul algorithm (and this repo's other Hangul-aware neighbor,
// OpenType shaping code, which uses the same base/count constants for the
// composing direction).
const (
	SBase = 0xAC00
	LBase = 0x1100
	VBase = 0x1161
	TBase = 0x11A7

	LCount = 19
	VCount = 21
	TCount = 28 // includes the "no trailing jamo" slot at TBase

	NCount = VCount * TCount  // 588
	SCount = LCount * NCount  // 11172
	SEnd   = SBase + SCount   // 0xD7A4, one past the last syllable
)

// IsSyllable reports whether s is a precomposed Hangul syllable.
func IsSyllable(s rune) bool {
	return s >= SBase && s < SEnd
}

// Decompose splits a precomposed Hangul syllable s into its jamo. It
// returns 2 scalars (L, V) when the syllable has no trailing jamo, or 3
// (L, V, T) otherwise. All returned jamo are starters (CCC 0). Decompose
// panics if s is not a valid Hangul syllable; callers must check
// IsSyllable (or route through a table lookup that already guarantees it)
// first.
func Decompose(s rune) (l, v, t rune, hasT bool) {
	if !IsSyllable(s) {
		panic("hangul: not a precomposed syllable")
	}
	sIndex := s - SBase
	l = LBase + sIndex/NCount
	v = VBase + (sIndex%NCount)/TCount
	tIndex := sIndex % TCount
	if tIndex == 0 {
		return l, v, 0, false
	}
	t = TBase + tIndex
	return l, v, t, true
}
