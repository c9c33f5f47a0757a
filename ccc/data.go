package ccc

// cccRange assigns a Canonical Combining Class to every codepoint in
// [lo, hi]. Ranges are sorted by lo and never overlap.
//
// This is a curated subset of the Unicode Character Database's CCC field,
// covering the combining mark blocks of the scripts this module's
// decomposition tables also cover (see internal/tables's coverage note in
// DESIGN.md): Latin/Greek/Cyrillic combining diacritics, Hebrew points,
// Arabic harakat, Thai and Lao vowel/tone marks, Devanagari nukta and
// virama, Combining Diacritical Marks for Symbols, and a representative
// sample of supplementary blocks (Adlam). A codepoint not covered by any
// range here, and not covered by an entry in the decomposition tables, is
// correctly reported as CCC 0 (a starter) — that is always a safe default
// for a codepoint this curated set does not know about.
var cccRanges = []cccRange{
	{0x0300, 0x0314, 230}, // Combining Grave Accent .. Combining Double Grave Accent-ish range, Above
	{0x0315, 0x0315, 232}, // Combining Comma Above Right, Above Right
	{0x0316, 0x0319, 220}, // Combining Grave/Acute Accent Below, Below
	{0x031A, 0x031A, 232},
	{0x031B, 0x031B, 216},
	{0x031C, 0x0320, 220},
	{0x0321, 0x0322, 202},
	{0x0323, 0x0326, 220},
	{0x0327, 0x0328, 202},
	{0x0329, 0x0333, 220},
	{0x0334, 0x0334, 1}, // Combining Tilde Overlay, Overlay
	{0x0335, 0x0338, 1},
	{0x0339, 0x033C, 220},
	{0x033D, 0x0344, 230},
	{0x0345, 0x0345, 240}, // Combining Greek Ypogegrammeni, Iota Subscript
	{0x0346, 0x0346, 230},
	{0x0347, 0x0349, 220},
	{0x034A, 0x034C, 230},
	{0x034D, 0x034E, 220},
	{0x0350, 0x0352, 230},
	{0x0353, 0x0356, 220},
	{0x0357, 0x0357, 230},
	{0x0358, 0x0358, 232},
	{0x0359, 0x035A, 220},
	{0x035B, 0x035B, 230},
	{0x035C, 0x035C, 233},
	{0x035D, 0x035E, 234},
	{0x035F, 0x035F, 233},
	{0x0360, 0x0361, 234},
	{0x0362, 0x0362, 233},
	{0x0483, 0x0487, 230}, // Cyrillic combining marks
	{0x0591, 0x0591, 220}, // Hebrew Accent Etnahta, Below
	{0x0592, 0x0595, 230},
	{0x0596, 0x0596, 220},
	{0x0597, 0x0599, 230},
	{0x059A, 0x059A, 222},
	{0x059B, 0x059B, 220},
	{0x059C, 0x05A1, 230},
	{0x05A2, 0x05A7, 220},
	{0x05A8, 0x05A9, 230},
	{0x05AA, 0x05AA, 220},
	{0x05AB, 0x05AC, 230},
	{0x05AD, 0x05AD, 222},
	{0x05AE, 0x05AE, 228},
	{0x05AF, 0x05AF, 230},
	{0x05B0, 0x05B0, 10},
	{0x05B1, 0x05B1, 11},
	{0x05B2, 0x05B2, 12},
	{0x05B3, 0x05B3, 13},
	{0x05B4, 0x05B4, 14},
	{0x05B5, 0x05B5, 15},
	{0x05B6, 0x05B6, 16},
	{0x05B7, 0x05B7, 17},
	{0x05B8, 0x05B8, 18},
	{0x05B9, 0x05BA, 19},
	{0x05BB, 0x05BB, 20},
	{0x05BC, 0x05BC, 21}, // Dagesh
	{0x05BD, 0x05BD, 22}, // Meteg
	{0x05BF, 0x05BF, 23}, // Rafe
	{0x05C1, 0x05C1, 24}, // Shin Dot
	{0x05C2, 0x05C2, 25}, // Sin Dot
	{0x05C4, 0x05C4, 230},
	{0x05C5, 0x05C5, 220},
	{0x05C7, 0x05C7, 18},
	{0x0610, 0x0617, 230}, // Arabic signs
	{0x0618, 0x0618, 30},
	{0x0619, 0x0619, 31},
	{0x061A, 0x061A, 32},
	{0x064B, 0x064B, 27}, // Fathatan
	{0x064C, 0x064C, 28}, // Dammatan
	{0x064D, 0x064D, 29}, // Kasratan
	{0x064E, 0x064E, 30}, // Fatha
	{0x064F, 0x064F, 31}, // Damma
	{0x0650, 0x0650, 32}, // Kasra
	{0x0651, 0x0651, 33}, // Shadda
	{0x0652, 0x0652, 34}, // Sukun
	{0x0653, 0x0654, 230},
	{0x0655, 0x0656, 220},
	{0x0657, 0x065B, 230},
	{0x065C, 0x065C, 220},
	{0x065D, 0x065E, 230},
	{0x065F, 0x065F, 220},
	{0x0670, 0x0670, 35}, // Superscript Alef
	{0x06D6, 0x06DC, 230},
	{0x06DF, 0x06E2, 230},
	{0x06E3, 0x06E3, 220},
	{0x06E4, 0x06E4, 230},
	{0x06E7, 0x06E8, 230},
	{0x06EA, 0x06EA, 220},
	{0x06EB, 0x06EC, 230},
	{0x06ED, 0x06ED, 220},
	{0x093C, 0x093C, 7}, // Devanagari Nukta
	{0x094D, 0x094D, 9}, // Devanagari Virama
	{0x0E38, 0x0E39, 103},
	{0x0E3A, 0x0E3A, 9},
	{0x0E48, 0x0E4B, 107},
	{0x0EB8, 0x0EB9, 118},
	{0x0EC8, 0x0ECB, 122},
	{0x1DC0, 0x1DC1, 230},
	{0x20D0, 0x20D1, 230},
	{0x20D2, 0x20D3, 1},
	{0x20D4, 0x20D7, 230},
	{0x20D8, 0x20DA, 1},
	{0x20DB, 0x20DC, 230},
	{0x20E1, 0x20E1, 230},
	{0x20E5, 0x20E6, 1},
	{0x20E7, 0x20E7, 230},
	{0x20E8, 0x20E8, 220},
	{0x20E9, 0x20E9, 230},
	{0x20EA, 0x20EB, 1},
	{0x1E94A, 0x1E94A, 7}, // Adlam Nukta, Nukta (also last entry)
}

type cccRange struct {
	lo, hi rune
	ccc    CCC
}

// Span assigns CCC to every codepoint in the inclusive range [Lo, Hi]. It
// is exported so other
// packages in this module (notably internal/tables, which must mark every
// nonstarter scalar in its own tables) can share this curated data instead
// of duplicating it.
type Span struct {
	Lo, Hi rune
	CCC    CCC
}

// Ranges returns every curated CCC range, sorted and non-overlapping.
func Ranges() []Span {
	out := make([]Span, len(cccRanges))
	for i, r := range cccRanges {
		out[i] = Span{r.lo, r.hi, r.ccc}
	}
	return out
}
