package tables

// populateCompat adds the compatibility mappings this module curates (and
// the CJK compatibility ideograph singletons noted below) on top of the
// canonical set populateCanonical already installed. Spec
// section 2 defines NFKD as applying both canonical and compatibility
// decomposition, so NFKD's table is a strict superset of NFD's.
//
// Coverage favors the mappings most likely to show up in real text and in
// conformance fixtures: common ligatures, superscript/subscript digits,
// vulgar fractions, Roman numerals, and the fullwidth Latin block (which,
// being a fixed arithmetic offset from Basic Latin, is generated rather
// than listed one codepoint at a time).
func populateCompat(b *builder) {
	// Alphabetic Presentation Forms: Latin ligatures.
	b.pair(0xFB00, 0x0066, 0x0066)           // ff
	b.pair(0xFB01, 0x0066, 0x0069)           // fi
	b.pair(0xFB02, 0x0066, 0x006C)           // fl
	b.triple(0xFB03, 0x0066, 0x0066, 0x0069) // ffi
	b.triple(0xFB04, 0x0066, 0x0066, 0x006C) // ffl
	b.pair(0xFB05, 0x017F, 0x0074)           // long s + t
	b.pair(0xFB06, 0x0073, 0x0074)           // st

	// Latin Extended-A: the IJ digraph letters.
	b.pair(0x0132, 'I', 'J') // LATIN CAPITAL LIGATURE IJ
	b.pair(0x0133, 'i', 'j') // LATIN SMALL LIGATURE IJ

	// Superscript and subscript digits and signs.
	b.singleton(0x00B2, 0x0032) // SUPERSCRIPT TWO
	b.singleton(0x00B3, 0x0033) // SUPERSCRIPT THREE
	b.singleton(0x00B9, 0x0031) // SUPERSCRIPT ONE
	superscripts := []struct{ cp, target rune }{
		{0x2070, 0x0030}, {0x2071, 0x0069},
		{0x2074, 0x0034}, {0x2075, 0x0035}, {0x2076, 0x0036},
		{0x2077, 0x0037}, {0x2078, 0x0038}, {0x2079, 0x0039},
		{0x207A, 0x002B}, {0x207B, 0x2212}, {0x207C, 0x003D},
		{0x207D, 0x0028}, {0x207E, 0x0029}, {0x207F, 0x006E},
	}
	for _, s := range superscripts {
		b.singleton(s.cp, s.target)
	}
	for r := rune(0x2080); r <= 0x2089; r++ {
		b.singleton(r, r-0x2080+0x0030)
	}
	subscriptSigns := []struct{ cp, target rune }{
		{0x208A, 0x002B}, {0x208B, 0x2212}, {0x208C, 0x003D},
		{0x208D, 0x0028}, {0x208E, 0x0029},
	}
	for _, s := range subscriptSigns {
		b.singleton(s.cp, s.target)
	}

	// Vulgar fractions: numerator, FRACTION SLASH, denominator.
	fractions := []struct {
		cp             rune
		num, den       rune
	}{
		{0x00BC, '1', '4'}, {0x00BD, '1', '2'}, {0x00BE, '3', '4'},
		{0x2153, '1', '3'}, {0x2154, '2', '3'},
		{0x2155, '1', '5'}, {0x2156, '2', '5'}, {0x2157, '3', '5'}, {0x2158, '4', '5'},
		{0x2159, '1', '6'}, {0x215A, '5', '6'},
		{0x215B, '1', '8'}, {0x215C, '3', '8'}, {0x215D, '5', '8'}, {0x215E, '7', '8'},
	}
	for _, f := range fractions {
		b.triple(f.cp, f.num, 0x2044, f.den)
	}

	// Roman numerals (Number Forms block): decomposition into the Latin
	// letters that spell them, upper block then lower.
	romanUpper := map[rune][]rune{
		0x2160: {'I'}, 0x2161: {'I', 'I'}, 0x2162: {'I', 'I', 'I'},
		0x2163: {'I', 'V'}, 0x2164: {'V'}, 0x2165: {'V', 'I'},
		0x2166: {'V', 'I', 'I'}, 0x2167: {'V', 'I', 'I', 'I'},
		0x2168: {'I', 'X'}, 0x2169: {'X'}, 0x216A: {'X', 'I'},
		0x216B: {'X', 'I', 'I'}, 0x216C: {'L'}, 0x216D: {'C'},
		0x216E: {'D'}, 0x216F: {'M'},
	}
	for cp, letters := range romanUpper {
		b.decompose(cp, letters...)
	}
	romanLower := map[rune][]rune{
		0x2170: {'i'}, 0x2171: {'i', 'i'}, 0x2172: {'i', 'i', 'i'},
		0x2173: {'i', 'v'}, 0x2174: {'v'}, 0x2175: {'v', 'i'},
		0x2176: {'v', 'i', 'i'}, 0x2177: {'v', 'i', 'i', 'i'},
		0x2178: {'i', 'x'}, 0x2179: {'x'}, 0x217A: {'x', 'i'},
		0x217B: {'x', 'i', 'i'}, 0x217C: {'l'}, 0x217D: {'c'},
		0x217E: {'d'}, 0x217F: {'m'},
	}
	for cp, letters := range romanLower {
		b.decompose(cp, letters...)
	}

	// Fullwidth Forms: U+FF01-U+FF5E is a fixed -0xFEE0 offset from Basic
	// Latin's U+0021-U+007E, so it is generated rather than curated one
	// codepoint at a time.
	for r := rune(0xFF01); r <= 0xFF5E; r++ {
		b.singleton(r, r-0xFEE0)
	}

	// CJK Compatibility Ideographs: a representative sample of canonical
	// singleton mappings to their unified-ideograph equivalents. They are
	// installed here, so only the NFKD table carries them; the NFD table
	// leaves these codepoints undecomposed.
	cjkCompat := []struct{ cp, target rune }{
		{0xF900, 0x8C48}, {0xF901, 0x66F4}, {0xF902, 0x8ECA}, {0xF903, 0x8CC8},
		{0xF904, 0x6ED1}, {0xF905, 0x4E32}, {0xF906, 0x53E5}, {0xF907, 0x9F9C},
		{0xF908, 0x9F9C}, {0xF909, 0x5951},
	}
	for _, c := range cjkCompat {
		b.singleton(c.cp, c.target)
	}
}

// NFKD is the compatibility decomposition table: canonical decomposition
// plus every compatibility mapping this module curates (see spec section 2).
var NFKD = func() *Table {
	b := newBuilder()
	populateCanonical(b)
	populateCompat(b)
	return b.build(continuousBlockEnd)
}()
