package codepage

// The DEC sets are 7-bit. National replacement sets differ from US-ASCII
// only at the ISO 646 national positions, so they are built from decUS with
// overrides instead of being spelled out in full.

// decUS is US-ASCII with C0 controls and DEL at their own code points.
var decUS = func() (t [128]rune) {
	for i := range t {
		t[i] = rune(i)
	}
	return t
}()

// withOverrides returns a copy of base with the given positions replaced.
func withOverrides(base [128]rune, overrides map[byte]rune) [128]rune {
	for b, r := range overrides {
		base[b] = r
	}
	return base
}

var decUK = withOverrides(decUS, map[byte]rune{
	0x23: 0x00A3, // £
})

var decDutch = withOverrides(decUS, map[byte]rune{
	0x23: 0x00A3, // £
	0x40: 0x00BE, // ¾
	0x5B: 0x0133, // ĳ
	0x5C: 0x00BD, // ½
	0x5D: 0x007C, // |
	0x7B: 0x00A8, // ¨
	0x7C: 0x0192, // ƒ
	0x7D: 0x00BC, // ¼
	0x7E: 0x00B4, // ´
})

var decFinnish = withOverrides(decUS, map[byte]rune{
	0x5B: 0x00C4, // Ä
	0x5C: 0x00D6, // Ö
	0x5D: 0x00C5, // Å
	0x5E: 0x00DC, // Ü
	0x60: 0x00E9, // é
	0x7B: 0x00E4, // ä
	0x7C: 0x00F6, // ö
	0x7D: 0x00E5, // å
	0x7E: 0x00FC, // ü
})

var decFrench = withOverrides(decUS, map[byte]rune{
	0x23: 0x00A3, // £
	0x40: 0x00E0, // à
	0x5B: 0x00B0, // °
	0x5C: 0x00E7, // ç
	0x5D: 0x00A7, // §
	0x7B: 0x00E9, // é
	0x7C: 0x00F9, // ù
	0x7D: 0x00E8, // è
	0x7E: 0x00A8, // ¨
})

var decFrenchCanadian = withOverrides(decUS, map[byte]rune{
	0x40: 0x00E0, // à
	0x5B: 0x00E2, // â
	0x5C: 0x00E7, // ç
	0x5D: 0x00EA, // ê
	0x5E: 0x00EE, // î
	0x60: 0x00F4, // ô
	0x7B: 0x00E9, // é
	0x7C: 0x00F9, // ù
	0x7D: 0x00E8, // è
	0x7E: 0x00FB, // û
})

var decGerman = withOverrides(decUS, map[byte]rune{
	0x40: 0x00A7, // §
	0x5B: 0x00C4, // Ä
	0x5C: 0x00D6, // Ö
	0x5D: 0x00DC, // Ü
	0x7B: 0x00E4, // ä
	0x7C: 0x00F6, // ö
	0x7D: 0x00FC, // ü
	0x7E: 0x00DF, // ß
})

var decItalian = withOverrides(decUS, map[byte]rune{
	0x23: 0x00A3, // £
	0x40: 0x00A7, // §
	0x5B: 0x00B0, // °
	0x5C: 0x00E7, // ç
	0x5D: 0x00E9, // é
	0x60: 0x00F9, // ù
	0x7B: 0x00E0, // à
	0x7C: 0x00F2, // ò
	0x7D: 0x00E8, // è
	0x7E: 0x00EC, // ì
})

// decNorwegian is the Norwegian/Danish set.
var decNorwegian = withOverrides(decUS, map[byte]rune{
	0x40: 0x00C4, // Ä
	0x5B: 0x00C6, // Æ
	0x5C: 0x00D8, // Ø
	0x5D: 0x00C5, // Å
	0x5E: 0x00DC, // Ü
	0x60: 0x00E4, // ä
	0x7B: 0x00E6, // æ
	0x7C: 0x00F8, // ø
	0x7D: 0x00E5, // å
	0x7E: 0x00FC, // ü
})

var decSpanish = withOverrides(decUS, map[byte]rune{
	0x23: 0x00A3, // £
	0x40: 0x00A7, // §
	0x5B: 0x00A1, // ¡
	0x5C: 0x00D1, // Ñ
	0x5D: 0x00BF, // ¿
	0x7B: 0x00B0, // °
	0x7C: 0x00F1, // ñ
	0x7D: 0x00E7, // ç
})

var decSwedish = withOverrides(decUS, map[byte]rune{
	0x40: 0x00C9, // É
	0x5B: 0x00C4, // Ä
	0x5C: 0x00D6, // Ö
	0x5D: 0x00C5, // Å
	0x5E: 0x00DC, // Ü
	0x60: 0x00E9, // é
	0x7B: 0x00E4, // ä
	0x7C: 0x00F6, // ö
	0x7D: 0x00E5, // å
	0x7E: 0x00FC, // ü
})

var decSwiss = withOverrides(decUS, map[byte]rune{
	0x23: 0x00F9, // ù
	0x40: 0x00E0, // à
	0x5B: 0x00E9, // é
	0x5C: 0x00E7, // ç
	0x5D: 0x00EA, // ê
	0x5E: 0x00EE, // î
	0x5F: 0x00E8, // è
	0x60: 0x00F4, // ô
	0x7B: 0x00E4, // ä
	0x7C: 0x00F6, // ö
	0x7D: 0x00FC, // ü
	0x7E: 0x00FB, // û
})

// decSpecialGraphics is the VT100 line drawing set ("ESC ( 0").
var decSpecialGraphics = withOverrides(decUS, map[byte]rune{
	0x5F: 0x00A0, // blank
	0x60: 0x25C6, // ◆
	0x61: 0x2592, // ▒
	0x62: 0x2409, // HT
	0x63: 0x240C, // FF
	0x64: 0x240D, // CR
	0x65: 0x240A, // LF
	0x66: 0x00B0, // °
	0x67: 0x00B1, // ±
	0x68: 0x2424, // NL
	0x69: 0x240B, // VT
	0x6A: 0x2518, // ┘
	0x6B: 0x2510, // ┐
	0x6C: 0x250C, // ┌
	0x6D: 0x2514, // └
	0x6E: 0x253C, // ┼
	0x6F: 0x23BA, // scan line 1
	0x70: 0x23BB, // scan line 3
	0x71: 0x2500, // ─
	0x72: 0x23BC, // scan line 7
	0x73: 0x23BD, // scan line 9
	0x74: 0x251C, // ├
	0x75: 0x2524, // ┤
	0x76: 0x2534, // ┴
	0x77: 0x252C, // ┬
	0x78: 0x2502, // │
	0x79: 0x2264, // ≤
	0x7A: 0x2265, // ≥
	0x7B: 0x03C0, // π
	0x7C: 0x2260, // ≠
	0x7D: 0x00A3, // £
	0x7E: 0x00B7, // ·
})

// vt52Graphics is the VT52 graphics mode set ("ESC F"). The fraction
// numerators 3/, 5/ and 7/ have no Unicode form; superscript digits stand in.
var vt52Graphics = withOverrides(decUS, map[byte]rune{
	0x5F: 0x00A0, // blank
	0x61: 0x2588, // solid rectangle
	0x62: 0x215F, // 1/
	0x63: 0x00B3, // 3/
	0x64: 0x2075, // 5/
	0x65: 0x2077, // 7/
	0x66: 0x00B0, // degrees
	0x67: 0x00B1, // plus/minus
	0x68: 0x2192, // right arrow
	0x69: 0x2026, // ellipsis
	0x6A: 0x00F7, // divide by
	0x6B: 0x2193, // down arrow
	0x6C: 0x23BA, // bar at scan 0
	0x6D: 0x23BA, // bar at scan 1
	0x6E: 0x23BB, // bar at scan 2
	0x6F: 0x23BB, // bar at scan 3
	0x70: 0x2500, // bar at scan 4
	0x71: 0x2500, // bar at scan 5
	0x72: 0x23BC, // bar at scan 6
	0x73: 0x23BD, // bar at scan 7
	0x74: 0x2080, // subscript 0
	0x75: 0x2081, // subscript 1
	0x76: 0x2082, // subscript 2
	0x77: 0x2083, // subscript 3
	0x78: 0x2084, // subscript 4
	0x79: 0x2085, // subscript 5
	0x7A: 0x2086, // subscript 6
	0x7B: 0x2087, // subscript 7
	0x7C: 0x2088, // subscript 8
	0x7D: 0x2089, // subscript 9
	0x7E: 0x00B6, // paragraph
})

// decSupplemental is the DEC Multinational supplemental set. Entry i is the
// character at GR position 0x80+i: C1 controls for 0x80-0x9F, then Latin-1
// with DEC's own assignments. 0xA0 is the space position and stays NBSP.
// Every position DEC leaves reserved, 0xFF included, is U+FFFD.
var decSupplemental = func() (t [128]rune) {
	for i := range t {
		t[i] = rune(0x80 + i)
	}
	for b, r := range map[byte]rune{
		0xA8: 0x00A4, // ¤
		0xD7: 0x0152, // Œ
		0xDD: 0x0178, // Ÿ
		0xF7: 0x0153, // œ
		0xFD: 0x00FF, // ÿ
	} {
		t[b-0x80] = r
	}
	for _, b := range decSupplementalReserved {
		t[b-0x80] = 0xFFFD
	}
	return t
}()

// decSupplementalReserved lists the positions with no character in the
// DEC Multinational set.
var decSupplementalReserved = []byte{
	0xA4, 0xA6, 0xAC, 0xAD, 0xAE, 0xAF, 0xB4, 0xB8, 0xBE,
	0xD0, 0xDE, 0xF0, 0xFE, 0xFF,
}
