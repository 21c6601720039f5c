package codepage

import (
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func singleByteCodepages() []Codepage {
	var out []Codepage
	for _, c := range Codepages() {
		if !c.IsUTF8() {
			out = append(out, c)
		}
	}
	return out
}

func TestTablesAreScalarValues(t *testing.T) {
	for _, c := range singleByteCodepages() {
		tbl, ok := TableFor(c)
		if !ok {
			t.Fatalf("TableFor(%v) not found", c)
		}
		for i, r := range tbl {
			if !utf8.ValidRune(r) {
				t.Errorf("%v[%#02x] = %#x is not a scalar value", c, i, r)
			}
		}
	}
}

func TestTableForUTF8(t *testing.T) {
	if _, ok := TableFor(UTF8); ok {
		t.Fatal("TableFor(UTF8) should report false")
	}
	if _, ok := TableFor(Codepage(-3)); ok {
		t.Fatal("TableFor(invalid) should report false")
	}
}

func TestTableForReturnsCopy(t *testing.T) {
	tbl, _ := TableFor(CP437)
	tbl[0xB0] = 'x'
	again, _ := TableFor(CP437)
	if again[0xB0] != 0x2591 {
		t.Fatalf("table modified through copy: %U", again[0xB0])
	}
}

func TestLowHalves(t *testing.T) {
	cp437, _ := TableFor(CP437)
	for _, c := range []Codepage{CP720, CP737, CP775, CP850, CP852, CP857, CP858, CP860, CP862, CP863, CP866} {
		tbl, _ := TableFor(c)
		for i := 0; i < 0x80; i++ {
			if tbl[i] != cp437[i] {
				t.Errorf("%v[%#02x] = %U, want CP437's %U", c, i, tbl[i], cp437[i])
			}
		}
	}
	for _, c := range []Codepage{ISO8859_1, DEC, CP1250, CP1251, CP1252, KOI8R, KOI8U} {
		tbl, _ := TableFor(c)
		for i := 0; i < 0x80; i++ {
			if tbl[i] != rune(i) {
				t.Errorf("%v[%#02x] = %U, want ASCII", c, i, tbl[i])
			}
		}
	}
}

func TestKnownPositions(t *testing.T) {
	tests := []struct {
		c    Codepage
		b    byte
		want rune
	}{
		{CP437, 0x01, 0x263A},
		{CP437, 0x7F, 0x2302},
		{CP437, 0xB0, 0x2591},
		{CP437, 0xDB, 0x2588},
		{ISO8859_1, 0xB0, 0x00B0},
		{ISO8859_1, 0xFF, 0x00FF},
		{DEC, 0xA8, 0x00A4},
		{DEC, 0xD7, 0x0152},
		{CP720, 0x98, 0x0621},
		{CP737, 0x80, 0x0391},
		{CP775, 0x80, 0x0106},
		{CP857, 0x98, 0x0130},
		{CP857, 0xD5, 0x20AC},
		{CP857, 0xE7, 0xFFFD},
		{CP858, 0xD5, 0x20AC},
		{CP862, 0x80, 0x05D0},
		{CP866, 0x80, 0x0410},
		{CP1250, 0x8A, 0x0160},
		{CP1251, 0xC0, 0x0410},
		{CP1252, 0x80, 0x20AC},
		{CP1252, 0x81, 0x0081},
		{KOI8R, 0xC1, 0x0430},
		{KOI8U, 0xA4, 0x0454},
	}
	for _, tt := range tests {
		tbl, _ := TableFor(tt.c)
		if got := tbl[tt.b]; got != tt.want {
			t.Errorf("%v[%#02x] = %U, want %U", tt.c, tt.b, got, tt.want)
		}
	}
}

// xtextSkips lists positions where x/text deliberately follows another
// vendor table.
var xtextSkips = map[Codepage][]byte{
	// WHATWG's koi8-u is KOI8-RU at these two positions.
	KOI8U: {0xAE, 0xBE},
}

func TestTablesMatchXText(t *testing.T) {
	for c, enc := range xtextEncodings {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		tbl, _ := TableFor(c)
		skip := make(map[byte]bool)
		for _, b := range xtextSkips[c] {
			skip[b] = true
		}
		for i := 0x80; i < 0x100; i++ {
			b := byte(i)
			ours := tbl[b]
			// Unassigned positions differ by vendor convention.
			if skip[b] || ours == 0xFFFD || ours == rune(b) && b < 0xA0 {
				continue
			}
			if theirs := cm.DecodeByte(b); theirs != ours {
				t.Errorf("%v[%#02x] = %U, x/text has %U", c, b, ours, theirs)
			}
		}
	}
}

func TestDECNationalSetsOnlyDifferAtNationalPositions(t *testing.T) {
	national := map[byte]bool{0x23: true, 0x40: true, 0x7B: true, 0x7C: true, 0x7D: true, 0x7E: true}
	for b := byte(0x5B); b <= 0x60; b++ {
		national[b] = true
	}
	for s := DECUK; s <= DECSwiss; s++ {
		tbl := DECTable(s)
		for i := 0; i < 0x80; i++ {
			if national[byte(i)] {
				continue
			}
			if tbl[i] != rune(i) {
				t.Errorf("%v[%#02x] = %U, want ASCII", s, i, tbl[i])
			}
		}
	}
}

func TestMapDEC(t *testing.T) {
	tests := []struct {
		name string
		set  DECCharset
		b    byte
		want rune
	}{
		{"us letter", DECUS, 'A', 'A'},
		{"uk pound", DECUK, 0x23, 0x00A3},
		{"german umlaut", DECGerman, 0x5B, 0x00C4},
		{"german sharp s", DECGerman, 0x7E, 0x00DF},
		{"french c cedilla", DECFrench, 0x5C, 0x00E7},
		{"line drawing horizontal", DECSpecialGraphics, 0x71, 0x2500},
		{"line drawing corner", DECSpecialGraphics, 0x6A, 0x2518},
		{"line drawing ascii untouched", DECSpecialGraphics, 'A', 'A'},
		{"vt52 paragraph", VT52Graphics, 0x7E, 0x00B6},
		{"supplemental currency", DECSupplemental, 0x28, 0x00A4},
		{"control never overlaid", DECSpecialGraphics, 0x0A, 0x0A},
		{"esc never overlaid", DECUK, 0x1B, 0x1B},
		{"del never overlaid", DECSwiss, 0x7F, 0x7F},
		{"high byte via supplemental", DECGerman, 0xC4, 0x00C4},
		{"high byte OE via supplemental", DECSpecialGraphics, 0xD7, 0x0152},
		{"high C1 via supplemental", DECUS, 0x9B, 0x009B},
		{"invalid set falls back to US", DECCharset(42), 0x23, '#'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapDEC(tt.set, tt.b); got != tt.want {
				t.Fatalf("MapDEC(%v, %#02x) = %U, want %U", tt.set, tt.b, got, tt.want)
			}
		})
	}
}

func TestDECSupplementalReservedPositions(t *testing.T) {
	reserved := map[byte]bool{}
	for _, b := range []byte{0xA4, 0xA6, 0xAC, 0xAD, 0xAE, 0xAF, 0xB4, 0xB8, 0xBE, 0xD0, 0xDE, 0xF0, 0xFE, 0xFF} {
		reserved[b] = true
	}
	for i := 0xA0; i <= 0xFF; i++ {
		b := byte(i)
		got := MapDEC(DECSupplemental, b)
		if reserved[b] {
			if got != 0xFFFD {
				t.Errorf("reserved %#02x = %U, want U+FFFD", b, got)
			}
			continue
		}
		if got == 0xFFFD {
			t.Errorf("assigned %#02x maps to U+FFFD", b)
		}
	}

	tbl, _ := TableFor(DEC)
	for b := range reserved {
		if tbl[b] != 0xFFFD {
			t.Errorf("DEC codepage %#02x = %U, want U+FFFD", b, tbl[b])
		}
	}
	if tbl[0xA0] != 0x00A0 {
		t.Errorf("DEC codepage 0xA0 = %U, want NBSP", tbl[0xA0])
	}
}

func TestMapDECAllBytesValid(t *testing.T) {
	for s := DECCharset(0); int(s) < NumDECCharsets; s++ {
		for i := 0; i < 256; i++ {
			if r := MapDEC(s, byte(i)); !utf8.ValidRune(r) {
				t.Errorf("MapDEC(%v, %#02x) = %#x", s, i, r)
			}
		}
	}
}

func TestDECCharsetString(t *testing.T) {
	if DECSpecialGraphics.String() != "Special Graphics" {
		t.Errorf("got %q", DECSpecialGraphics.String())
	}
	if got := DECCharset(-1).String(); got != "DECCharset(-1)" {
		t.Errorf("got %q", got)
	}
}

func TestDECCharsetForFinal(t *testing.T) {
	tests := []struct {
		final byte
		want  DECCharset
		ok    bool
	}{
		{'B', DECUS, true},
		{'0', DECSpecialGraphics, true},
		{'A', DECUK, true},
		{'K', DECGerman, true},
		{'5', DECFinnish, true},
		{'<', DECSupplemental, true},
		{'X', DECUS, false},
	}
	for _, tt := range tests {
		got, ok := DECCharsetForFinal(tt.final)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DECCharsetForFinal(%q) = %v, %v; want %v, %v", tt.final, got, ok, tt.want, tt.ok)
		}
	}
}
