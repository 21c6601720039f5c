package codepage

// Table maps every byte of a single-byte character set to a code point.
type Table [256]rune

// asciiLow is 0x00-0x7F as plain ASCII with controls at their own code
// points. ISO, Windows and KOI8 codepages share it.
var asciiLow = decUS

func join(low, high *[128]rune) *Table {
	var t Table
	copy(t[:128], low[:])
	copy(t[128:], high[:])
	return &t
}

var latin1Table = func() *Table {
	var t Table
	for i := range t {
		t[i] = rune(i)
	}
	return &t
}()

// tables is indexed by Codepage. UTF-8 has no table.
var tables = [NumCodepages]*Table{
	CP437:     join(&pcLow, &cp437High),
	ISO8859_1: latin1Table,
	DEC:       join(&decUS, &decSupplemental),
	CP720:     join(&pcLow, &cp720High),
	CP737:     join(&pcLow, &cp737High),
	CP775:     join(&pcLow, &cp775High),
	CP850:     join(&pcLow, &cp850High),
	CP852:     join(&pcLow, &cp852High),
	CP857:     join(&pcLow, &cp857High),
	CP858:     join(&pcLow, &cp858High),
	CP860:     join(&pcLow, &cp860High),
	CP862:     join(&pcLow, &cp862High),
	CP863:     join(&pcLow, &cp863High),
	CP866:     join(&pcLow, &cp866High),
	CP1250:    join(&asciiLow, &cp1250High),
	CP1251:    join(&asciiLow, &cp1251High),
	CP1252:    join(&asciiLow, &cp1252High),
	KOI8R:     join(&asciiLow, &koi8RHigh),
	KOI8U:     join(&asciiLow, &koi8UHigh),
}

// TableFor returns a copy of the translation table for c. The second result
// is false for UTF-8 and for invalid codepages.
func TableFor(c Codepage) (Table, bool) {
	if !c.Valid() || tables[c] == nil {
		return Table{}, false
	}
	return *tables[c], true
}

// reverseIndex builds the rune to byte map used for encoding. Control
// positions are skipped because their glyphs (CP437's arrows, for
// example) must not turn into control bytes on the wire, and U+FFFD marks
// unassigned positions. When two bytes share a code point the lower byte wins.
func reverseIndex(t *Table) map[rune]byte {
	m := make(map[rune]byte, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		b := byte(i)
		if IsControl(b) || t[i] == 0xFFFD {
			continue
		}
		m[t[i]] = b
	}
	return m
}
