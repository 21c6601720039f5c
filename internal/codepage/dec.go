package codepage

import "fmt"

// DECCharset identifies one of the 7-bit DEC character sets. Which set is
// designated into G0/G1 (and shifted in) is terminal emulation state owned
// by the caller; this package only holds the tables.
type DECCharset int

const (
	DECUS              DECCharset = iota // US-ASCII, "ESC ( B"
	DECUK                                // "ESC ( A"
	DECDutch                             // "ESC ( 4"
	DECFinnish                           // "ESC ( C" / "ESC ( 5"
	DECFrench                            // "ESC ( R"
	DECFrenchCanadian                    // "ESC ( Q"
	DECGerman                            // "ESC ( K"
	DECItalian                           // "ESC ( Y"
	DECNorwegian                         // "ESC ( E" / "ESC ( 6"
	DECSpanish                           // "ESC ( Z"
	DECSwedish                           // "ESC ( H" / "ESC ( 7"
	DECSwiss                             // "ESC ( ="
	DECSpecialGraphics                   // "ESC ( 0"
	DECSupplemental                      // "ESC ( <", DEC Multinational
	VT52Graphics                         // VT52 "ESC F"
)

// NumDECCharsets is the number of DECCharset values.
const NumDECCharsets = int(VT52Graphics) + 1

var decTables = [NumDECCharsets]*[128]rune{
	DECUS:              &decUS,
	DECUK:              &decUK,
	DECDutch:           &decDutch,
	DECFinnish:         &decFinnish,
	DECFrench:          &decFrench,
	DECFrenchCanadian:  &decFrenchCanadian,
	DECGerman:          &decGerman,
	DECItalian:         &decItalian,
	DECNorwegian:       &decNorwegian,
	DECSpanish:         &decSpanish,
	DECSwedish:         &decSwedish,
	DECSwiss:           &decSwiss,
	DECSpecialGraphics: &decSpecialGraphics,
	DECSupplemental:    &decSupplemental,
	VT52Graphics:       &vt52Graphics,
}

var decNames = [NumDECCharsets]string{
	DECUS:              "US",
	DECUK:              "UK",
	DECDutch:           "Dutch",
	DECFinnish:         "Finnish",
	DECFrench:          "French",
	DECFrenchCanadian:  "French Canadian",
	DECGerman:          "German",
	DECItalian:         "Italian",
	DECNorwegian:       "Norwegian/Danish",
	DECSpanish:         "Spanish",
	DECSwedish:         "Swedish",
	DECSwiss:           "Swiss",
	DECSpecialGraphics: "Special Graphics",
	DECSupplemental:    "Supplemental",
	VT52Graphics:       "VT52 Graphics",
}

// Valid reports whether s is a defined DEC set.
func (s DECCharset) Valid() bool {
	return s >= 0 && int(s) < NumDECCharsets
}

func (s DECCharset) String() string {
	if !s.Valid() {
		return fmt.Sprintf("DECCharset(%d)", int(s))
	}
	return decNames[s]
}

// DECTable returns a copy of the 128-entry table for s. An invalid s
// yields the US table.
func DECTable(s DECCharset) [128]rune {
	if !s.Valid() {
		return decUS
	}
	return *decTables[s]
}

// MapDEC maps b through the DEC set s.
//
// C0 controls and DEL are never overlaid and map to themselves. Bytes
// 0x20-0x7E index the set. Bytes 0x80-0xFF have no meaning in a 7-bit set
// and are taken from the DEC Supplemental table, the same right half a
// VT220 shows by default.
func MapDEC(s DECCharset, b byte) rune {
	if b >= 0x80 {
		return decSupplemental[b-0x80]
	}
	if IsControl(b) {
		return rune(b)
	}
	if !s.Valid() {
		s = DECUS
	}
	return decTables[s][b]
}

// DECCharsetForFinal returns the set designated by the final byte of an
// SCS sequence ("ESC ( F"). VT52 graphics has no SCS final.
func DECCharsetForFinal(final byte) (DECCharset, bool) {
	switch final {
	case 'B':
		return DECUS, true
	case 'A':
		return DECUK, true
	case '4':
		return DECDutch, true
	case 'C', '5':
		return DECFinnish, true
	case 'R', 'f':
		return DECFrench, true
	case 'Q', '9':
		return DECFrenchCanadian, true
	case 'K':
		return DECGerman, true
	case 'Y':
		return DECItalian, true
	case 'E', '6', '`':
		return DECNorwegian, true
	case 'Z':
		return DECSpanish, true
	case 'H', '7':
		return DECSwedish, true
	case '=':
		return DECSwiss, true
	case '0', '2':
		return DECSpecialGraphics, true
	case '<':
		return DECSupplemental, true
	}
	return DECUS, false
}
