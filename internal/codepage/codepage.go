// Package codepage translates between the single-byte character sets a
// remote host may speak and Unicode.
//
// Inbound bytes are mapped to code points with MapChar (or MapDEC for the
// individual DEC sets); outbound runes are mapped back to bytes with
// EncodeRune. The active character set lives in a Translator. A process-wide
// Translator backs the package-level functions for callers that want a
// single selection.
package codepage

import (
	"errors"
	"fmt"
)

// Codepage identifies a supported character set.
type Codepage int

const (
	CP437     Codepage = iota // PC VGA
	ISO8859_1                 // ISO-8859-1
	DEC                       // DEC character sets for VT10x/VT220

	// DOS codepages
	CP720 // Arabic
	CP737 // Greek
	CP775 // Baltic Rim
	CP850 // Western European
	CP852 // Central European
	CP857 // Turkish
	CP858 // Western European with euro
	CP860 // Portuguese
	CP862 // Hebrew
	CP863 // Quebec French
	CP866 // Cyrillic

	// Windows codepages
	CP1250 // Central/Eastern European
	CP1251 // Cyrillic
	CP1252 // Western European

	// Other codepages
	KOI8R // Russian
	KOI8U // Ukrainian

	UTF8 // UTF-8, decoded as a stream rather than byte by byte
)

// NumCodepages is the number of Codepage values.
const NumCodepages = int(UTF8) + 1

// Default is the codepage used when nothing else has been selected.
const Default = CP437

var (
	// ErrNotFound is returned by Lookup for names that match no codepage.
	ErrNotFound = errors.New("codepage: unknown codepage name")
	// ErrUnrepresentable is returned when a rune has no byte in the active codepage.
	ErrUnrepresentable = errors.New("codepage: rune not representable")
	// ErrUTF8Active is returned by MapChar while UTF-8 is the active
	// codepage. Single-byte mapping is meaningless for UTF-8: those streams
	// must go through utf8codec. Getting this error means the caller's idea
	// of the active codepage and the translator's have drifted apart.
	ErrUTF8Active = errors.New("codepage: single-byte mapping requested while UTF-8 is active")
	// ErrInvalidCodepage is returned when selecting an out-of-range Codepage.
	ErrInvalidCodepage = errors.New("codepage: invalid codepage")
)

type codepageInfo struct {
	name        string
	description string
}

// registry is indexed by Codepage.
var registry = [NumCodepages]codepageInfo{
	CP437:     {"CP437", "PC VGA"},
	ISO8859_1: {"ISO-8859-1", "ISO-8859-1 (Latin-1)"},
	DEC:       {"DEC", "DEC VT100/VT220"},
	CP720:     {"CP720", "Arabic"},
	CP737:     {"CP737", "Greek"},
	CP775:     {"CP775", "Baltic Rim"},
	CP850:     {"CP850", "Western European"},
	CP852:     {"CP852", "Central European"},
	CP857:     {"CP857", "Turkish"},
	CP858:     {"CP858", "Western European with euro"},
	CP860:     {"CP860", "Portuguese"},
	CP862:     {"CP862", "Hebrew"},
	CP863:     {"CP863", "Quebec French"},
	CP866:     {"CP866", "Cyrillic"},
	CP1250:    {"CP1250", "Central/Eastern European"},
	CP1251:    {"CP1251", "Cyrillic"},
	CP1252:    {"CP1252", "Western European"},
	KOI8R:     {"KOI8-R", "Russian"},
	KOI8U:     {"KOI8-U", "Ukrainian"},
	UTF8:      {"UTF-8", "Unicode"},
}

// Valid reports whether c is one of the defined codepages.
func (c Codepage) Valid() bool {
	return c >= 0 && int(c) < NumCodepages
}

// String returns the canonical name of the codepage, the same string
// Lookup accepts and configuration persists.
func (c Codepage) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Codepage(%d)", int(c))
	}
	return registry[c].name
}

// Description returns a short human readable description.
func (c Codepage) Description() string {
	if !c.Valid() {
		return ""
	}
	return registry[c].description
}

// IsUTF8 reports whether c is the UTF-8 stream encoding.
func (c Codepage) IsUTF8() bool {
	return c == UTF8
}

// Codepages returns every codepage in identifier order.
func Codepages() []Codepage {
	all := make([]Codepage, NumCodepages)
	for i := range all {
		all[i] = Codepage(i)
	}
	return all
}
