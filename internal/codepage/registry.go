package codepage

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// aliases holds the extra spellings accepted by Lookup. Keys are upper case.
var aliases = map[string]Codepage{
	"437":          CP437,
	"IBM437":       CP437,
	"PC":           CP437,
	"VGA":          CP437,
	"LATIN1":       ISO8859_1,
	"LATIN-1":      ISO8859_1,
	"ISO8859-1":    ISO8859_1,
	"ISO88591":     ISO8859_1,
	"VT100":        DEC,
	"VT220":        DEC,
	"IBM720":       CP720,
	"IBM737":       CP737,
	"IBM775":       CP775,
	"IBM850":       CP850,
	"IBM852":       CP852,
	"IBM857":       CP857,
	"IBM858":       CP858,
	"IBM860":       CP860,
	"IBM862":       CP862,
	"IBM863":       CP863,
	"IBM866":       CP866,
	"WINDOWS-1250": CP1250,
	"WINDOWS-1251": CP1251,
	"WINDOWS-1252": CP1252,
	"KOI8R":        KOI8R,
	"KOI8U":        KOI8U,
	"UTF8":         UTF8,
}

// Lookup returns the codepage called name.
//
// Matching ignores surrounding whitespace and case. Canonical names are
// tried first, then a fixed list of common spellings ("IBM437", "latin1",
// "windows-1252", "utf8", ...), then IANA registered names and aliases
// that resolve to a codepage this package supports. An unknown name yields
// an error wrapping ErrNotFound; the caller decides the fallback.
func Lookup(name string) (Codepage, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return Default, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	for i, info := range registry {
		if info.name == key {
			return Codepage(i), nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	if c, ok := lookupIANA(key); ok {
		return c, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// LookupOrDefault is Lookup with the configuration fallback applied: any
// unrecognised name selects Default.
func LookupOrDefault(name string) Codepage {
	c, err := Lookup(name)
	if err != nil {
		return Default
	}
	return c
}

func lookupIANA(name string) (Codepage, bool) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return 0, false
	}
	for c, known := range xtextEncodings {
		if known == enc {
			return c, true
		}
	}
	return 0, false
}
