package codepage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/stlalpha/codepage/internal/utf8codec"
)

// xtextEncodings lists the x/text encodings that correspond to a codepage.
// Only used to resolve IANA names and to check tables in tests; conversion
// always goes through this package's own tables.
var xtextEncodings = map[Codepage]encoding.Encoding{
	CP437:     charmap.CodePage437,
	ISO8859_1: charmap.ISO8859_1,
	CP850:     charmap.CodePage850,
	CP852:     charmap.CodePage852,
	CP858:     charmap.CodePage858,
	CP860:     charmap.CodePage860,
	CP862:     charmap.CodePage862,
	CP863:     charmap.CodePage863,
	CP866:     charmap.CodePage866,
	CP1250:    charmap.Windows1250,
	CP1251:    charmap.Windows1251,
	CP1252:    charmap.Windows1252,
	KOI8R:     charmap.KOI8R,
	KOI8U:     charmap.KOI8U,
	UTF8:      unicode.UTF8,
}

// Encoding returns c as an x/text encoding backed by this package's tables.
// Runes the codepage cannot represent are reported to the encoder as
// unsupported, and encoding.ReplaceUnsupported turns them into SUB.
//
// C0 controls and DEL convert as themselves in both directions, the same
// treatment a terminal stream gives them. UTF-8 returns x/text's UTF-8
// encoding. An invalid c returns nil.
func Encoding(c Codepage) encoding.Encoding {
	return NewEncoding(c, SUB)
}

// NewEncoding is Encoding with replacement byte sub for unsupported runes.
func NewEncoding(c Codepage, sub byte) encoding.Encoding {
	if !c.Valid() {
		return nil
	}
	if c.IsUTF8() {
		return unicode.UTF8
	}
	return &tableEncoding{cp: c, table: tables[c], sub: sub}
}

type tableEncoding struct {
	cp    Codepage
	table *Table
	sub   byte
}

func (e *tableEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &tableDecoder{table: e.table}}
}

func (e *tableEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &tableEncoder{
		cp:      e.cp,
		reverse: reverseIndex(e.table),
		sub:     e.sub,
	}}
}

func (e *tableEncoding) String() string { return e.cp.String() }

type tableDecoder struct {
	transform.NopResetter
	table *Table
}

func (d *tableDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [utf8codec.MaxBytes]byte
	for nSrc < len(src) {
		b := src[nSrc]
		r := rune(b)
		if !IsControl(b) {
			r = d.table[b]
		}
		n := utf8codec.Encode(buf[:], r)
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], buf[:n])
		nSrc++
	}
	return nDst, nSrc, err
}

type tableEncoder struct {
	transform.NopResetter
	cp      Codepage
	reverse map[rune]byte
	sub     byte
}

// unsupportedError satisfies the replacement contract of
// encoding.ReplaceUnsupported.
type unsupportedError struct {
	cp   Codepage
	r    rune
	repl byte
}

func (e unsupportedError) Error() string {
	if e.r < 0 {
		return fmt.Sprintf("codepage: invalid UTF-8 for %s", e.cp)
	}
	return fmt.Sprintf("codepage: %U not representable in %s", e.r, e.cp)
}

func (e unsupportedError) Replacement() byte { return e.repl }

func (e unsupportedError) Unwrap() error { return ErrUnrepresentable }

func (t *tableEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if b := src[nSrc]; IsControl(b) {
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}

		state, cp, n := utf8codec.Accept, rune(0), 0
		for nSrc+n < len(src) {
			state, cp = utf8codec.Decode(state, cp, src[nSrc+n])
			n++
			if state == utf8codec.Accept || state == utf8codec.Reject {
				break
			}
		}
		switch state {
		case utf8codec.Accept:
		case utf8codec.Reject:
			// The replacement handler skips the bad bytes.
			return nDst, nSrc, unsupportedError{cp: t.cp, r: -1, repl: t.sub}
		default:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, unsupportedError{cp: t.cp, r: -1, repl: t.sub}
		}

		b, ok := t.reverse[cp]
		if !ok {
			return nDst, nSrc, unsupportedError{cp: t.cp, r: cp, repl: t.sub}
		}
		dst[nDst] = b
		nDst++
		nSrc += n
	}
	return nDst, nSrc, nil
}
