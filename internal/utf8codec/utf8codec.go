// Package utf8codec encodes code points as UTF-8 and decodes UTF-8 one byte
// at a time.
//
// Decoding uses Bjoern Hoehrmann's DFA
// (http://bjoern.hoehrmann.de/utf-8/decoder/dfa). Each stream carries its
// own state and partial code point, either threaded through Decode by the
// caller or bundled in a Decoder.
//
// Reject is absorbing: once a sequence is rejected every further byte keeps
// the state at Reject until the caller resets it. How to resynchronise is the
// caller's choice. The usual terminal policy is to emit U+FFFD, reset, and
// feed the offending byte again unless it was the first byte of the
// sequence, since a byte that broke a sequence may well start the next one.
package utf8codec

import "fmt"

// State is the position of the decoder in the DFA. Values other than Accept
// and Reject mean a sequence is in progress.
type State uint8

const (
	Accept State = 0
	Reject State = 12
)

// MaxBytes is the longest UTF-8 encoding of a code point.
const MaxBytes = 4

// ReplacementChar is emitted by callers for rejected input.
const ReplacementChar = '\uFFFD'

const maxRune = 0x10FFFF

// utf8d maps bytes to character classes (first 256 entries) and
// (state, class) pairs to states (the rest). States are multiples of 12 so
// the transition is a single index.
var utf8d = [364]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

func (s State) String() string {
	switch s {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case 24:
		return "need1"
	case 36:
		return "need2"
	case 48:
		return "need2-e0"
	case 60:
		return "need2-ed"
	case 72:
		return "need3-f0"
	case 84:
		return "need3"
	case 96:
		return "need3-f4"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Decode advances the DFA by one byte. codep is the partial code point
// returned by the previous call of the same sequence; it is ignored when
// state is Accept. When the returned state is Accept the returned rune is a
// complete code point. A state of Reject must be reset by the caller before
// further input means anything.
func Decode(state State, codep rune, b byte) (State, rune) {
	if state == Reject {
		return Reject, codep
	}
	class := utf8d[b]
	if state != Accept {
		codep = rune(b&0x3F) | codep<<6
	} else {
		codep = rune(0xFF>>class) & rune(b)
	}
	return State(utf8d[256+int(state)+int(class)]), codep
}

// Encode writes the shortest UTF-8 form of r into buf and returns the number
// of bytes written. It writes nothing and returns 0 when r is negative, a
// surrogate, above U+10FFFF, or when buf is too short.
func Encode(buf []byte, r rune) int {
	switch {
	case r < 0, r > maxRune, r >= 0xD800 && r <= 0xDFFF:
		return 0
	case r < 0x80:
		if len(buf) < 1 {
			return 0
		}
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		if len(buf) < 2 {
			return 0
		}
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r)&0x3F
		return 2
	case r < 0x10000:
		if len(buf) < 3 {
			return 0
		}
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte(r>>6)&0x3F
		buf[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		if len(buf) < 4 {
			return 0
		}
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte(r>>12)&0x3F
		buf[2] = 0x80 | byte(r>>6)&0x3F
		buf[3] = 0x80 | byte(r)&0x3F
		return 4
	}
}

// AppendRune appends the UTF-8 form of r to dst. The boolean is false, and
// dst is returned unchanged, when r cannot be encoded.
func AppendRune(dst []byte, r rune) ([]byte, bool) {
	var buf [MaxBytes]byte
	n := Encode(buf[:], r)
	if n == 0 {
		return dst, false
	}
	return append(dst, buf[:n]...), true
}

// Decoder is the per-stream decode state. The zero value is ready to use.
// A Decoder must not be shared between streams or goroutines.
type Decoder struct {
	state State
	codep rune
}

// Feed advances the decoder by b. The rune is meaningful only when the
// returned state is Accept.
func (d *Decoder) Feed(b byte) (rune, State) {
	d.state, d.codep = Decode(d.state, d.codep, b)
	if d.state == Accept {
		r := d.codep
		d.codep = 0
		return r, Accept
	}
	return 0, d.state
}

// Reset returns the decoder to Accept and drops any partial sequence.
func (d *Decoder) Reset() {
	d.state = Accept
	d.codep = 0
}

// State returns the current DFA state.
func (d *Decoder) State() State { return d.state }

// Pending reports whether a multi-byte sequence has started and not yet
// completed or failed.
func (d *Decoder) Pending() bool {
	return d.state != Accept && d.state != Reject
}
