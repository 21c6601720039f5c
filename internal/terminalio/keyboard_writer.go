package terminalio

import (
	"io"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
	"github.com/stlalpha/codepage/internal/session"
	"github.com/stlalpha/codepage/internal/utf8codec"
)

// KeyboardWriter translates UTF-8 input from a local terminal into the bytes
// the host expects.
//
// Printable characters are encoded in the session's codepage, with the
// session's substitute for anything the codepage lacks. Enter and Backspace
// follow the session's keyboard options. Escape sequences the local
// terminal generated for cursor and function keys, and the remaining C0
// controls, are copied through.
type KeyboardWriter struct {
	w   io.Writer
	s   *session.Session
	esc escapeTracker
	dec utf8codec.Decoder
	out []byte
}

// NewKeyboardWriter creates a keyboard writer that writes host bytes to w.
func NewKeyboardWriter(w io.Writer, s *session.Session) *KeyboardWriter {
	return &KeyboardWriter{w: w, s: s}
}

// Write implements io.Writer. An incomplete UTF-8 character at the end of p
// is held for the next Write.
func (kw *KeyboardWriter) Write(p []byte) (n int, err error) {
	out := kw.out[:0]
	for _, b := range p {
		if kw.esc.open() && kw.esc.step(b) {
			out = append(out, b)
			continue
		}
		out = kw.ground(out, b)
	}

	kw.out = out
	if len(out) > 0 {
		if _, err := kw.w.Write(out); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

func (kw *KeyboardWriter) ground(out []byte, b byte) []byte {
	if kw.dec.Pending() {
		r, st := kw.dec.Feed(b)
		switch st {
		case utf8codec.Accept:
			return append(out, kw.s.EncodeRune(r)...)
		case utf8codec.Reject:
			kw.dec.Reset()
			out = append(out, kw.s.Substitute())
			return kw.ground(out, b)
		}
		return out
	}

	switch {
	case b == codepage.ESC:
		kw.esc.begin()
		return append(out, b)
	case b == codepage.CR:
		return kw.key(out, keyboard.KeyEnter, b)
	case b == codepage.DEL:
		return kw.key(out, keyboard.KeyBackspace, b)
	case codepage.IsControl(b):
		return append(out, b)
	case b < 0x80:
		return append(out, kw.s.EncodeRune(rune(b))...)
	}

	r, st := kw.dec.Feed(b)
	switch st {
	case utf8codec.Accept:
		return append(out, kw.s.EncodeRune(r)...)
	case utf8codec.Reject:
		kw.dec.Reset()
		return append(out, kw.s.Substitute())
	}
	return out
}

func (kw *KeyboardWriter) key(out []byte, k keyboard.Key, raw byte) []byte {
	seq, err := kw.s.EncodeKey(keyboard.Keystroke{Key: k})
	if err != nil {
		return append(out, raw)
	}
	return append(out, seq...)
}
