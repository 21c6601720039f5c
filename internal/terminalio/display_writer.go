package terminalio

import (
	"io"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/session"
	"github.com/stlalpha/codepage/internal/utf8codec"
)

const (
	shiftOut byte = 0x0E // SO, invoke G1
	shiftIn  byte = 0x0F // SI, invoke G0
)

// DisplayWriter translates host output into UTF-8 for a local terminal.
//
// Printable bytes are decoded through the session's codepage. C0 controls
// and escape sequences are copied through. While DEC is the active codepage
// the writer also plays the part of the VT220 character set machinery: SCS
// designations ("ESC ( 0") and SO/SI are consumed and applied to the text
// instead of being forwarded.
type DisplayWriter struct {
	w   io.Writer
	s   *session.Session
	esc escapeTracker
	seq []byte // escape sequence being collected

	g       [2]codepage.DECCharset // G0 and G1
	shifted bool                   // G1 invoked by SO

	out   []byte
	runes []rune
}

// NewDisplayWriter creates a display writer that writes UTF-8 to w.
func NewDisplayWriter(w io.Writer, s *session.Session) *DisplayWriter {
	return &DisplayWriter{
		w: w,
		s: s,
		g: [2]codepage.DECCharset{codepage.DECUS, codepage.DECSpecialGraphics},
	}
}

// Write implements io.Writer. It always consumes all of p; an incomplete
// escape sequence or UTF-8 character at the end is held for the next Write.
func (dw *DisplayWriter) Write(p []byte) (n int, err error) {
	out := dw.out[:0]
	dec := dw.s.Codepage() == codepage.DEC

	for _, b := range p {
		if dw.esc.open() {
			if dw.esc.step(b) {
				dw.seq = append(dw.seq, b)
				if !dw.esc.open() {
					out = dw.finishSequence(out, dec)
				} else if len(dw.seq) >= maxSequence {
					// Long OSC strings go out in pieces.
					out = append(out, dw.seq...)
					dw.seq = dw.seq[:0]
				}
				continue
			}
			out = append(out, dw.seq...)
			dw.seq = dw.seq[:0]
		}

		switch {
		case b == codepage.ESC:
			out = dw.flushText(out)
			dw.esc.begin()
			dw.seq = append(dw.seq[:0], b)
		case dec && (b == shiftOut || b == shiftIn):
			out = dw.flushText(out)
			dw.shifted = b == shiftOut
		case codepage.IsControl(b):
			out = dw.flushText(out)
			out = append(out, b)
		default:
			out = dw.text(out, b, dec)
		}
	}

	dw.out = out
	if len(out) > 0 {
		if _, err := dw.w.Write(out); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

func (dw *DisplayWriter) text(out []byte, b byte, dec bool) []byte {
	if dec && b >= 0x20 && b < 0x7F {
		set := dw.g[0]
		if dw.shifted {
			set = dw.g[1]
		}
		out, _ = utf8codec.AppendRune(out, codepage.MapDEC(set, b))
		return out
	}
	dw.runes = dw.s.DecodeByte(dw.runes[:0], b)
	return appendRunes(out, dw.runes)
}

func (dw *DisplayWriter) flushText(out []byte) []byte {
	dw.runes = dw.s.Flush(dw.runes[:0])
	return appendRunes(out, dw.runes)
}

func (dw *DisplayWriter) finishSequence(out []byte, dec bool) []byte {
	seq := dw.seq
	dw.seq = dw.seq[:0]
	if dec && len(seq) == 3 {
		if set, ok := codepage.DECCharsetForFinal(seq[2]); ok {
			switch seq[1] {
			case '(':
				dw.g[0] = set
				return out
			case ')':
				dw.g[1] = set
				return out
			case '*', '+':
				// G2/G3 are never invoked into GL here.
				return out
			}
		}
	}
	return append(out, seq...)
}

func appendRunes(out []byte, runes []rune) []byte {
	for _, r := range runes {
		var ok bool
		if out, ok = utf8codec.AppendRune(out, r); !ok {
			out, _ = utf8codec.AppendRune(out, utf8codec.ReplacementChar)
		}
	}
	return out
}
