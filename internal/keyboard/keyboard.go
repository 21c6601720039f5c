// Package keyboard turns keystrokes into the bytes a VT100/xterm style host
// expects.
//
// Control and navigation keys produce the same bytes in every codepage.
// Printable characters go through a RuneEncoder, normally the active
// codepage.Translator, so they come out in the host's encoding. Encoding has
// no side effects; transmitting the result is the caller's business.
package keyboard

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/stlalpha/codepage/internal/codepage"
)

// ErrNoSequence is returned for keystrokes that have no byte sequence, such
// as Ctrl with a character that has no control equivalent.
var ErrNoSequence = errors.New("keyboard: no byte sequence for keystroke")

// RuneEncoder encodes a printable character in the host's encoding.
// *codepage.Translator satisfies it.
type RuneEncoder interface {
	EncodeRune(r rune) ([]byte, error)
}

// Options are the terminal modes that change what keys send.
type Options struct {
	// ApplicationCursor (DECCKM) makes unmodified arrows send SS3 instead of CSI.
	ApplicationCursor bool
	// BackspaceSendsDEL selects DEL (0x7F) for Backspace; otherwise BS (0x08).
	BackspaceSendsDEL bool
	// NewlineMode (LNM) makes Enter send CR LF.
	NewlineMode bool
}

// DefaultOptions matches a VT220 out of the box.
func DefaultOptions() Options {
	return Options{BackspaceSendsDEL: true}
}

// Encoder encodes keystrokes. Options may be changed while other goroutines
// encode.
type Encoder struct {
	runes RuneEncoder

	mu   sync.RWMutex
	opts Options
}

// NewEncoder creates an encoder that sends printable characters through
// runes. A nil runes uses the process-wide codepage selection.
func NewEncoder(runes RuneEncoder, opts Options) *Encoder {
	if runes == nil {
		runes = codepage.DefaultTranslator()
	}
	return &Encoder{runes: runes, opts: opts}
}

// Options returns the current modes.
func (e *Encoder) Options() Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts
}

// SetOptions replaces the modes.
func (e *Encoder) SetOptions(opts Options) {
	e.mu.Lock()
	e.opts = opts
	e.mu.Unlock()
}

// Encode returns the bytes for ks. A printable character the active
// codepage cannot represent yields an error wrapping
// codepage.ErrUnrepresentable, leaving substitution to the caller.
func (e *Encoder) Encode(ks Keystroke) ([]byte, error) {
	opts := e.Options()

	switch ks.Key {
	case KeyRune:
		return e.encodeRune(ks)
	case KeyEnter:
		if opts.NewlineMode {
			return metaPrefix(ks.Mod, codepage.CR, codepage.LF), nil
		}
		return metaPrefix(ks.Mod, codepage.CR), nil
	case KeyTab:
		if ks.Mod&ModShift != 0 {
			return metaPrefix(ks.Mod, codepage.ESC, '[', 'Z'), nil
		}
		return metaPrefix(ks.Mod, codepage.HT), nil
	case KeyBacktab:
		return metaPrefix(ks.Mod, codepage.ESC, '[', 'Z'), nil
	case KeyBackspace:
		if opts.BackspaceSendsDEL {
			return metaPrefix(ks.Mod, codepage.DEL), nil
		}
		return metaPrefix(ks.Mod, codepage.BS), nil
	case KeyEscape:
		return metaPrefix(ks.Mod, codepage.ESC), nil
	case KeyUp, KeyDown, KeyRight, KeyLeft:
		final := cursorFinal[ks.Key]
		if ks.Mod == ModNone && opts.ApplicationCursor {
			return []byte{codepage.ESC, 'O', final}, nil
		}
		return csiLetter(final, ks.Mod), nil
	case KeyHome:
		return csiLetter('H', ks.Mod), nil
	case KeyEnd:
		return csiLetter('F', ks.Mod), nil
	case KeyF1, KeyF2, KeyF3, KeyF4:
		final := byte('P') + byte(ks.Key-KeyF1)
		if ks.Mod == ModNone {
			return []byte{codepage.ESC, 'O', final}, nil
		}
		return csiLetter(final, ks.Mod), nil
	}

	if n, ok := tildeCodes[ks.Key]; ok {
		return csiTilde(n, ks.Mod), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNoSequence, ks)
}

func (e *Encoder) encodeRune(ks Keystroke) ([]byte, error) {
	if ks.Mod&ModCtrl != 0 {
		c, ok := ControlByte(ks.Rune)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoSequence, ks)
		}
		return metaPrefix(ks.Mod, c), nil
	}
	b, err := e.runes.EncodeRune(ks.Rune)
	if err != nil {
		return nil, fmt.Errorf("keyboard: encode %q: %w", ks.Rune, err)
	}
	if ks.Mod&ModAlt != 0 {
		return append([]byte{codepage.ESC}, b...), nil
	}
	return b, nil
}

// ControlByte returns the byte Ctrl+r sends. Letters map to 0x01-0x1A in
// either case; the rest follow the VT220 keyboard.
func ControlByte(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r-'a') + 1, true
	case r >= 'A' && r <= 'Z':
		return byte(r-'A') + 1, true
	}
	switch r {
	case '@', ' ', '2':
		return codepage.NUL, true
	case '[', '3':
		return codepage.ESC, true
	case '\\', '4':
		return 0x1C, true
	case ']', '5':
		return 0x1D, true
	case '^', '6', '~':
		return 0x1E, true
	case '_', '7', '/':
		return 0x1F, true
	case '?', '8':
		return codepage.DEL, true
	}
	return 0, false
}

var cursorFinal = map[Key]byte{
	KeyUp:    'A',
	KeyDown:  'B',
	KeyRight: 'C',
	KeyLeft:  'D',
}

// tildeCodes are the parameters of the "CSI n ~" keys.
var tildeCodes = map[Key]int{
	KeyInsert:   2,
	KeyDelete:   3,
	KeyPageUp:   5,
	KeyPageDown: 6,
	KeyF5:       15,
	KeyF6:       17,
	KeyF7:       18,
	KeyF8:       19,
	KeyF9:       20,
	KeyF10:      21,
	KeyF11:      23,
	KeyF12:      24,
}

// modParam is the xterm modifier parameter.
func modParam(m Modifier) int {
	return 1 + int(m&(ModShift|ModAlt|ModCtrl))
}

func metaPrefix(m Modifier, b ...byte) []byte {
	if m&ModAlt != 0 {
		return append([]byte{codepage.ESC}, b...)
	}
	return b
}

// csiLetter builds "CSI X" or "CSI 1 ; m X".
func csiLetter(final byte, m Modifier) []byte {
	if m == ModNone {
		return []byte{codepage.ESC, '[', final}
	}
	seq := []byte{codepage.ESC, '[', '1', ';'}
	seq = strconv.AppendInt(seq, int64(modParam(m)), 10)
	return append(seq, final)
}

// csiTilde builds "CSI n ~" or "CSI n ; m ~".
func csiTilde(n int, m Modifier) []byte {
	seq := []byte{codepage.ESC, '['}
	seq = strconv.AppendInt(seq, int64(n), 10)
	if m != ModNone {
		seq = append(seq, ';')
		seq = strconv.AppendInt(seq, int64(modParam(m)), 10)
	}
	return append(seq, '~')
}
