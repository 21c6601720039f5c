// Package terminalio sits between a host byte stream and a local UTF-8
// terminal. Escape sequences and C0 controls pass through untouched;
// only printable text is translated.
package terminalio

// ansiState tracks the parser state for escape sequences.
type ansiState int

const (
	ansiStateGround    ansiState = iota // Normal text processing
	ansiStateEscape                     // Saw ESC (\x1b)
	ansiStateCSI                        // Saw ESC [ (Control Sequence Introducer)
	ansiStateString                     // OSC, DCS, APC, PM or SOS body, ends at BEL or ST
	ansiStateStringEsc                  // Saw ESC inside a string, expecting '\'
	ansiStateDesignate                  // Saw ESC ( ) * or +, expecting the set final
)

const maxSequence = 256

// escapeTracker follows escape sequences across Write calls so a sequence
// split between two writes is still recognised.
type escapeTracker struct {
	state ansiState
	inter byte // intermediate of a designation, '(' for G0
	n     int  // bytes seen in the current sequence
}

// step consumes b while a sequence is open. It reports whether b belonged to
// the sequence; false means the sequence ended before b and b should be
// treated as ground text.
func (e *escapeTracker) step(b byte) bool {
	e.n++
	if e.n > maxSequence && e.state != ansiStateString && e.state != ansiStateStringEsc {
		e.state = ansiStateGround
		return false
	}
	switch e.state {
	case ansiStateEscape:
		switch b {
		case '[':
			e.state = ansiStateCSI
		case ']', 'P', 'X', '^', '_':
			e.state = ansiStateString
		case '(', ')', '*', '+':
			e.state = ansiStateDesignate
			e.inter = b
		default:
			if b >= 0x80 {
				// ESC followed by text is Alt+key from a keyboard; let
				// the text be translated.
				e.state = ansiStateGround
				return false
			}
			e.state = ansiStateGround
		}
	case ansiStateCSI:
		if b == 0x1B {
			// ESC cancels the sequence and starts the next one.
			e.state = ansiStateGround
			return false
		}
		if b >= 0x40 && b <= 0x7E {
			e.state = ansiStateGround
		}
	case ansiStateString:
		switch b {
		case 0x07:
			e.state = ansiStateGround
		case 0x1B:
			e.state = ansiStateStringEsc
		}
	case ansiStateStringEsc:
		if b == '\\' {
			e.state = ansiStateGround
		} else {
			e.state = ansiStateString
		}
	case ansiStateDesignate:
		e.state = ansiStateGround
		if b == 0x1B {
			return false
		}
	}
	return true
}

func (e *escapeTracker) begin() {
	e.state = ansiStateEscape
	e.n = 1
}

func (e *escapeTracker) open() bool {
	return e.state != ansiStateGround
}
