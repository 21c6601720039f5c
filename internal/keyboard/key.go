package keyboard

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Printable input is KeyRune with the
// character in Keystroke.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune

	// Control keys
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyEscape

	// Editing and navigation
	KeyInsert
	KeyDelete
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier flags. The bit values line up with the xterm modifier parameter,
// which is 1 plus the sum of the flags.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Keystroke is a single key press.
type Keystroke struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RuneKey is a keystroke for the printable character r.
func RuneKey(r rune) Keystroke {
	return Keystroke{Key: KeyRune, Rune: r}
}

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// String renders the keystroke as "ctrl+alt+up" or "alt+'x'".
func (ks Keystroke) String() string {
	name := ks.Key.String()
	if ks.Key == KeyRune {
		name = fmt.Sprintf("%q", ks.Rune)
	}
	if ks.Mod == ModNone {
		return name
	}
	return ks.Mod.String() + "+" + name
}
