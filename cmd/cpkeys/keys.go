package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/codepage/internal/keyboard"
)

// teaKeys maps the bubbletea key types that have a fixed keystroke.
// Ctrl+letter is handled by range in keystrokeFromTea. bubbletea aliases
// some of its control types (Tab is Ctrl+I, Enter is Ctrl+M, Esc is Ctrl+[,
// Backspace is Ctrl+?), so only one name for each appears here.
var teaKeys = map[tea.KeyType]keyboard.Keystroke{
	tea.KeyEnter:     {Key: keyboard.KeyEnter},
	tea.KeyTab:       {Key: keyboard.KeyTab},
	tea.KeyShiftTab:  {Key: keyboard.KeyBacktab},
	tea.KeyBackspace: {Key: keyboard.KeyBackspace},
	tea.KeyEsc:       {Key: keyboard.KeyEscape},
	tea.KeySpace:     keyboard.RuneKey(' '),

	tea.KeyInsert: {Key: keyboard.KeyInsert},
	tea.KeyDelete: {Key: keyboard.KeyDelete},
	tea.KeyPgUp:   {Key: keyboard.KeyPageUp},
	tea.KeyPgDown: {Key: keyboard.KeyPageDown},

	tea.KeyCtrlPgUp:   {Key: keyboard.KeyPageUp, Mod: keyboard.ModCtrl},
	tea.KeyCtrlPgDown: {Key: keyboard.KeyPageDown, Mod: keyboard.ModCtrl},

	tea.KeyUp:    {Key: keyboard.KeyUp},
	tea.KeyDown:  {Key: keyboard.KeyDown},
	tea.KeyRight: {Key: keyboard.KeyRight},
	tea.KeyLeft:  {Key: keyboard.KeyLeft},
	tea.KeyHome:  {Key: keyboard.KeyHome},
	tea.KeyEnd:   {Key: keyboard.KeyEnd},

	tea.KeyShiftUp:    {Key: keyboard.KeyUp, Mod: keyboard.ModShift},
	tea.KeyShiftDown:  {Key: keyboard.KeyDown, Mod: keyboard.ModShift},
	tea.KeyShiftRight: {Key: keyboard.KeyRight, Mod: keyboard.ModShift},
	tea.KeyShiftLeft:  {Key: keyboard.KeyLeft, Mod: keyboard.ModShift},
	tea.KeyShiftHome:  {Key: keyboard.KeyHome, Mod: keyboard.ModShift},
	tea.KeyShiftEnd:   {Key: keyboard.KeyEnd, Mod: keyboard.ModShift},

	tea.KeyCtrlUp:    {Key: keyboard.KeyUp, Mod: keyboard.ModCtrl},
	tea.KeyCtrlDown:  {Key: keyboard.KeyDown, Mod: keyboard.ModCtrl},
	tea.KeyCtrlRight: {Key: keyboard.KeyRight, Mod: keyboard.ModCtrl},
	tea.KeyCtrlLeft:  {Key: keyboard.KeyLeft, Mod: keyboard.ModCtrl},
	tea.KeyCtrlHome:  {Key: keyboard.KeyHome, Mod: keyboard.ModCtrl},
	tea.KeyCtrlEnd:   {Key: keyboard.KeyEnd, Mod: keyboard.ModCtrl},

	tea.KeyCtrlShiftUp:    {Key: keyboard.KeyUp, Mod: keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftDown:  {Key: keyboard.KeyDown, Mod: keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftRight: {Key: keyboard.KeyRight, Mod: keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftLeft:  {Key: keyboard.KeyLeft, Mod: keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftHome:  {Key: keyboard.KeyHome, Mod: keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftEnd:   {Key: keyboard.KeyEnd, Mod: keyboard.ModCtrl | keyboard.ModShift},

	tea.KeyF1:  {Key: keyboard.KeyF1},
	tea.KeyF2:  {Key: keyboard.KeyF2},
	tea.KeyF3:  {Key: keyboard.KeyF3},
	tea.KeyF4:  {Key: keyboard.KeyF4},
	tea.KeyF5:  {Key: keyboard.KeyF5},
	tea.KeyF6:  {Key: keyboard.KeyF6},
	tea.KeyF7:  {Key: keyboard.KeyF7},
	tea.KeyF8:  {Key: keyboard.KeyF8},
	tea.KeyF9:  {Key: keyboard.KeyF9},
	tea.KeyF10: {Key: keyboard.KeyF10},
	tea.KeyF11: {Key: keyboard.KeyF11},
	tea.KeyF12: {Key: keyboard.KeyF12},

	tea.KeyCtrlAt:           {Key: keyboard.KeyRune, Rune: '@', Mod: keyboard.ModCtrl},
	tea.KeyCtrlBackslash:    {Key: keyboard.KeyRune, Rune: '\\', Mod: keyboard.ModCtrl},
	tea.KeyCtrlCloseBracket: {Key: keyboard.KeyRune, Rune: ']', Mod: keyboard.ModCtrl},
	tea.KeyCtrlCaret:        {Key: keyboard.KeyRune, Rune: '^', Mod: keyboard.ModCtrl},
	tea.KeyCtrlUnderscore:   {Key: keyboard.KeyRune, Rune: '_', Mod: keyboard.ModCtrl},
}

// keystrokeFromTea converts a bubbletea key event. Pasted text (more than
// one rune in a single event) and key types with no keystroke report false.
func keystrokeFromTea(msg tea.KeyMsg) (keyboard.Keystroke, bool) {
	var alt keyboard.Modifier
	if msg.Alt {
		alt = keyboard.ModAlt
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return keyboard.Keystroke{}, false
		}
		return keyboard.Keystroke{Key: keyboard.KeyRune, Rune: msg.Runes[0], Mod: alt}, true
	}
	if ks, ok := teaKeys[msg.Type]; ok {
		ks.Mod |= alt
		return ks, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return keyboard.Keystroke{Key: keyboard.KeyRune, Rune: r, Mod: keyboard.ModCtrl | alt}, true
	}
	return keyboard.Keystroke{}, false
}
