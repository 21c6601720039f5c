package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth  = 3 // glyph padded to two columns plus a space
	labelWidth = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	glyphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
)

func gridWidth() int {
	return labelWidth + 16*cellWidth + 2
}

// cellText returns the two-column text shown for r and the style for it.
// Zero-width and control code points are shown as a placeholder since they
// would otherwise shift the grid.
func cellText(r rune) (string, lipgloss.Style) {
	switch {
	case r == 0xFFFD:
		return "--", missingStyle
	case r < 0x20 || r >= 0x7F && r < 0xA0:
		return "··", controlStyle
	}
	w := runewidth.RuneWidth(r)
	switch w {
	case 0:
		return "··", controlStyle
	case 1:
		return string(r) + " ", glyphStyle
	default:
		return string(r), glyphStyle
	}
}

// renderTable draws cells (128 or 256 entries) as rows of 16. base is the
// byte value of cells[0].
func renderTable(title string, cells []rune, base int, styled bool) string {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for col := 0; col < 16; col++ {
		b.WriteString(paint(headerStyle, fmt.Sprintf("%X  ", col)))
	}
	b.WriteByte('\n')

	for row := 0; row*16 < len(cells); row++ {
		b.WriteString(paint(headerStyle, fmt.Sprintf("%X_  ", (base>>4+row)&0xF)))
		for col := 0; col < 16 && row*16+col < len(cells); col++ {
			text, style := cellText(cells[row*16+col])
			b.WriteString(paint(style, text))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	grid := strings.TrimRight(b.String(), "\n")
	if !styled {
		return title + "\n" + grid + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(" "+title+" "), frameStyle.Render(grid)) + "\n"
}
