package main

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/stlalpha/codepage/internal/codepage"
)

func TestParseDECSet(t *testing.T) {
	tests := []struct {
		name string
		want codepage.DECCharset
	}{
		{"UK", codepage.DECUK},
		{"special graphics", codepage.DECSpecialGraphics},
		{"SpecialGraphics", codepage.DECSpecialGraphics},
		{"0", codepage.DECSpecialGraphics},
		{"vt52 graphics", codepage.VT52Graphics},
		{"french canadian", codepage.DECFrenchCanadian},
	}
	for _, tt := range tests {
		got, err := parseDECSet(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("parseDECSet(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := parseDECSet("martian"); err == nil {
		t.Error("expected error for unknown set")
	}
}

func TestCellTextWidth(t *testing.T) {
	for _, r := range []rune{'A', '░', 0x0301, 0x0085, 0x0007, 0xFFFD} {
		text, _ := cellText(r)
		if w := runewidth.StringWidth(text); w != 2 {
			t.Errorf("cellText(%U) = %q has width %d", r, text, w)
		}
	}
}

func TestRenderTablePlain(t *testing.T) {
	tbl, _ := codepage.TableFor(codepage.CP437)
	out := renderTable("CP437", tbl[:], 0, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, header, 16 rows
	if len(lines) != 18 {
		t.Fatalf("expected 18 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[13], "B_  ░") {
		t.Errorf("row B = %q", lines[13])
	}
	want := runewidth.StringWidth(lines[2])
	for i, line := range lines[2:] {
		if w := runewidth.StringWidth(line); w != want {
			t.Errorf("row %X width %d, want %d", i, w, want)
		}
	}
}

func TestRenderDECTable(t *testing.T) {
	tbl := codepage.DECTable(codepage.DECSpecialGraphics)
	out := renderTable("DEC", tbl[:], 0, false)
	if strings.Count(out, "\n") != 10 {
		t.Fatalf("expected 8 rows plus title and header:\n%s", out)
	}
	if !strings.Contains(out, "─") {
		t.Error("line drawing glyph missing")
	}
}

func TestRenderSupplementalRows(t *testing.T) {
	tbl := codepage.DECTable(codepage.DECSupplemental)
	out := renderTable("DEC Supplemental", tbl[:], 0x80, false)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[2], "8_") || !strings.HasPrefix(lines[9], "F_") {
		t.Errorf("unexpected row labels:\n%s", out)
	}
}
