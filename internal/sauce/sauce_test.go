package sauce

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stlalpha/codepage/internal/codepage"
)

type recordSpec struct {
	title, author, group, date, font string
	width, height                    uint16
	flags                            byte
	comments                         []string
}

func buildRecord(s recordSpec) []byte {
	var out []byte
	if len(s.comments) > 0 {
		out = append(out, commentID...)
		for _, c := range s.comments {
			line := make([]byte, commentLine)
			copy(line, bytes.Repeat([]byte(" "), commentLine))
			copy(line, c)
			out = append(out, line...)
		}
	}
	rec := make([]byte, RecordSize)
	pad := func(off, n int, v string) {
		copy(rec[off:off+n], bytes.Repeat([]byte(" "), n))
		copy(rec[off:off+n], v)
	}
	copy(rec, "SAUCE00")
	pad(7, 35, s.title)
	pad(42, 20, s.author)
	pad(62, 20, s.group)
	pad(82, 8, s.date)
	rec[94] = 1 // character
	rec[95] = 1 // ANSi
	binary.LittleEndian.PutUint16(rec[96:], s.width)
	binary.LittleEndian.PutUint16(rec[98:], s.height)
	rec[104] = byte(len(s.comments))
	rec[105] = s.flags
	copy(rec[106:], s.font)
	return append(out, rec...)
}

func TestStrip(t *testing.T) {
	art := []byte("ANSI art content here\r\n\x1b[1;31m\xDB\xDB\x1b[0m")
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "No SAUCE metadata",
			input:    []byte("Hello, World!\x1B[1;31mRed Text\x1B[0m"),
			expected: []byte("Hello, World!\x1B[1;31mRed Text\x1B[0m"),
		},
		{
			name:     "File too small for SAUCE",
			input:    []byte("Small file"),
			expected: []byte("Small file"),
		},
		{
			name:     "SAUCE with EOF marker",
			input:    append(append(append([]byte{}, art...), codepage.SUB), buildRecord(recordSpec{title: "x"})...),
			expected: art,
		},
		{
			name:     "SAUCE without EOF marker",
			input:    append(append([]byte{}, art...), buildRecord(recordSpec{title: "x"})...),
			expected: art,
		},
		{
			name:     "Comment block without EOF marker",
			input:    append(append([]byte{}, art...), buildRecord(recordSpec{comments: []string{"hi"}})...),
			expected: art,
		},
		{
			name:     "Comment block with EOF marker",
			input:    append(append(append([]byte{}, art...), codepage.SUB), buildRecord(recordSpec{comments: []string{"one", "two"}})...),
			expected: art,
		},
		{
			name: "Malformed SAUCE - no SAUCE signature",
			input: func() []byte {
				padding := make([]byte, RecordSize)
				copy(padding, "NOTASAUCE")
				return append([]byte("Normal content"), padding...)
			}(),
			expected: func() []byte {
				padding := make([]byte, RecordSize)
				copy(padding, "NOTASAUCE")
				return append([]byte("Normal content"), padding...)
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Strip(tt.input)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Strip() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := append([]byte("art\x1a"), buildRecord(recordSpec{
		title:    "Caf\x82 Noir", // é in CP437
		author:   "someone",
		group:    "ACiD",
		date:     "19960301",
		font:     "IBM VGA 850",
		width:    80,
		height:   25,
		flags:    0x01,
		comments: []string{"first line", "second"},
	})...)

	rec, ok := Parse(data)
	if !ok {
		t.Fatal("Parse found no record")
	}
	if rec.Version != "00" {
		t.Errorf("Version = %q", rec.Version)
	}
	if rec.Title != "Café Noir" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Author != "someone" || rec.Group != "ACiD" || rec.Date != "19960301" {
		t.Errorf("unexpected fields: %+v", rec)
	}
	if rec.Width() != 80 || rec.Height() != 25 {
		t.Errorf("size = %dx%d", rec.Width(), rec.Height())
	}
	if !rec.ICEColors() {
		t.Error("ICEColors not set")
	}
	if len(rec.Comments) != 2 || rec.Comments[0] != "first line" || rec.Comments[1] != "second" {
		t.Errorf("Comments = %q", rec.Comments)
	}
	if rec.Font != "IBM VGA 850" {
		t.Errorf("Font = %q", rec.Font)
	}
}

func TestParseNoRecord(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("short"), make([]byte, 200)} {
		if _, ok := Parse(data); ok {
			t.Errorf("Parse(%d bytes) found a record", len(data))
		}
	}
}

func TestCodepage(t *testing.T) {
	tests := []struct {
		font string
		want codepage.Codepage
		ok   bool
	}{
		{"IBM VGA", codepage.CP437, true},
		{"IBM VGA 437", codepage.CP437, true},
		{"IBM EGA43 850", codepage.CP850, true},
		{"IBM VGA50 866", codepage.CP866, true},
		{"IBM VGA 819", codepage.ISO8859_1, true},
		{"IBM VGA 737", codepage.CP737, true},
		{"IBM VGA 855", codepage.Default, false},
		{"IBM VGA MIK", codepage.Default, false},
		{"Amiga Topaz 2+", codepage.Default, false},
		{"", codepage.Default, false},
	}
	for _, tt := range tests {
		got, ok := Record{Font: tt.font}.Codepage()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Codepage(%q) = %v, %v; want %v, %v", tt.font, got, ok, tt.want, tt.ok)
		}
	}
}
