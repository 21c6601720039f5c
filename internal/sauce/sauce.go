// Package sauce reads the SAUCE metadata record that ANSI art files carry
// after their content, and strips it so the record is not displayed.
//
// A SAUCE record is the final 128 bytes of a file, starting with "SAUCE".
// It may be preceded by a comment block ("COMNT" followed by 64-byte lines)
// and is normally preceded by an EOF marker (0x1A).
package sauce

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/logging"
)

const (
	RecordSize  = 128
	commentLine = 64
	eofMarker   = codepage.SUB

	// Searching back for the EOF marker stops after this many bytes.
	maxCommentSearch = 65536
)

var (
	recordID  = []byte("SAUCE")
	commentID = []byte("COMNT")
)

// Record is a parsed SAUCE record. Text fields are decoded from CP437 with
// padding removed.
type Record struct {
	Version  string
	Title    string
	Author   string
	Group    string
	Date     string // CCYYMMDD
	FileSize uint32
	DataType byte
	FileType byte
	TInfo    [4]uint16
	Comments []string
	Flags    byte
	Font     string
}

// Width returns the character width recorded for character and binary
// text files, or 0.
func (r Record) Width() int { return int(r.TInfo[0]) }

// Height returns the recorded number of lines, or 0.
func (r Record) Height() int { return int(r.TInfo[1]) }

// ICEColors reports whether the non-blink (iCE color) flag is set.
func (r Record) ICEColors() bool { return r.Flags&0x01 != 0 }

// Parse returns the SAUCE record at the end of data.
func Parse(data []byte) (Record, bool) {
	if len(data) < RecordSize {
		return Record{}, false
	}
	start := len(data) - RecordSize
	raw := data[start:]
	if !bytes.HasPrefix(raw, recordID) {
		return Record{}, false
	}

	rec := Record{
		Version:  text(raw[5:7]),
		Title:    text(raw[7:42]),
		Author:   text(raw[42:62]),
		Group:    text(raw[62:82]),
		Date:     text(raw[82:90]),
		FileSize: binary.LittleEndian.Uint32(raw[90:94]),
		DataType: raw[94],
		FileType: raw[95],
		Flags:    raw[105],
		Font:     text(raw[106:128]),
	}
	for i := range rec.TInfo {
		rec.TInfo[i] = binary.LittleEndian.Uint16(raw[96+2*i:])
	}

	if n := int(raw[104]); n > 0 {
		cstart := start - len(commentID) - n*commentLine
		if cstart >= 0 && bytes.HasPrefix(data[cstart:], commentID) {
			lines := data[cstart+len(commentID) : start]
			for i := 0; i < n; i++ {
				rec.Comments = append(rec.Comments, text(lines[i*commentLine:(i+1)*commentLine]))
			}
		}
	}
	return rec, true
}

// text decodes a CP437 field and trims its space or NUL padding.
func text(field []byte) string {
	out, err := codepage.Encoding(codepage.CP437).NewDecoder().Bytes(field)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), " \x00")
}

// Strip returns data without its SAUCE record, comment block and EOF
// marker. Data with no record is returned unchanged.
func Strip(data []byte) []byte {
	if len(data) < RecordSize {
		return data
	}
	start := len(data) - RecordSize
	if !bytes.HasPrefix(data[start:], recordID) {
		return data
	}
	logging.Debug("SAUCE metadata detected, stripping from content")

	// The EOF marker normally sits right before the record or its comment
	// block, but some writers leave padding in between.
	for i := start - 1; i >= 0 && start-i <= maxCommentSearch; i-- {
		if data[i] == eofMarker {
			logging.Debug("Found EOF marker at position %d, trimming content", i)
			return data[:i]
		}
	}

	if n := int(data[start+104]); n > 0 {
		cstart := start - len(commentID) - n*commentLine
		if cstart >= 0 && bytes.HasPrefix(data[cstart:], commentID) {
			return data[:cstart]
		}
	}
	logging.Debug("No EOF marker found, removing SAUCE record only")
	return data[:start]
}

// Codepage returns the codepage named by the record's font, such as
// "IBM VGA 850". A bare IBM font name means CP437. Non-IBM fonts (Amiga,
// Atari) have no codepage here.
func (r Record) Codepage() (codepage.Codepage, bool) {
	fields := strings.Fields(r.Font)
	if len(fields) < 2 || fields[0] != "IBM" {
		return codepage.Default, false
	}
	if len(fields) == 2 {
		return codepage.CP437, true
	}
	num := fields[len(fields)-1]
	if _, err := strconv.Atoi(num); err != nil {
		return codepage.Default, false
	}
	if num == "819" {
		return codepage.ISO8859_1, true
	}
	c, err := codepage.Lookup("CP" + num)
	if err != nil {
		return codepage.Default, false
	}
	return c, true
}
