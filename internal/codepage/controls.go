package codepage

// C0 control characters used by terminal protocols.
const (
	NUL  byte = 0x00
	SOH  byte = 0x01
	STX  byte = 0x02
	EOT  byte = 0x04
	ACK  byte = 0x06
	BS   byte = 0x08
	HT   byte = 0x09
	LF   byte = 0x0A
	CR   byte = 0x0D
	XON  byte = 0x11 // DC1
	XOFF byte = 0x13 // DC3
	NAK  byte = 0x15
	CAN  byte = 0x18
	SUB  byte = 0x1A
	ESC  byte = 0x1B
	DEL  byte = 0x7F
)

// CP437 byte positions of glyphs commonly drawn by terminal programs.
const (
	// Hatch is the light shade block. The medium shade (0xB1) has been used
	// for this in the past.
	Hatch         byte = 0xB0
	DoubleBar     byte = 0xCD
	Box           byte = 0xFE
	Check         byte = 0xFB
	Triplet       byte = 0xF0
	Omega         byte = 0xEA
	Pi            byte = 0xE3
	UpArrow       byte = 0x18
	DownArrow     byte = 0x19
	RightArrow    byte = 0x1A
	LeftArrow     byte = 0x1B
	SingleBar     byte = 0xC4
	BackArrowhead byte = 0x11
	LRCorner      byte = 0xD9
	Degree        byte = 0xF8
	PlusMinus     byte = 0xF1

	// Blank is the VT52 "blank" position.
	Blank byte = 0x20
)

// CP437 positions of the window frame pieces.
const (
	WindowTop                byte = DoubleBar
	WindowLeftTop            byte = 0xD5
	WindowRightTop           byte = 0xB8
	WindowSide               byte = 0xB3
	WindowLeftBottom         byte = 0xD4
	WindowRightBottom        byte = 0xBE
	WindowLeftTee            byte = 0xC6
	WindowRightTee           byte = 0xB5
	WindowLeftTopDoubleSide  byte = 0xD6
	WindowRightTopDoubleSide byte = 0xB7
)

// IsControl reports whether b is a C0 control or DEL. Translation tables are
// never overlaid on these bytes by terminal streams.
func IsControl(b byte) bool {
	return b < 0x20 || b == DEL
}
