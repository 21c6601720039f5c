package utf8codec

import (
	"bytes"
	"math/rand"
	"testing"
	"unicode/utf8"
)

func decodeAll(t *testing.T, in []byte) (runes []rune, final State) {
	t.Helper()
	var d Decoder
	for _, b := range in {
		r, st := d.Feed(b)
		if st == Accept {
			runes = append(runes, r)
		}
		if st == Reject {
			return runes, Reject
		}
	}
	return runes, d.State()
}

func TestEncodeDecodeRoundTripAllScalars(t *testing.T) {
	var buf, ref [MaxBytes]byte
	for r := rune(0); r <= maxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := Encode(buf[:], r)
		if want := utf8.EncodeRune(ref[:], r); n != want || !bytes.Equal(buf[:n], ref[:want]) {
			t.Fatalf("Encode(%U) = % X, want % X", r, buf[:n], ref[:want])
		}

		var d Decoder
		var got rune
		var st State
		for i := 0; i < n; i++ {
			got, st = d.Feed(buf[i])
			if i < n-1 && st == Accept {
				t.Fatalf("%U: accepted early at byte %d", r, i)
			}
		}
		if st != Accept || got != r {
			t.Fatalf("decode(% X) = %U state %v, want %U accept", buf[:n], got, st, r)
		}
	}
}

func TestEncodeRejects(t *testing.T) {
	var buf [MaxBytes]byte
	for _, r := range []rune{-1, 0xD800, 0xDBFF, 0xDC00, 0xDFFF, 0x110000, 0x7FFFFFFF} {
		buf = [MaxBytes]byte{0xAA, 0xAA, 0xAA, 0xAA}
		if n := Encode(buf[:], r); n != 0 {
			t.Errorf("Encode(%#x) = %d, want 0", r, n)
		}
		if buf != [MaxBytes]byte{0xAA, 0xAA, 0xAA, 0xAA} {
			t.Errorf("Encode(%#x) wrote to buf: % X", r, buf)
		}
	}
}

func TestEncodeShortBuffer(t *testing.T) {
	buf := make([]byte, 2)
	if n := Encode(buf, 0x20AC); n != 0 {
		t.Fatalf("Encode into 2 bytes = %d, want 0", n)
	}
	if n := Encode(buf, 'é'); n != 2 {
		t.Fatalf("Encode(é) = %d, want 2", n)
	}
}

func TestAppendRune(t *testing.T) {
	dst := []byte("x")
	dst, ok := AppendRune(dst, '€')
	if !ok || string(dst) != "x€" {
		t.Fatalf("AppendRune = %q, %v", dst, ok)
	}
	dst, ok = AppendRune(dst, 0xD800)
	if ok || string(dst) != "x€" {
		t.Fatalf("AppendRune(surrogate) = %q, %v; want unchanged, false", dst, ok)
	}
}

func TestDecodeEuroStreamsThroughPendingStates(t *testing.T) {
	state, codep := Accept, rune(0)

	state, codep = Decode(state, codep, 0xE2)
	if state == Accept || state == Reject {
		t.Fatalf("after E2: state %v, want pending", state)
	}
	state, codep = Decode(state, codep, 0x82)
	if state == Accept || state == Reject {
		t.Fatalf("after 82: state %v, want pending", state)
	}
	state, codep = Decode(state, codep, 0xAC)
	if state != Accept || codep != 0x20AC {
		t.Fatalf("after AC: state %v codep %U, want accept U+20AC", state, codep)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"overlong slash C0 80", []byte{0xC0, 0x80}},
		{"overlong C1", []byte{0xC1, 0xBF}},
		{"overlong E0", []byte{0xE0, 0x80, 0x80}},
		{"overlong E0 9F", []byte{0xE0, 0x9F, 0xBF}},
		{"overlong F0", []byte{0xF0, 0x8F, 0xBF, 0xBF}},
		{"surrogate ED A0", []byte{0xED, 0xA0, 0x80}},
		{"surrogate ED BF", []byte{0xED, 0xBF, 0xBF}},
		{"above max F4 90", []byte{0xF4, 0x90, 0x80, 0x80}},
		{"F5 lead", []byte{0xF5, 0x80, 0x80, 0x80}},
		{"FF", []byte{0xFF}},
		{"stray continuation", []byte{0x80}},
		{"truncated then ascii", []byte{0xE2, 0x82, 'a'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st := decodeAll(t, tt.in)
			if st != Reject {
				t.Fatalf("decode(% X) final state %v, want reject", tt.in, st)
			}
		})
	}
}

func TestDecodeBoundaries(t *testing.T) {
	tests := []struct {
		in   []byte
		want rune
	}{
		{[]byte{0x7F}, 0x7F},
		{[]byte{0xC2, 0x80}, 0x80},
		{[]byte{0xDF, 0xBF}, 0x7FF},
		{[]byte{0xE0, 0xA0, 0x80}, 0x800},
		{[]byte{0xED, 0x9F, 0xBF}, 0xD7FF},
		{[]byte{0xEE, 0x80, 0x80}, 0xE000},
		{[]byte{0xEF, 0xBF, 0xBF}, 0xFFFF},
		{[]byte{0xF0, 0x90, 0x80, 0x80}, 0x10000},
		{[]byte{0xF4, 0x8F, 0xBF, 0xBF}, 0x10FFFF},
	}
	for _, tt := range tests {
		runes, st := decodeAll(t, tt.in)
		if st != Accept || len(runes) != 1 || runes[0] != tt.want {
			t.Errorf("decode(% X) = %U state %v, want %U", tt.in, runes, st, tt.want)
		}
	}
}

func TestRejectIsAbsorbing(t *testing.T) {
	var d Decoder
	if _, st := d.Feed(0xC0); st != Reject {
		// C0 is rejected on its own.
		t.Fatalf("Feed(C0) state %v, want reject", st)
	}
	for _, b := range []byte("abc") {
		if _, st := d.Feed(b); st != Reject {
			t.Fatalf("Feed(%q) after reject = %v, want reject", b, st)
		}
	}
	d.Reset()
	if r, st := d.Feed('a'); st != Accept || r != 'a' {
		t.Fatalf("after Reset Feed('a') = %q %v", r, st)
	}
}

func TestPending(t *testing.T) {
	var d Decoder
	if d.Pending() {
		t.Fatal("zero Decoder should not be pending")
	}
	d.Feed(0xF0)
	if !d.Pending() {
		t.Fatal("after F0 decoder should be pending")
	}
	d.Reset()
	if d.Pending() || d.State() != Accept {
		t.Fatalf("after Reset state %v", d.State())
	}
}

func TestRandomBytesNeverPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 4096)
	for round := 0; round < 64; round++ {
		rng.Read(buf)
		var d Decoder
		for _, b := range buf {
			r, st := d.Feed(b)
			switch st {
			case Reject:
				d.Reset()
			case Accept:
				if !utf8.ValidRune(r) {
					t.Fatalf("accepted invalid rune %U", r)
				}
			}
		}
	}
}

func TestStateString(t *testing.T) {
	if Accept.String() != "accept" || Reject.String() != "reject" {
		t.Fatalf("got %q %q", Accept.String(), Reject.String())
	}
	if got := State(5).String(); got != "State(5)" {
		t.Fatalf("State(5).String() = %q", got)
	}
}
