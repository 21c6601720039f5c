package session

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
)

func newSession(t *testing.T, c codepage.Codepage) (*Session, *codepage.Translator) {
	t.Helper()
	tr := codepage.NewTranslator(c)
	s := New(t.Name(), tr, keyboard.DefaultOptions())
	t.Cleanup(s.Close)
	return s, tr
}

func TestDecodeSingleByte(t *testing.T) {
	s, tr := newSession(t, codepage.CP437)
	if got := string(s.Decode(nil, []byte{0xB0, 'A'})); got != "░A" {
		t.Fatalf("CP437 decode = %q", got)
	}
	_ = tr.SetActive(codepage.ISO8859_1)
	if got := string(s.Decode(nil, []byte{0xB0})); got != "°" {
		t.Fatalf("ISO-8859-1 decode = %q", got)
	}
}

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("hello"), "hello"},
		{"euro", []byte{0xE2, 0x82, 0xAC}, "€"},
		{"overlong", []byte{0xC0, 0x80}, "��"},
		{"truncated then ascii", []byte{0xE2, 0x82, 'a'}, "�a"},
		{"truncated then lead", []byte{0xE2, 0xC3, 0xA9}, "�é"},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, "���"},
		{"stray continuation", []byte{'x', 0x80, 'y'}, "x�y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t, codepage.UTF8)
			if got := string(s.Decode(nil, tt.in)); got != tt.want {
				t.Fatalf("decode(% X) = %q, want %q", tt.in, got, tt.want)
			}
			if s.Pending() {
				t.Fatal("decoder left pending")
			}
		})
	}
}

func TestDecodeUTF8AcrossCalls(t *testing.T) {
	s, _ := newSession(t, codepage.UTF8)
	var out []rune
	out = s.Decode(out, []byte{0xE2})
	out = s.Decode(out, []byte{0x82})
	if len(out) != 0 || !s.Pending() {
		t.Fatalf("after two bytes: %q pending=%v", string(out), s.Pending())
	}
	out = s.DecodeByte(out, 0xAC)
	if string(out) != "€" {
		t.Fatalf("got %q", string(out))
	}
}

func TestFlush(t *testing.T) {
	s, _ := newSession(t, codepage.UTF8)
	out := s.Decode(nil, []byte{0xF0, 0x9F})
	out = s.Flush(out)
	if string(out) != "�" {
		t.Fatalf("flush = %q", string(out))
	}
	if s.Rejected() != 1 {
		t.Fatalf("Rejected() = %d", s.Rejected())
	}
	if got := s.Flush(nil); len(got) != 0 {
		t.Fatalf("second flush = %q", string(got))
	}
}

func TestRefreshResetsDecoder(t *testing.T) {
	s, tr := newSession(t, codepage.UTF8)
	s.Decode(nil, []byte{0xE2, 0x82})
	if !s.Pending() {
		t.Fatal("expected pending sequence")
	}
	tr.Refresh()
	if s.Pending() {
		t.Fatal("Refresh did not reset the decoder")
	}
	if got := string(s.Decode(nil, []byte("ok"))); got != "ok" {
		t.Fatalf("after refresh decode = %q", got)
	}
}

func TestSetActiveWithoutRefreshKeepsSequence(t *testing.T) {
	s, tr := newSession(t, codepage.UTF8)
	s.Decode(nil, []byte{0xE2, 0x82})
	_ = tr.SetActive(codepage.CP437)
	if got := string(s.Decode(nil, []byte{0xAC})); got != "€" {
		t.Fatalf("in-flight sequence not completed: %q", got)
	}
	if got := string(s.Decode(nil, []byte{0xB0})); got != "░" {
		t.Fatalf("next byte not CP437: %q", got)
	}
}

func TestClosedSessionIgnoresRefresh(t *testing.T) {
	s, tr := newSession(t, codepage.UTF8)
	s.Close()
	s.Decode(nil, []byte{0xE2})
	tr.Refresh()
	if !s.Pending() {
		t.Fatal("closed session was reset by Refresh")
	}
}

func TestEncodeRuneSubstitutes(t *testing.T) {
	s, _ := newSession(t, codepage.CP437)
	if got := s.EncodeRune('é'); !bytes.Equal(got, []byte{0x82}) {
		t.Fatalf("EncodeRune(é) = % X", got)
	}
	if got := s.EncodeRune('€'); !bytes.Equal(got, []byte{'?'}) {
		t.Fatalf("EncodeRune(€) = % X", got)
	}
	s.SetSubstitute(codepage.SUB)
	if got := s.EncodeRune('€'); !bytes.Equal(got, []byte{codepage.SUB}) {
		t.Fatalf("EncodeRune(€) with SUB = % X", got)
	}
}

func TestEncodeKey(t *testing.T) {
	s, _ := newSession(t, codepage.KOI8R)
	got, err := s.EncodeKey(keyboard.RuneKey('ж'))
	if err != nil || !bytes.Equal(got, []byte{0xD6}) {
		t.Fatalf("EncodeKey(ж) = % X, %v", got, err)
	}
	got, err = s.EncodeKey(keyboard.Keystroke{Key: keyboard.KeyRune, Rune: '€', Mod: keyboard.ModAlt})
	if err != nil || string(got) != "\x1b?" {
		t.Fatalf("EncodeKey(alt+€) = %q, %v", got, err)
	}
	if _, err := s.EncodeKey(keyboard.Keystroke{Key: keyboard.KeyNone}); !errors.Is(err, keyboard.ErrNoSequence) {
		t.Fatalf("EncodeKey(none) error = %v", err)
	}
}

func TestDecodeRandomNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 2048)
	for _, c := range codepage.Codepages() {
		s, _ := newSession(t, c)
		rng.Read(buf)
		out := s.Decode(nil, buf)
		out = s.Flush(out)
		if len(out) == 0 {
			t.Fatalf("%v: no output for %d bytes", c, len(buf))
		}
	}
}
