package codepage

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestMapCharByCodepage(t *testing.T) {
	tr := NewTranslator(CP437)
	if r, err := tr.MapChar(0xB0); err != nil || r != 0x2591 {
		t.Fatalf("CP437 MapChar(B0) = %U, %v; want U+2591", r, err)
	}
	if err := tr.SetActive(ISO8859_1); err != nil {
		t.Fatal(err)
	}
	if r, err := tr.MapChar(0xB0); err != nil || r != 0x00B0 {
		t.Fatalf("ISO-8859-1 MapChar(B0) = %U, %v; want U+00B0", r, err)
	}
}

func TestMapCharUTF8Active(t *testing.T) {
	tr := NewTranslator(UTF8)
	r, err := tr.MapChar('A')
	if !errors.Is(err, ErrUTF8Active) {
		t.Fatalf("MapChar with UTF-8 active error = %v, want ErrUTF8Active", err)
	}
	if r != 0xFFFD {
		t.Fatalf("MapChar with UTF-8 active = %U", r)
	}
}

func TestMapCharNeverPanics(t *testing.T) {
	tr := NewTranslator(CP437)
	for _, c := range Codepages() {
		if err := tr.SetActive(c); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 256; i++ {
			_, _ = tr.MapChar(byte(i))
		}
	}
}

func TestSetActiveInvalid(t *testing.T) {
	tr := NewTranslator(KOI8R)
	for _, c := range []Codepage{-1, Codepage(NumCodepages)} {
		if err := tr.SetActive(c); !errors.Is(err, ErrInvalidCodepage) {
			t.Errorf("SetActive(%d) error = %v", int(c), err)
		}
	}
	if tr.Active() != KOI8R {
		t.Fatalf("active changed to %v", tr.Active())
	}
}

func TestNewTranslatorInvalidFallsBack(t *testing.T) {
	if got := NewTranslator(Codepage(77)).Active(); got != Default {
		t.Fatalf("Active() = %v, want %v", got, Default)
	}
}

// Every displayable byte must come back as a byte that displays the same.
func TestEncodeRuneRoundTrip(t *testing.T) {
	tr := NewTranslator(CP437)
	for _, c := range singleByteCodepages() {
		if err := tr.SetActive(c); err != nil {
			t.Fatal(err)
		}
		for i := 0x20; i < 0x100; i++ {
			b := byte(i)
			if IsControl(b) {
				continue
			}
			r, _ := tr.MapChar(b)
			if r == 0xFFFD {
				continue
			}
			enc, err := tr.EncodeRune(r)
			if err != nil {
				t.Fatalf("%v: EncodeRune(%U) from %#02x: %v", c, r, b, err)
			}
			if len(enc) != 1 {
				t.Fatalf("%v: EncodeRune(%U) = % X", c, r, enc)
			}
			back, _ := tr.MapChar(enc[0])
			if back != r {
				t.Errorf("%v: %#02x -> %U -> %#02x -> %U", c, b, r, enc[0], back)
			}
		}
	}
}

func TestEncodeRuneControls(t *testing.T) {
	tr := NewTranslator(CP437)
	for _, c := range Codepages() {
		_ = tr.SetActive(c)
		for _, r := range []rune{0x00, '\r', '\n', 0x1B, 0x7F} {
			got, err := tr.EncodeRune(r)
			if err != nil || !bytes.Equal(got, []byte{byte(r)}) {
				t.Errorf("%v: EncodeRune(%#x) = % X, %v", c, r, got, err)
			}
		}
	}
}

func TestEncodeRuneGlyphsDoNotBecomeControls(t *testing.T) {
	tr := NewTranslator(CP437)
	// CP437 draws U+2190 at 0x1B; sending that would be ESC.
	if got, err := tr.EncodeRune(0x2190); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("EncodeRune(←) = % X, %v; want ErrUnrepresentable", got, err)
	}
	if got, err := tr.EncodeRune(0x2302); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("EncodeRune(⌂) = % X, %v; want ErrUnrepresentable", got, err)
	}
}

func TestEncodeRuneUTF8(t *testing.T) {
	tr := NewTranslator(UTF8)
	got, err := tr.EncodeRune('€')
	if err != nil || !bytes.Equal(got, []byte{0xE2, 0x82, 0xAC}) {
		t.Fatalf("EncodeRune(€) = % X, %v", got, err)
	}
	if _, err := tr.EncodeRune(0xDC00); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("EncodeRune(surrogate) error = %v", err)
	}
}

func TestEncodeRuneUnrepresentable(t *testing.T) {
	tr := NewTranslator(CP437)
	if _, err := tr.EncodeRune('€'); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("CP437 EncodeRune(€) error = %v", err)
	}
	_ = tr.SetActive(CP858)
	got, err := tr.EncodeRune('€')
	if err != nil || !bytes.Equal(got, []byte{0xD5}) {
		t.Fatalf("CP858 EncodeRune(€) = % X, %v", got, err)
	}
}

func TestEncodeRuneFollowsSetActiveWithoutRefresh(t *testing.T) {
	tr := NewTranslator(CP437)
	if got, err := tr.EncodeRune('░'); err != nil || got[0] != 0xB0 {
		t.Fatalf("CP437 EncodeRune(░) = % X, %v", got, err)
	}
	_ = tr.SetActive(ISO8859_1)
	if got, err := tr.EncodeRune('°'); err != nil || got[0] != 0xB0 {
		t.Fatalf("ISO-8859-1 EncodeRune(°) = % X, %v", got, err)
	}
	if _, err := tr.EncodeRune('░'); !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("stale index served ░: %v", err)
	}
}

func TestRefreshNotifiesListeners(t *testing.T) {
	tr := NewTranslator(CP437)
	var got []Codepage
	var order []int
	cancel1 := tr.OnRefresh(func(c Codepage) { got = append(got, c); order = append(order, 1) })
	tr.OnRefresh(func(Codepage) { order = append(order, 2) })

	_ = tr.SetActive(CP866)
	tr.Refresh()
	if len(got) != 1 || got[0] != CP866 {
		t.Fatalf("listener saw %v, want [CP866]", got)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("listener order %v", order)
	}

	cancel1()
	cancel1()
	tr.Refresh()
	if len(got) != 1 {
		t.Fatalf("cancelled listener still called: %v", got)
	}
	if len(order) != 3 {
		t.Fatalf("remaining listener not called: %v", order)
	}
}

func TestRefreshListenerMayCallBack(t *testing.T) {
	tr := NewTranslator(CP437)
	tr.OnRefresh(func(c Codepage) {
		if tr.Active() != c {
			t.Errorf("Active() = %v inside listener, want %v", tr.Active(), c)
		}
		if _, err := tr.EncodeRune('A'); err != nil {
			t.Errorf("EncodeRune inside listener: %v", err)
		}
	})
	tr.Refresh()
}

func TestTranslatorConcurrentUse(t *testing.T) {
	tr := NewTranslator(CP437)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				switch {
				case g == 0:
					_ = tr.SetActive(Codepage(i % NumCodepages))
				case g == 1 && i%50 == 0:
					tr.Refresh()
				default:
					_, _ = tr.MapChar(byte(i))
					_, _ = tr.EncodeRune(rune(0x20 + i%0x60))
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestDefaultTranslator(t *testing.T) {
	prev := Active()
	t.Cleanup(func() { _ = SetActive(prev) })

	if err := SetActive(CP1251); err != nil {
		t.Fatal(err)
	}
	if DefaultTranslator().Active() != CP1251 {
		t.Fatalf("default translator active = %v", DefaultTranslator().Active())
	}
	if r, err := MapChar(0xC0); err != nil || r != 'А' {
		t.Fatalf("MapChar(C0) = %U, %v", r, err)
	}
	if b, err := EncodeRune('я'); err != nil || b[0] != 0xFF {
		t.Fatalf("EncodeRune(я) = % X, %v", b, err)
	}
	called := false
	cancel := OnRefresh(func(Codepage) { called = true })
	defer cancel()
	Refresh()
	if !called {
		t.Fatal("Refresh did not notify listener")
	}
}
