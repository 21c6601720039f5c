package codepage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/stlalpha/codepage/internal/utf8codec"
)

// Translator holds the active codepage and maps bytes and runes through it.
// It is safe for concurrent use. Decoder state for UTF-8 streams is not kept
// here; every stream owns its own utf8codec.Decoder.
type Translator struct {
	mu     sync.RWMutex
	active Codepage

	// reverse is the rune to byte index for reverseFor. It is rebuilt
	// lazily and discarded by Refresh.
	reverse    map[rune]byte
	reverseFor Codepage

	listeners  map[int]func(Codepage)
	nextListen int
}

// NewTranslator creates a translator with c active. An invalid c selects
// Default.
func NewTranslator(c Codepage) *Translator {
	if !c.Valid() {
		c = Default
	}
	return &Translator{
		active:     c,
		reverseFor: -1,
		listeners:  make(map[int]func(Codepage)),
	}
}

// Active returns the currently selected codepage.
func (t *Translator) Active() Codepage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// SetActive selects c. Streams that were mid-sequence in a UTF-8 decode are
// not touched; call Refresh to have listeners reset their state.
func (t *Translator) SetActive(c Codepage) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCodepage, int(c))
	}
	t.mu.Lock()
	t.active = c
	t.mu.Unlock()
	return nil
}

// MapChar maps an inbound byte to the code point to display for it.
//
// MapChar must not be called while UTF-8 is active: UTF-8 is a multi-byte
// stream and has to be decoded with a utf8codec.Decoder. In that case the
// returned error is ErrUTF8Active and the rune is U+FFFD.
func (t *Translator) MapChar(b byte) (rune, error) {
	t.mu.RLock()
	c := t.active
	t.mu.RUnlock()

	tbl := tables[c]
	if tbl == nil {
		return 0xFFFD, ErrUTF8Active
	}
	return tbl[b], nil
}

// EncodeRune returns the bytes that represent r in the active codepage.
//
// With UTF-8 active this is the UTF-8 encoding of r. Otherwise C0 controls
// and DEL are sent as themselves and every other rune is looked up in the
// active table. Runes with no byte in the codepage yield an error wrapping
// ErrUnrepresentable; substitution is up to the caller.
func (t *Translator) EncodeRune(r rune) ([]byte, error) {
	if r >= 0 && r < 0x20 || r == rune(DEL) {
		return []byte{byte(r)}, nil
	}

	t.mu.RLock()
	c := t.active
	if c.IsUTF8() {
		t.mu.RUnlock()
		buf, ok := utf8codec.AppendRune(nil, r)
		if !ok {
			return nil, fmt.Errorf("%w: %U is not a Unicode scalar value", ErrUnrepresentable, r)
		}
		return buf, nil
	}
	idx := t.reverse
	fresh := idx != nil && t.reverseFor == c
	t.mu.RUnlock()

	if !fresh {
		idx = t.buildReverse(c)
	}
	if b, ok := idx[r]; ok {
		return []byte{b}, nil
	}
	return nil, fmt.Errorf("%w: %U in %s", ErrUnrepresentable, r, c)
}

func (t *Translator) buildReverse(c Codepage) map[rune]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reverse != nil && t.reverseFor == c {
		return t.reverse
	}
	idx := reverseIndex(tables[c])
	// Only cache when c is still the selection; a concurrent SetActive
	// means the next caller builds its own.
	if t.active == c {
		t.reverse = idx
		t.reverseFor = c
	}
	return idx
}

// Refresh discards cached encoder state and notifies every OnRefresh
// listener with the active codepage. Callers invoke it after SetActive
// once the switch should take effect on live streams.
func (t *Translator) Refresh() {
	t.mu.Lock()
	t.reverse = nil
	t.reverseFor = -1
	c := t.active
	ids := make([]int, 0, len(t.listeners))
	for id := range t.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Codepage), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, t.listeners[id])
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// OnRefresh registers fn to run on every Refresh, in registration order.
// fn runs without the translator lock held and may call back into t.
// The returned function removes the listener.
func (t *Translator) OnRefresh(fn func(Codepage)) (cancel func()) {
	t.mu.Lock()
	id := t.nextListen
	t.nextListen++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}
