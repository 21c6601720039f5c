// Package session holds the per-stream translation state of one terminal
// connection: its UTF-8 decoder, keyboard encoder and substitution policy,
// all bound to a codepage.Translator.
package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/utf8codec"
)

// DefaultSubstitute replaces characters the host's codepage cannot carry.
const DefaultSubstitute byte = '?'

// Session is one stream's translation state. Inbound decoding is meant to be
// driven by a single reader goroutine; the mutex lets a settings change
// reset the decoder from elsewhere.
type Session struct {
	ID        uuid.UUID
	Name      string    // label for logs, e.g. the child command
	StartTime time.Time // when the session was created

	tr   *codepage.Translator
	keys *keyboard.Encoder

	mu         sync.Mutex
	dec        utf8codec.Decoder
	substitute byte
	rejected   int // malformed UTF-8 sequences replaced so far

	cancelRefresh func()
}

// New creates a session on tr. The session resets its decoder whenever tr is
// refreshed, until Close is called.
func New(name string, tr *codepage.Translator, opts keyboard.Options) *Session {
	s := &Session{
		ID:         uuid.New(),
		Name:       name,
		StartTime:  time.Now(),
		tr:         tr,
		keys:       keyboard.NewEncoder(tr, opts),
		substitute: DefaultSubstitute,
	}
	s.cancelRefresh = tr.OnRefresh(s.onRefresh)
	return s
}

func (s *Session) onRefresh(c codepage.Codepage) {
	s.mu.Lock()
	pending := s.dec.Pending()
	s.dec.Reset()
	s.mu.Unlock()
	if pending {
		log.Printf("INFO: Session %s: codepage switched to %s, dropped partial UTF-8 sequence", s.ID, c)
		return
	}
	logging.Debug("Session %s: codepage switched to %s", s.ID, c)
}

// Close detaches the session from its translator.
func (s *Session) Close() {
	if s.cancelRefresh != nil {
		s.cancelRefresh()
	}
}

// Translator returns the translator the session decodes with.
func (s *Session) Translator() *codepage.Translator { return s.tr }

// Keyboard returns the session's keystroke encoder.
func (s *Session) Keyboard() *keyboard.Encoder { return s.keys }

// Codepage returns the active codepage.
func (s *Session) Codepage() codepage.Codepage { return s.tr.Active() }

// SetSubstitute sets the byte sent in place of unrepresentable characters.
func (s *Session) SetSubstitute(b byte) {
	s.mu.Lock()
	s.substitute = b
	s.mu.Unlock()
}

// Substitute returns the byte sent in place of unrepresentable characters.
func (s *Session) Substitute() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.substitute
}

// Rejected returns how many malformed UTF-8 sequences have been replaced.
func (s *Session) Rejected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejected
}

// Pending reports whether a UTF-8 sequence is partially decoded.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dec.Pending()
}

// Decode appends the code points for the inbound bytes p to dst.
//
// Single-byte codepages map every byte through the active table. With UTF-8
// active, a malformed sequence becomes U+FFFD and decoding resumes; a byte
// that broke a sequence in progress is decoded again as the start of the
// next one. An incomplete sequence at the end of p stays pending for the
// next call.
func (s *Session) Decode(dst []rune, p []byte) []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range p {
		dst = s.decodeByte(dst, b)
	}
	return dst
}

// DecodeByte is Decode for a single byte.
func (s *Session) DecodeByte(dst []rune, b byte) []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decodeByte(dst, b)
}

func (s *Session) decodeByte(dst []rune, b byte) []rune {
	if !s.dec.Pending() {
		r, err := s.tr.MapChar(b)
		if err == nil {
			return append(dst, r)
		}
		if !errors.Is(err, codepage.ErrUTF8Active) {
			return append(dst, utf8codec.ReplacementChar)
		}
	}
	return s.feed(dst, b)
}

func (s *Session) feed(dst []rune, b byte) []rune {
	wasPending := s.dec.Pending()
	r, st := s.dec.Feed(b)
	switch st {
	case utf8codec.Accept:
		return append(dst, r)
	case utf8codec.Reject:
		s.rejected++
		s.dec.Reset()
		dst = append(dst, utf8codec.ReplacementChar)
		if wasPending {
			return s.feed(dst, b)
		}
	}
	return dst
}

// Flush ends any partial UTF-8 sequence, appending U+FFFD for it. Callers
// flush before passing a control byte or escape sequence through, since
// those interrupt a sequence on a real terminal.
func (s *Session) Flush(dst []rune) []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dec.Pending() {
		s.rejected++
		s.dec.Reset()
		dst = append(dst, utf8codec.ReplacementChar)
	}
	return dst
}

// EncodeRune returns the bytes that send r to the host, substituting when
// the active codepage has no byte for it.
func (s *Session) EncodeRune(r rune) []byte {
	b, err := s.tr.EncodeRune(r)
	if err != nil {
		logging.Debug("Session %s: %v, sending substitute", s.ID, err)
		return []byte{s.Substitute()}
	}
	return b
}

// EncodeKey returns the bytes for ks. Unrepresentable characters are
// substituted; keystrokes with no sequence at all return an error.
func (s *Session) EncodeKey(ks keyboard.Keystroke) ([]byte, error) {
	b, err := s.keys.Encode(ks)
	if errors.Is(err, codepage.ErrUnrepresentable) {
		logging.Debug("Session %s: %v, sending substitute", s.ID, err)
		sub := []byte{s.Substitute()}
		if ks.Mod&keyboard.ModAlt != 0 {
			sub = append([]byte{codepage.ESC}, sub...)
		}
		return sub, nil
	}
	return b, err
}
