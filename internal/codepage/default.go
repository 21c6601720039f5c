package codepage

var defaultTranslator = NewTranslator(Default)

// DefaultTranslator returns the process-wide translator used by the
// package-level functions.
func DefaultTranslator() *Translator { return defaultTranslator }

// Active returns the process-wide active codepage.
func Active() Codepage { return defaultTranslator.Active() }

// SetActive selects the process-wide codepage.
func SetActive(c Codepage) error { return defaultTranslator.SetActive(c) }

// MapChar maps b through the process-wide codepage.
func MapChar(b byte) (rune, error) { return defaultTranslator.MapChar(b) }

// EncodeRune encodes r in the process-wide codepage.
func EncodeRune(r rune) ([]byte, error) { return defaultTranslator.EncodeRune(r) }

// Refresh refreshes the process-wide translator.
func Refresh() { defaultTranslator.Refresh() }

// OnRefresh registers a listener on the process-wide translator.
func OnRefresh(fn func(Codepage)) (cancel func()) { return defaultTranslator.OnRefresh(fn) }
