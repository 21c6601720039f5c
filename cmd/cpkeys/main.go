// Command cpkeys shows the bytes each key press encodes to in the selected
// codepage, the way cpterm would send them to a child program.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
	"github.com/stlalpha/codepage/internal/logging"
)

func main() {
	cpName := flag.String("codepage", "CP437", "Codepage to encode printable keys in")
	appCursor := flag.Bool("app-cursor", false, "Send cursor keys in application mode (ESC O A)")
	bsCtrlH := flag.Bool("bs-ctrl-h", false, "Backspace sends BS (0x08) instead of DEL")
	newline := flag.Bool("newline", false, "Enter sends CR LF")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.SetDebug(*debug)
	logging.EnableFromEnv()

	c, err := codepage.Lookup(*cpName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cpkeys: %v\n", err)
		os.Exit(2)
	}

	opts := keyboard.DefaultOptions()
	opts.ApplicationCursor = *appCursor
	opts.BackspaceSendsDEL = !*bsCtrlH
	opts.NewlineMode = *newline

	m := newModel(codepage.NewTranslator(c), opts)
	defer m.sess.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running cpkeys: %v", err)
	}
}
