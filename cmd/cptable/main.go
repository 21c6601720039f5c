// Command cptable prints the translation table of a codepage or DEC
// character set as a 16x16 grid.
//
//	cptable -codepage CP437
//	cptable -dec "special graphics"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/stlalpha/codepage/internal/codepage"
)

func main() {
	var cpName, decName string
	var plain bool
	flag.StringVar(&cpName, "codepage", "CP437", "Codepage to show")
	flag.StringVar(&decName, "dec", "", "Show a DEC character set instead (name or SCS final, e.g. 0 for line drawing)")
	flag.BoolVar(&plain, "plain", false, "Disable colors")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cptable: ")

	var title string
	var cells []rune
	base := 0
	if decName != "" {
		set, err := parseDECSet(decName)
		if err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		tbl := codepage.DECTable(set)
		title = "DEC " + set.String()
		cells = tbl[:]
		if set == codepage.DECSupplemental {
			base = 0x80
		}
	} else {
		c, err := codepage.Lookup(cpName)
		if err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		tbl, ok := codepage.TableFor(c)
		if !ok {
			log.Fatalf("ERROR: %s is a multi-byte encoding and has no table", c)
		}
		title = fmt.Sprintf("%s  %s", c, c.Description())
		cells = tbl[:]
	}

	fd := int(os.Stdout.Fd())
	styled := !plain && term.IsTerminal(fd)
	if w, _, err := term.GetSize(fd); err == nil && w < gridWidth() {
		log.Printf("WARN: terminal is %d columns wide, the table needs %d", w, gridWidth())
	}

	fmt.Print(renderTable(title, cells, base, styled))
}

// parseDECSet accepts a set name ("UK", "special graphics") or the final
// byte of its SCS sequence ("A", "0").
func parseDECSet(name string) (codepage.DECCharset, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
	for s := codepage.DECCharset(0); int(s) < codepage.NumDECCharsets; s++ {
		if strings.ReplaceAll(strings.ToLower(s.String()), " ", "") == want {
			return s, nil
		}
	}
	if len(name) == 1 {
		if s, ok := codepage.DECCharsetForFinal(name[0]); ok {
			return s, nil
		}
	}
	return codepage.DECUS, fmt.Errorf("unknown DEC character set %q", name)
}
