// Command cpconv converts text between codepages.
//
//	cpconv -from CP437 -to UTF-8 < in.ans > out.txt
//	cpconv -from auto -sauce art.ans > art.txt
//	cpconv -list
//
// Input is read from the named files or stdin and written to stdout.
// Characters the target codepage lacks become the -sub byte. With -from
// auto the input codepage comes from the font named in the file's SAUCE
// record, CP437 when there is none.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/sauce"
)

const autoCodepage = "auto"

func main() {
	var from, to, sub string
	var list, strip, debug bool
	flag.StringVar(&from, "from", "CP437", "Codepage of the input, or auto to read it from the SAUCE record")
	flag.StringVar(&to, "to", "UTF-8", "Codepage of the output")
	flag.StringVar(&sub, "sub", "?", "Substitute for characters the output codepage lacks (one ASCII character)")
	flag.BoolVar(&strip, "sauce", false, "Strip SAUCE metadata from the input")
	flag.BoolVar(&list, "list", false, "List the supported codepages and exit")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cpconv: ")
	logging.EnableFromEnv()
	if debug {
		logging.SetDebug(true)
	}

	if list {
		if err := writeList(os.Stdout); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		return
	}

	// Check the flags before touching any input.
	check := from
	if isAuto(from) {
		check = codepage.Default.String()
	}
	if _, err := newConverter(check, to, sub); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	names := flag.Args()
	if len(names) == 0 {
		n, err := convertInput(os.Stdout, os.Stdin, from, to, sub, strip)
		if err != nil {
			log.Fatalf("ERROR: conversion failed after %d bytes: %v", n, err)
		}
		return
	}
	for _, name := range names {
		if err := convertFile(os.Stdout, name, from, to, sub, strip); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
	}
}

func isAuto(name string) bool {
	return strings.EqualFold(name, autoCodepage)
}

func convertFile(w io.Writer, name, from, to, sub string, strip bool) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := convertInput(w, f, from, to, sub, strip)
	if err != nil {
		return fmt.Errorf("%s: conversion failed after %d bytes: %w", name, n, err)
	}
	return nil
}

// convertInput copies r to w through the conversion. SAUCE handling needs
// the whole input, so r is read fully when strip or auto detection is on.
func convertInput(w io.Writer, r io.Reader, from, to, sub string, strip bool) (int64, error) {
	if strip || isAuto(from) {
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, err
		}
		if isAuto(from) {
			from = detectCodepage(data).String()
		}
		if strip {
			data = sauce.Strip(data)
		}
		r = bytes.NewReader(data)
	}

	tr, err := newConverter(from, to, sub)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(w, transform.NewReader(r, tr))
	logging.Debug("converted %s -> %s, wrote %d bytes", from, to, n)
	return n, err
}

// detectCodepage returns the codepage named by the SAUCE font of data.
func detectCodepage(data []byte) codepage.Codepage {
	rec, ok := sauce.Parse(data)
	if !ok {
		return codepage.Default
	}
	c, ok := rec.Codepage()
	if !ok {
		logging.Debug("SAUCE font %q has no codepage, using %s", rec.Font, codepage.Default)
		return codepage.Default
	}
	return c
}

// newConverter chains a decoder for from with an encoder for to.
func newConverter(from, to, sub string) (transform.Transformer, error) {
	src, err := codepage.Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := codepage.Lookup(to)
	if err != nil {
		return nil, err
	}
	if len(sub) != 1 || sub[0] < 0x20 || sub[0] >= 0x7F {
		return nil, fmt.Errorf("substitute %q must be one printable ASCII character", sub)
	}

	dec := codepage.Encoding(src).NewDecoder()
	var enc *encoding.Encoder
	if dst.IsUTF8() {
		// UTF-8 output can carry everything the decoder produces.
		enc = codepage.Encoding(dst).NewEncoder()
	} else {
		enc = encoding.ReplaceUnsupported(codepage.NewEncoding(dst, sub[0]).NewEncoder())
	}
	return transform.Chain(dec, enc), nil
}

func writeList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, c := range codepage.Codepages() {
		fmt.Fprintf(tw, "%s\t%s\n", c, c.Description())
	}
	return tw.Flush()
}
