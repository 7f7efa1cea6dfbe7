/*******************************************************************************
*
* Copyright 2026 The rcc authors.
*
* Licensed under the GNU General Public License, version 3 or later.
*
*******************************************************************************/

// Command dump-res renders a textual structural dump of a ".res" file, for
// comparing rcc's output against a reference compiler's during testing.
// It is deliberately written the same way holo-build's dump-package is: a
// single small program that reads a binary stream from stdin (or a path
// given as its first argument) and prints one line per structural element
// it finds, so test harnesses can diff the rendering instead of raw bytes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/holocm/rcc/internal/resfmt"
)

func main() {
	data, err := readInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	records, err := resfmt.ReadRecords(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	for _, rec := range records {
		printRecord(rec)
	}
}

func readInput() ([]byte, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}
	return io.ReadAll(os.Stdin)
}

func printRecord(rec resfmt.Record) {
	fmt.Printf(">> type %s, name %s, language 0x%04x, memory flags 0x%04x, %d bytes\n",
		rec.Type, rec.Name, rec.LanguageID, rec.MemoryFlags, len(rec.Data))
	if rec.DataVersion != 0 {
		fmt.Printf("    data version: %d\n", rec.DataVersion)
	}
	if rec.Version != 0 {
		fmt.Printf("    version: %d\n", rec.Version)
	}
	if rec.Characteristics != 0 {
		fmt.Printf("    characteristics: %d\n", rec.Characteristics)
	}
}
