package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Statement is a line of assembled code with its source location and
// generated words.
type Statement struct {
	LineNo  int      // Source line number.
	Address int64    // Address of the first word.
	Words   []string // Source words.
	Codes   []int64  // Generated words.
}

// Program is an assembled program listing.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug locates the statement that generated the word at address.
func (prog *Program) Debug(address int64) (dbg Debug) {
	for n, stmt := range prog.Statements {
		if address >= stmt.Address && address < stmt.Address+int64(len(stmt.Codes)) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(address - stmt.Address),
			}
			break
		}
	}

	return
}

// Binary returns the program words, ready to load into a Cpu.
func (prog *Program) Binary() (bins []int64) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Codes iterates over the program words and their addresses.
func (prog *Program) Codes() iter.Seq2[int64, int64] {
	return func(yield func(address int64, code int64) bool) {
		for _, stmt := range prog.Statements {
			for n, code := range stmt.Codes {
				if !yield(stmt.Address+int64(n), code) {
					return
				}
			}
		}
	}
}

// Listing writes the program listing: address, words, and source.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, stmt := range prog.Statements {
		codes := make([]string, len(stmt.Codes))
		for n, code := range stmt.Codes {
			codes[n] = fmt.Sprintf("%d", code)
		}
		_, err = fmt.Fprintf(w, "%5d: %-24s # %4d: %v\n",
			stmt.Address, strings.Join(codes, ","), stmt.LineNo, strings.Join(stmt.Words, " "))
		if err != nil {
			return
		}
	}

	return
}
