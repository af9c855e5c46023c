// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// reference is the first use of a label.
type reference struct {
	Label  string
	LineNo int
	Line   string
}

// Assembler is a two pass assembler for the intcode computer.
//
// The first pass encodes each line in order. References to labels that are
// not yet defined are given placeholder ids, which the second pass replaces
// with the label addresses.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int64  // Map of labels to addresses.
	Variable  map[string]int64  // Map of variables to addresses.
	Equate    map[string]string // Map of equates.

	unknown   map[string]int64 // Pending labels to placeholder ids.
	idToLabel []reference      // Placeholder ids to labels.
	usages    []int64          // Output addresses holding placeholder ids.
	output    []int64          // Output words.

	lineNo int    // Current line number.
	line   string // Current line.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_-]+$`)

// isIdentifier returns true if name may be used for a label or variable.
func isIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

// parenEval does compile-time (...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var word int64
		word, err = ParseWord(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(word)
	}
	for key, addr := range asm.Variable {
		pred[key] = starlark.MakeInt64(addr)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt64(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var parenRe = regexp.MustCompile(`\([^()]*\)`)

// parseLine splits a single line into words, after expression evaluation
// and equate substitution.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do (...) evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[1 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if !isIdentifier(words[1]) {
			err = ErrIdentifierInvalid(words[1])
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddress gets the next free output address.
func (asm *Assembler) currentAddress() int64 {
	return int64(len(asm.output))
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: asm.lineNo, Line: asm.line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	asm.Label = make(map[string]int64)
	asm.Variable = make(map[string]int64)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.unknown = make(map[string]int64)
	asm.idToLabel = nil
	asm.usages = nil
	asm.output = nil
	asm.lineNo = 0
	asm.line = ""

	for scanner.Scan() {
		text := scanner.Text()
		asm.lineNo += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", asm.lineNo, text)
		}

		text_comment, _, _ := strings.Cut(text, "#")
		asm.line = strings.TrimSpace(text_comment)
		if len(asm.line) == 0 {
			continue
		}

		var words []string
		words, err = asm.parseLine(asm.line, asm.lineNo)
		if err != nil {
			return
		}

		err = asm.parseWords(words, asm.lineNo)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// link replaces every placeholder id with its label address.
func (asm *Assembler) link() (err error) {
	for _, ref := range asm.idToLabel {
		if _, ok := asm.unknown[ref.Label]; ok {
			asm.lineNo = ref.LineNo
			asm.line = ref.Line
			err = ErrLabelMissing(ref.Label)
			return
		}
	}

	for _, addr := range asm.usages {
		ref := asm.idToLabel[asm.output[addr]]
		target := asm.Label[ref.Label]
		if asm.Verbose {
			log.Printf("link: %v: :%v = %v", addr, ref.Label, target)
		}
		asm.output[addr] = target
	}

	for n := range asm.Statement {
		stmt := &asm.Statement[n]
		copy(stmt.Codes, asm.output[stmt.Address:])
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []int64

	// Label definitions
	for len(words) > 0 && strings.HasPrefix(words[0], ":") {
		label := words[0][1:]
		if !isIdentifier(label) {
			err = ErrIdentifierInvalid(label)
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		delete(asm.unknown, label)
		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words
	address := asm.currentAddress()

	defer func() {
		if err != nil || len(codes) == 0 {
			return
		}
		stmt := Statement{LineNo: lineno, Address: address, Words: initial_words, Codes: codes}
		asm.Statement = append(asm.Statement, stmt)
		asm.output = append(asm.output, codes...)
	}()

	if words[0] == "var" {
		codes, err = asm.parseVariable(words[1:])
		return
	}

	in, ok := Catalog[words[0]]
	if !ok {
		codes, err = asm.parseData(words)
		return
	}

	args := words[1:]
	if len(args) != in.Params {
		err = ErrArgCount{Mnemonic: in.Mnemonic, Expected: in.Params, Actual: len(args)}
		return
	}

	params := make([]Parameter, len(args))
	for n, arg := range args {
		params[n], err = asm.parseParameter(address+1+int64(n), arg)
		if err != nil {
			return
		}
	}

	codes, err = in.Encode(params...)

	return
}

// parseVariable declares a variable at the current address.
//
//	var NAME
//	var NAME VALUE
//	var NAME := VALUE
func (asm *Assembler) parseVariable(args []string) (codes []int64, err error) {
	if len(args) == 3 && args[1] == ":=" {
		args = []string{args[0], args[2]}
	}

	if len(args) < 1 || len(args) > 2 {
		err = ErrVariableSyntax
		return
	}

	name := args[0]
	if _, ok := asm.Variable[name]; ok {
		err = ErrVariableDuplicate
		return
	}

	if !isIdentifier(name) {
		err = ErrIdentifierInvalid(name)
		return
	}

	var value int64
	if len(args) == 2 {
		value, err = ParseWord(args[1])
		if err != nil {
			return
		}
	}

	asm.Variable[name] = asm.currentAddress()
	codes = []int64{value}

	return
}

// parseData parses a line of literal data words.
func (asm *Assembler) parseData(words []string) (codes []int64, err error) {
	codes = make([]int64, len(words))
	for n, word := range words {
		codes[n], err = ParseWord(word)
		if err != nil {
			if n == 0 && isIdentifier(word) {
				err = ErrInstructionInvalid
			}
			return
		}
	}

	return
}
