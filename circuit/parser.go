// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Parser reads circuit definitions in booklet syntax.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.
}

// valueOf returns the operand for a single word.
func (ps *Parser) valueOf(word string) (arg Operand, err error) {
	if IsWireName(word) {
		arg = Wire(word)
		return
	}

	for _, c := range word {
		if c < '0' || c > '9' {
			err = ErrParseOperand(word)
			return
		}
	}

	v64, err := strconv.ParseUint(word, 10, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	arg = Literal(uint16(v64))
	return
}

// ParseLine parses a single definition.
//
//	<operand> -> <wire>
//	NOT <operand> -> <wire>
//	<operand> <AND|OR|LSHIFT|RSHIFT> <operand> -> <wire>
func (ps *Parser) ParseLine(line string) (def Definition, err error) {
	defer func() {
		if err != nil {
			err = malformed(err)
		}
	}()

	words := strings.Fields(line)

	arrow := -1
	for n, word := range words {
		if word == "->" {
			arrow = n
			break
		}
	}
	switch {
	case arrow < 0:
		err = ErrArrowMissing
		return
	case arrow == len(words)-1:
		err = ErrDestinationMissing
		return
	case arrow < len(words)-2:
		err = ErrOperandExtra
		return
	}

	def.Wire = words[arrow+1]
	if !IsWireName(def.Wire) {
		err = ErrWireInvalid(def.Wire)
		return
	}

	var argWords []string
	rhs := words[:arrow]
	switch len(rhs) {
	case 0:
		err = ErrOperandMissing
		return
	case 1:
		def.Op = OP_IDENTITY
		argWords = rhs
	case 2:
		if rhs[0] != OP_NOT.String() {
			err = ErrOperatorInvalid(rhs[0])
			return
		}
		def.Op = OP_NOT
		argWords = rhs[1:]
	case 3:
		op, ok := binaryMap[rhs[1]]
		if !ok {
			err = ErrOperatorInvalid(rhs[1])
			return
		}
		def.Op = op
		argWords = []string{rhs[0], rhs[2]}
	default:
		err = ErrOperandExtra
		return
	}

	def.Args = make([]Operand, len(argWords))
	for n, word := range argWords {
		def.Args[n], err = ps.valueOf(word)
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Store of definitions.
// Blank lines are ignored, and ';' starts a comment.
func (ps *Parser) Parse(input io.Reader) (st *Store, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			st = nil
		}
	}()

	st = &Store{
		defs: make(map[string]*Definition),
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ps.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var def Definition
		def, err = ps.ParseLine(line)
		if err != nil {
			return
		}
		def.LineNo = lineno

		err = st.add(def)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		line = ""
		return
	}

	if ps.Verbose {
		log.Printf("parser: %v wires defined", humanize.Comma(int64(st.Len())))
	}

	return
}
