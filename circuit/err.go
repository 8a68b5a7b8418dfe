package circuit

import (
	"errors"
	"strings"

	"github.com/ezrec/wires/translate"
)

var f = translate.From

var (
	// Definition errors
	ErrDefinitionMalformed = errors.New(f("definition malformed"))
	ErrArrowMissing        = errors.New(f("'->' missing"))
	ErrDestinationMissing  = errors.New(f("destination missing"))
	ErrOperandMissing      = errors.New(f("operand missing"))
	ErrOperandExtra        = errors.New(f("excessive operands"))

	// Expression errors
	ErrExpressionResult = errors.New(f("expression result not a signal"))
)

type ErrWireDuplicate string

func (ew ErrWireDuplicate) Error() string {
	return f("wire %v duplicated", string(ew))
}

type ErrWireInvalid string

func (ew ErrWireInvalid) Error() string {
	return f("'%v' is not a wire name", string(ew))
}

type ErrUnknownOperand string

func (eu ErrUnknownOperand) Error() string {
	return f("wire %v has no definition", string(eu))
}

type ErrOperatorInvalid string

func (eo ErrOperatorInvalid) Error() string {
	return f("'%v' is not an operator", string(eo))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 16-bit signal", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a signal or wire", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrUnresolvable reports a resolution that stalled before its target
// received a signal. Pending lists the wires still without a signal.
type ErrUnresolvable struct {
	Target  string
	Pending []string
}

func (err ErrUnresolvable) Error() string {
	pending := strings.Join(err.Pending, " ")
	switch {
	case len(err.Target) == 0:
		return f("circuit unresolvable, stalled on %v", pending)
	case len(err.Pending) == 0:
		return f("wire %v unresolvable", err.Target)
	}
	return f("wire %v unresolvable, stalled on %v", err.Target, pending)
}

func (err ErrUnresolvable) Is(target error) (ok bool) {
	_, ok = target.(ErrUnresolvable)
	return
}

// malformed marks err as a malformed definition.
func malformed(err error) error {
	return errors.Join(ErrDefinitionMalformed, err)
}
