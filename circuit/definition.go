package circuit

import (
	"fmt"
	"strings"
)

// Operand is a gate input: either a literal signal, or a wire reference.
type Operand struct {
	Wire  string // Referenced wire, or empty for a literal.
	Value uint16 // Literal signal, if Wire is empty.
}

// Literal returns a literal signal operand.
func Literal(value uint16) Operand {
	return Operand{Value: value}
}

// Wire returns a wire reference operand.
func Wire(name string) Operand {
	return Operand{Wire: name}
}

// IsLiteral returns true if the operand is a literal signal.
func (arg Operand) IsLiteral() bool {
	return len(arg.Wire) == 0
}

func (arg Operand) String() string {
	if arg.IsLiteral() {
		return fmt.Sprintf("%d", arg.Value)
	}
	return arg.Wire
}

// Definition is the single source of signal for a wire.
type Definition struct {
	LineNo int       // Source line number, or 0 if not parsed.
	Op     Operator  // Gate type.
	Args   []Operand // Gate operands, sized by Op.Arity().
	Wire   string    // Destination wire.
}

// String renders the definition in booklet syntax.
func (def Definition) String() string {
	var words []string
	switch {
	case def.Op == OP_IDENTITY && len(def.Args) == 1:
		words = []string{def.Args[0].String()}
	case def.Op == OP_NOT && len(def.Args) == 1:
		words = []string{def.Op.String(), def.Args[0].String()}
	case len(def.Args) == 2:
		words = []string{def.Args[0].String(), def.Op.String(), def.Args[1].String()}
	default:
		words = []string{def.Op.String()}
		for _, arg := range def.Args {
			words = append(words, arg.String())
		}
	}

	return strings.Join(append(words, "->", def.Wire), " ")
}

// check verifies the definition is well formed.
func (def Definition) check() (err error) {
	if !IsWireName(def.Wire) {
		return ErrWireInvalid(def.Wire)
	}
	if def.Op < OP_IDENTITY || def.Op > OP_RSHIFT {
		return ErrOperatorInvalid(def.Op.String())
	}
	switch {
	case len(def.Args) < def.Op.Arity():
		return ErrOperandMissing
	case len(def.Args) > def.Op.Arity():
		return ErrOperandExtra
	}
	for _, arg := range def.Args {
		if !arg.IsLiteral() && !IsWireName(arg.Wire) {
			return ErrWireInvalid(arg.Wire)
		}
	}

	return
}

// IsWireName returns true if word is a valid wire name: a lowercase identifier.
func IsWireName(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
