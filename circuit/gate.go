package circuit

const (
	SIGNAL_MASK = 0xffff // Mask of a wire signal.
)

// Operator is a gate type.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_IDENTITY = Operator(0) // IDENTITY
	OP_NOT      = Operator(1) // NOT
	OP_AND      = Operator(2) // AND
	OP_OR       = Operator(3) // OR
	OP_LSHIFT   = Operator(4) // LSHIFT
	OP_RSHIFT   = Operator(5) // RSHIFT
)

// binaryMap maps the keywords of the two operand gates.
var binaryMap = map[string]Operator{
	"AND":    OP_AND,
	"OR":     OP_OR,
	"LSHIFT": OP_LSHIFT,
	"RSHIFT": OP_RSHIFT,
}

// Arity returns the number of operands the gate consumes.
func (op Operator) Arity() int {
	switch op {
	case OP_IDENTITY, OP_NOT:
		return 1
	}
	return 2
}

// Apply performs the gate action on its operands. Single operand gates
// ignore b.
func (op Operator) Apply(a uint16, b uint16) (output uint16) {
	switch op {
	case OP_IDENTITY:
		output = a
	case OP_NOT:
		output = SIGNAL_MASK - a
	case OP_AND:
		output = a & b
	case OP_OR:
		output = a | b
	case OP_LSHIFT:
		output = uint16((uint32(a) << b) & SIGNAL_MASK)
	case OP_RSHIFT:
		output = a >> b
	default:
		panic("unknown operator")
	}

	return
}
