package circuit

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	values := maps.All(sampleValues)

	table := [](struct {
		expr  string
		value uint16
	}){
		{"x", 123},
		{"x & y", 72},
		{"(x << 2) & 0xffff", 492},
		{"0xffff - x", 65412},
		{"d + e", 579},
		{"max(f, g)", 492},
	}

	for _, entry := range table {
		value, err := Eval(entry.expr, values)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}

	_, err := Eval("x - y", values)
	assert.ErrorIs(err, ErrExpressionResult)

	_, err = Eval("h << 8", values)
	assert.ErrorIs(err, ErrExpressionResult)

	_, err = Eval("'x'", values)
	assert.ErrorIs(err, ErrParseExpression("'x'"))

	// Unknown wires are starlark errors.
	_, err = Eval("a + 1", values)
	assert.Error(err)
}
