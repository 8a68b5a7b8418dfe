package circuit

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates a probe expression over wire signals. Every wire in
// values is predeclared as a starlark int, so `a ^ b` or `(x << 2) & 0xff`
// are valid. The result must be a 16-bit signal.
func Eval(expr string, values iter.Seq2[string, uint16]) (value uint16, err error) {
	thread := starlark.Thread{Name: "probe"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for wire, signal := range values {
		pred[wire] = starlark.MakeInt(int(signal))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
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
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > SIGNAL_MASK {
		err = ErrExpressionResult
		return
	}

	value = uint16(st_int64)
	return
}
