package emulator

import (
	"github.com/ezrec/wires/translate"
)

var f = translate.From

// ErrQuery indicates the run and wire of a failed query.
type ErrQuery struct {
	Run    int
	Target string
	Err    error
}

func (err *ErrQuery) Error() string {
	return f("run %d wire %v %v", err.Run, err.Target, err.Err)
}

func (err *ErrQuery) Unwrap() error {
	return err.Err
}
