package io

import (
	"errors"

	"github.com/ezrec/wires/translate"
)

var f = translate.From

var (
	// Seed errors
	ErrSeedFormat = errors.New(f("seed file is not a mapping of wires to signals"))
)

type ErrSeedWire string

func (err ErrSeedWire) Error() string {
	return f("seed wire '%v' invalid", string(err))
}
