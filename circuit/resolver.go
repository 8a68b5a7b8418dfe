// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/ezrec/wires/internal"
)

// Resolver is a single resolution run over a Store. It owns its resolved
// signal map; a fresh Resolver must be made for every run.
type Resolver struct {
	Verbose bool // Set to enable verbose logging.

	Passes int // Resolution passes performed.

	store    *Store
	seed     map[string]uint16 // Signals forced before the run.
	resolved map[string]uint16 // Signals computed by the run.
	pending  []*Definition     // Definitions still without a signal.
}

// NewResolver creates a resolution run, with the wires in seed forced to
// their given signals. The seed map is not retained.
func NewResolver(st *Store, seed map[string]uint16) (rv *Resolver) {
	rv = &Resolver{
		store:    st,
		seed:     maps.Clone(seed),
		resolved: make(map[string]uint16, st.Len()),
	}
	if rv.seed == nil {
		rv.seed = map[string]uint16{}
	}

	rv.pending = make([]*Definition, 0, st.Len())
	for _, wire := range st.order {
		_, seeded := rv.seed[wire]
		if seeded {
			continue
		}
		rv.pending = append(rv.pending, st.defs[wire])
	}

	return
}

// Store returns the circuit being resolved.
func (rv *Resolver) Store() *Store {
	return rv.store
}

// Seeded returns true if the wire signal was forced by the seed.
func (rv *Resolver) Seeded(wire string) (ok bool) {
	_, ok = rv.seed[wire]
	return
}

// Value returns the signal of a wire, if known.
func (rv *Resolver) Value(wire string) (value uint16, ok bool) {
	value, ok = rv.seed[wire]
	if ok {
		return
	}
	value, ok = rv.resolved[wire]
	return
}

// Values returns an iterator over all known signals, seeded wires first.
func (rv *Resolver) Values() iter.Seq2[string, uint16] {
	return internal.IterSeq2Concat(maps.All(rv.seed), maps.All(rv.resolved))
}

// Done returns true if every wire has a signal.
func (rv *Resolver) Done() bool {
	return len(rv.pending) == 0
}

// argValue gets the signal of an operand, if known.
func (rv *Resolver) argValue(arg Operand) (value uint16, ok bool) {
	if arg.IsLiteral() {
		return arg.Value, true
	}
	return rv.Value(arg.Wire)
}

// eval computes a definition, if all of its operands are known.
func (rv *Resolver) eval(def *Definition) (value uint16, ok bool) {
	var in [2]uint16
	for n, arg := range def.Args {
		in[n], ok = rv.argValue(arg)
		if !ok {
			return
		}
	}

	value = def.Op.Apply(in[0], in[1])
	ok = true
	return
}

// Pass performs a single resolution pass over the pending definitions,
// and returns the number of wires that received a signal. Resolved
// definitions are removed from the pending list.
func (rv *Resolver) Pass() (progress int) {
	rv.Passes++

	rv.pending = slices.DeleteFunc(rv.pending, func(def *Definition) bool {
		value, ok := rv.eval(def)
		if ok {
			rv.resolved[def.Wire] = value
			progress++
		}
		return ok
	})

	if rv.Verbose {
		log.Printf("resolver: pass %v: %v resolved, %v pending",
			rv.Passes, humanize.Comma(int64(progress)), humanize.Comma(int64(len(rv.pending))))
	}

	return
}

// stalled builds the stall error for target.
func (rv *Resolver) stalled(target string) error {
	wires := make([]string, len(rv.pending))
	for n, def := range rv.pending {
		wires[n] = def.Wire
	}
	slices.Sort(wires)

	return ErrUnresolvable{Target: target, Pending: wires}
}

// Resolve runs resolution passes until target has a signal.
// If a pass makes no progress the circuit can not supply target, and
// ErrUnresolvable is returned.
func (rv *Resolver) Resolve(target string) (value uint16, err error) {
	value, ok := rv.Value(target)
	if ok {
		return
	}

	_, defined := rv.store.defs[target]
	if !defined {
		err = ErrUnresolvable{Target: target}
		return
	}

	for {
		if rv.Pass() == 0 {
			err = rv.stalled(target)
			return
		}
		value, ok = rv.resolved[target]
		if ok {
			break
		}
	}

	if rv.Verbose {
		log.Printf("resolver: %v = %v after %v passes", target, value, rv.Passes)
	}

	return
}

// ResolveAll runs resolution passes until every wire has a signal.
func (rv *Resolver) ResolveAll() (err error) {
	for !rv.Done() {
		if rv.Pass() == 0 {
			return rv.stalled("")
		}
	}

	return
}
