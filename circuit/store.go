// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"errors"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Store holds the definition of every wire in a circuit. A Store is
// immutable once built, and may be shared by concurrent resolvers.
type Store struct {
	defs  map[string]*Definition
	order []string // Wires in definition order.
}

// NewStore builds a store from a list of definitions.
func NewStore(defs ...Definition) (st *Store, err error) {
	st = &Store{
		defs: make(map[string]*Definition, len(defs)),
	}

	for _, def := range defs {
		err = st.add(def)
		if err != nil {
			st = nil
			return
		}
	}

	return
}

// add appends a definition, enforcing a single source per wire.
func (st *Store) add(def Definition) (err error) {
	err = def.check()
	if err != nil {
		return malformed(err)
	}

	_, ok := st.defs[def.Wire]
	if ok {
		return malformed(ErrWireDuplicate(def.Wire))
	}

	def.Args = slices.Clone(def.Args)
	st.defs[def.Wire] = &def
	st.order = append(st.order, def.Wire)

	return
}

// Len returns the number of defined wires.
func (st *Store) Len() int {
	return len(st.order)
}

// Lookup returns the definition of a wire.
func (st *Store) Lookup(wire string) (def Definition, ok bool) {
	pdef, ok := st.defs[wire]
	if ok {
		def = *pdef
		def.Args = slices.Clone(pdef.Args)
	}
	return
}

// All returns an iterator over the definitions, in definition order.
func (st *Store) All() iter.Seq[Definition] {
	return func(yield func(def Definition) bool) {
		for _, wire := range st.order {
			def, _ := st.Lookup(wire)
			if !yield(def) {
				return
			}
		}
	}
}

// Wires returns the defined wire names, sorted.
func (st *Store) Wires() (wires []string) {
	wires = slices.Clone(st.order)
	slices.Sort(wires)
	return
}

// Validate checks that every referenced wire has a definition, or is one
// of the external wires that will be supplied by a resolver seed.
func (st *Store) Validate(external ...string) (err error) {
	known := mapset.NewThreadUnsafeSet(append(slices.Clone(st.order), external...)...)

	used := mapset.NewThreadUnsafeSet[string]()
	for _, wire := range st.order {
		for _, arg := range st.defs[wire].Args {
			if !arg.IsLiteral() {
				used.Add(arg.Wire)
			}
		}
	}

	missing := used.Difference(known).ToSlice()
	if len(missing) == 0 {
		return
	}

	slices.Sort(missing)
	errs := make([]error, len(missing))
	for n, wire := range missing {
		errs[n] = ErrUnknownOperand(wire)
	}

	return errors.Join(errs...)
}

// Fingerprint returns a hash of the circuit, independent of the order the
// definitions were given in.
func (st *Store) Fingerprint() uint64 {
	digest := xxhash.New()
	for _, wire := range st.Wires() {
		digest.WriteString(st.defs[wire].String())
		digest.WriteString("\n")
	}
	return digest.Sum64()
}

// Resolve computes the signal of a single wire, using a fresh resolver.
func (st *Store) Resolve(target string, seed map[string]uint16) (value uint16, err error) {
	return NewResolver(st, seed).Resolve(target)
}
