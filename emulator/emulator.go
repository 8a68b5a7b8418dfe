// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator answers the two part circuit query: the signal of the
// target wire, and the signal of the target wire once the override wire is
// forced to that first signal.
package emulator

import (
	"log"
	"maps"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/ezrec/wires/circuit"
)

const (
	TARGET_WIRE   = "a" // Default wire to resolve.
	OVERRIDE_WIRE = "b" // Default wire forced for the second run.
)

// Emulator state. A circuit, and the resolvers of its runs.
type Emulator struct {
	Verbose bool           // If set, enables verbose logging.
	Store   *circuit.Store // Circuit to emulate.

	Target   string            // Wire to resolve.
	Override string            // Wire forced to the first signal in the second run.
	Seed     map[string]uint16 // Signals forced in every run.

	runs []*circuit.Resolver
}

// NewEmulator creates a new emulator for a circuit.
func NewEmulator(st *circuit.Store) (emu *Emulator) {
	emu = &Emulator{
		Store:    st,
		Target:   TARGET_WIRE,
		Override: OVERRIDE_WIRE,
	}

	return
}

// Validate checks the circuit for wires that no run could supply.
func (emu *Emulator) Validate() (err error) {
	external := slices.Collect(maps.Keys(emu.Seed))
	external = append(external, emu.Override)
	return emu.Store.Validate(external...)
}

// Resolve performs a single run with the given seed, added on top of
// the emulator seed.
func (emu *Emulator) Resolve(seed map[string]uint16) (value uint16, err error) {
	run := len(emu.runs) + 1

	defer func() {
		if err != nil {
			err = &ErrQuery{Run: run, Target: emu.Target, Err: err}
		}
	}()

	forced := maps.Clone(emu.Seed)
	if forced == nil {
		forced = map[string]uint16{}
	}
	maps.Copy(forced, seed)

	if emu.Verbose {
		log.Printf("emulator: run %v: %v seeded wires, fingerprint %016x",
			run, humanize.Comma(int64(len(forced))), emu.Store.Fingerprint())
	}

	rv := circuit.NewResolver(emu.Store, forced)
	rv.Verbose = emu.Verbose
	emu.runs = append(emu.runs, rv)

	value, err = rv.Resolve(emu.Target)
	return
}

// Run answers both parts of the query. The second run starts from the
// emulator seed plus the override wire; nothing else carries over from
// the first run.
func (emu *Emulator) Run() (first, second uint16, err error) {
	emu.runs = emu.runs[:0]

	first, err = emu.Resolve(nil)
	if err != nil {
		return
	}

	second, err = emu.Resolve(map[string]uint16{emu.Override: first})
	return
}

// Runs returns the number of runs since the last Run.
func (emu *Emulator) Runs() int {
	return len(emu.runs)
}

// Resolver returns the resolver of a run, counting from 1.
func (emu *Emulator) Resolver(run int) (rv *circuit.Resolver, ok bool) {
	if run < 1 || run > len(emu.runs) {
		return
	}

	return emu.runs[run-1], true
}
