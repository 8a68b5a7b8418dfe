// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"errors"
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/ezrec/wires/circuit"
	"github.com/ezrec/wires/emulator"
	"github.com/ezrec/wires/io"
)

func main() {
	var input string
	var target string
	var override string
	var seedFile string
	var list bool
	var verbose bool
	var strict bool
	var probes []string

	flag.StringVar(&input, "i", "-", "Circuit input")
	flag.StringVar(&target, "t", emulator.TARGET_WIRE, "Wire to resolve")
	flag.StringVar(&override, "b", emulator.OVERRIDE_WIRE, "Wire forced to the first signal for the second run")
	flag.StringVar(&seedFile, "s", "", ".yaml seed file of forced wire signals")
	flag.BoolVar(&list, "l", false, "List all wire signals of both runs")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "strict", false, "Reject circuits referencing undefined wires")
	flag.Func("e", "Probe expression over second run wire signals (repeatable)", func(expr string) error {
		probes = append(probes, expr)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	inf := os.Stdin
	if input != "-" {
		var err error
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	ps := &circuit.Parser{Verbose: verbose}
	st, err := ps.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	emu := emulator.NewEmulator(st)
	emu.Verbose = verbose
	emu.Target = target
	emu.Override = override

	if len(seedFile) != 0 {
		sf, err := os.Open(seedFile)
		if err != nil {
			log.Fatalf("%v: %v", seedFile, err)
		}
		emu.Seed, err = io.ReadSeed(sf)
		sf.Close()
		if err != nil {
			log.Fatalf("%v: %v", seedFile, err)
		}
	}

	err = validate(emu, strict)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	first, second, err := emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	fmt.Println(first)
	fmt.Println(second)

	if list || len(probes) != 0 {
		var out goio.Writer
		if list {
			out = os.Stdout
		}
		err = listRuns(out, emu)
		if err != nil {
			log.Printf("%v: %v", input, err)
		}
	}

	if len(probes) != 0 {
		rv, _ := emu.Resolver(emu.Runs())
		for _, expr := range probes {
			value, err := circuit.Eval(expr, rv.Values())
			if err != nil {
				log.Fatalf("%v: %v", expr, err)
			}
			fmt.Printf("%v = %v\n", expr, value)
		}
	}
}

// validate checks the circuit for undefined wires. Only strict mode
// rejects them; otherwise they are logged, and left to the resolver.
func validate(emu *emulator.Emulator, strict bool) (err error) {
	err = emu.Validate()
	if err == nil || strict {
		return
	}

	log.Printf("warning: %v", err)
	return nil
}

// listRuns resolves every wire of each run, writing a table per run if
// output is not nil. Wires a stalled run could not resolve are left out
// of its table, and the stalls are returned.
func listRuns(output goio.Writer, emu *emulator.Emulator) (err error) {
	var errs []error
	for run := 1; run <= emu.Runs(); run++ {
		rv, _ := emu.Resolver(run)
		stall := rv.ResolveAll()
		if stall != nil {
			errs = append(errs, fmt.Errorf("run %d: %w", run, stall))
		}
		if output != nil {
			io.WriteTable(output, fmt.Sprintf("run %d", run), rv)
		}
	}

	return errors.Join(errs...)
}
