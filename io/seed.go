package io

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/wires/circuit"
)

// ReadSeed reads a YAML mapping of wire names to 16-bit signals.
//
//	b: 956
//	x: 0x7b
//
// An empty document is an empty seed.
func ReadSeed(input io.Reader) (seed map[string]uint16, err error) {
	seed = map[string]uint16{}

	var doc yaml.Node
	err = yaml.NewDecoder(input).Decode(&doc)
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		seed = nil
		return
	}

	var nodes map[string]yaml.Node
	err = doc.Decode(&nodes)
	if err != nil {
		seed = nil
		err = errors.Join(ErrSeedFormat, err)
		return
	}

	for wire, node := range nodes {
		if !circuit.IsWireName(wire) {
			seed = nil
			err = ErrSeedWire(wire)
			return
		}
		// Only integers; yaml would truncate floats and zero nulls.
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
			seed = nil
			err = errors.Join(ErrSeedFormat, ErrSeedWire(wire))
			return
		}
		var value uint16
		err = node.Decode(&value)
		if err != nil {
			seed = nil
			err = errors.Join(ErrSeedFormat, err)
			return
		}
		seed[wire] = value
	}

	return
}

// WriteSeed writes a seed as a YAML mapping, sorted by wire name.
func WriteSeed(output io.Writer, seed map[string]uint16) (err error) {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)

	err = enc.Encode(seed)
	if err != nil {
		return
	}

	return enc.Close()
}
