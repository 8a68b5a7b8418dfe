// Package circuit implements the wire definition store and resolver for a
// 16-bit bitwise logic circuit.
//
// A circuit is a set of wires. Every wire receives its signal from exactly
// one definition: a literal value, another wire, or a gate (NOT, AND, OR,
// LSHIFT, RSHIFT) over one or two operands. A gate provides no signal until
// all of its operands have a signal.
//
// The Parser reads definitions in the booklet syntax
//
//	123 -> x
//	NOT x -> h
//	x AND y -> d
//
// into an immutable Store. A Resolver computes wire signals from a Store by
// repeated resolution passes, stopping when the requested wire is known or
// when a pass makes no progress.
package circuit
