package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wires/circuit"
)

func doParse(t *testing.T, lines []string) *circuit.Store {
	ps := &circuit.Parser{}
	st, err := ps.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, []string{"1 -> a"}))

	assert.False(emu.Verbose)
	assert.Equal("a", emu.Target)
	assert.Equal("b", emu.Override)
	assert.Equal(0, emu.Runs())
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		lines  []string
		first  uint16
		second uint16
	}){
		{"dependent", []string{"c OR 1 -> a", "b LSHIFT 1 -> c", "123 -> b"}, 247, 495},
		{"independent", []string{"5 -> a", "7 -> b"}, 5, 5},
		{"inverted", []string{"NOT b -> a", "0 -> b"}, 0xffff, 0},
	}

	for _, entry := range table {
		emu := NewEmulator(doParse(t, entry.lines))
		assert.NoError(emu.Validate(), entry.name)

		for range 2 {
			first, second, err := emu.Run()
			assert.NoError(err, entry.name)
			assert.Equal(entry.first, first, entry.name)
			assert.Equal(entry.second, second, entry.name)
			assert.Equal(2, emu.Runs(), entry.name)
		}

		rv, ok := emu.Resolver(2)
		if assert.True(ok, entry.name) {
			assert.True(rv.Seeded("b"), entry.name)
			value, _ := rv.Value("b")
			assert.Equal(entry.first, value, entry.name)
		}

		_, ok = emu.Resolver(3)
		assert.False(ok, entry.name)
	}
}

func TestEmulator_Seed(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, []string{"p AND b -> a", "255 -> b"}))
	assert.ErrorIs(emu.Validate(), circuit.ErrUnknownOperand("p"))

	emu.Seed = map[string]uint16{"p": 0x0f}
	assert.NoError(emu.Validate())

	first, second, err := emu.Run()
	assert.NoError(err)
	assert.Equal(uint16(0x0f), first)
	assert.Equal(uint16(0x0f), second)
	assert.Equal(map[string]uint16{"p": 0x0f}, emu.Seed)
}

func TestEmulator_Target(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, []string{"x RSHIFT 1 -> z", "100 -> x"}))
	emu.Target = "z"
	emu.Override = "x"

	first, second, err := emu.Run()
	assert.NoError(err)
	assert.Equal(uint16(50), first)
	assert.Equal(uint16(25), second)
}

func TestEmulator_Unresolvable(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, []string{"q AND 1 -> a"}))

	_, _, err := emu.Run()
	assert.ErrorIs(err, circuit.ErrUnresolvable{})

	var query *ErrQuery
	if assert.True(errors.As(err, &query)) {
		assert.Equal(1, query.Run)
		assert.Equal("a", query.Target)
	}
	assert.Equal(1, emu.Runs())
}
