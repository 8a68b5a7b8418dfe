package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wires/circuit"
)

func TestWriteTable(t *testing.T) {
	assert := assert.New(t)

	ps := &circuit.Parser{}
	st, err := ps.Parse(strings.NewReader("123 -> x\nx AND 15 -> d\n456 -> y\n"))
	assert.NoError(err)

	rv := circuit.NewResolver(st, map[string]uint16{"y": 7})
	assert.NoError(rv.ResolveAll())

	var buf bytes.Buffer
	WriteTable(&buf, "sample", rv)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var rows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "| ") && !strings.Contains(line, "WIRE") && !strings.Contains(line, "sample") {
			rows = append(rows, strings.Join(strings.Fields(strings.ReplaceAll(line, "|", " ")), " "))
		}
	}

	assert.Equal([]string{
		"d 11 000b x AND 15 -> d",
		"x 123 007b 123 -> x",
		"y 7 0007 seed",
	}, rows)
}
