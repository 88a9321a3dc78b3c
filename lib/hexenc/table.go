// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hexenc

// table maps a nibble (0-15) to its hex digit.
type table [16]byte

var (
	upperTable = buildTable('A')
	lowerTable = buildTable('a')
)

// buildTable returns the digits 0-9 followed by six letters starting at
// firstLetter.
func buildTable(firstLetter byte) table {
	var t table
	for i := 0; i < 10; i++ {
		t[i] = '0' + byte(i)
	}
	for i := 0; i < 6; i++ {
		t[10+i] = firstLetter + byte(i)
	}
	return t
}

func lookup(uppercase bool) *table {
	if uppercase {
		return &upperTable
	}
	return &lowerTable
}

// encodeInto writes the optional "0x" prefix and two digits per source
// byte into dst, which must be exactly EncodedLen(len(src), prefix)
// bytes long.
func encodeInto(dst, src []byte, prefix bool, digits *table) {
	position := 0
	if prefix {
		dst[0] = '0'
		dst[1] = 'x'
		position = 2
	}
	for _, value := range src {
		dst[position] = digits[value>>4]
		dst[position+1] = digits[value&0x0f]
		position += 2
	}
}
