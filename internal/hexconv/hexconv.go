package hexconv

// Upper maps a half-byte to its uppercase hexadecimal digit.
var Upper = [16]byte{
	0x0: '0',
	0x1: '1',
	0x2: '2',
	0x3: '3',
	0x4: '4',
	0x5: '5',
	0x6: '6',
	0x7: '7',
	0x8: '8',
	0x9: '9',
	0xA: 'A',
	0xB: 'B',
	0xC: 'C',
	0xD: 'D',
	0xE: 'E',
	0xF: 'F',
}

// High returns the uppercase hex digit of the upper half of the byte.
func High(c byte) byte {
	return Upper[c>>4]
}

// Low returns the uppercase hex digit of the lower half of the byte.
func Low(c byte) byte {
	return Upper[c&0x0f]
}
