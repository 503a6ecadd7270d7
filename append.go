package urlenc

import "github.com/indigo-web/urlenc/internal/charclass"

// Append appends urlencoded src to dst and returns the extended buffer. Unlike
// Bytes, the result never aliases src, but may share memory with dst.
func Append(dst, src []byte) []byte {
	_, unsafe := charclass.Tally(src)
	n := len(dst)
	dst = grow(dst, len(src)+2*unsafe)
	expand(dst[n:], src)

	return dst
}

// grow extends the length of b by n, reallocating if the capacity isn't enough.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b[:len(b)+n]
	}

	newb := make([]byte, len(b)+n, 2*len(b)+n)
	copy(newb, b)

	return newb
}
