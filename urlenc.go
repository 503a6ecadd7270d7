// Package urlenc implements urlencoding after RFC 1738 §4: letters, digits and
// -_.!*() are kept as is, space becomes + and everything else, including + itself
// and every byte of a multibyte UTF-8 sequence, becomes %XX with uppercase hex
// digits.
//
// All the functions are pure and safe for concurrent use. The input is never
// modified.
package urlenc

import "github.com/indigo-web/utils/uf"

// String urlencodes the string. If nothing must be escaped, the very same string
// is returned without allocations. The empty string stays empty.
func String(s string) string {
	// full range of a non-nil buffer is always valid, and a nil one (empty
	// string) results in nil with no error
	encoded, _ := Bytes(uf.S2B(s), 0, len(s))

	return uf.B2S(encoded)
}
