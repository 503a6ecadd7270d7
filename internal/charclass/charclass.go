// Package charclass classifies single bytes for urlencoding.
package charclass

// Class tells how a byte is represented in an urlencoded string.
type Class uint8

const (
	// Unsafe bytes are written as %XX.
	Unsafe Class = iota
	// Safe bytes are written as is.
	Safe
	// Space is written as +.
	Space
)

// String returns a human-readable name of the class.
func (c Class) String() string {
	switch c {
	case Unsafe:
		return "unsafe"
	case Safe:
		return "safe"
	case Space:
		return "space"
	default:
		return "unknown"
	}
}

// safePunct is RFC 1738 §4 safe and extra characters without '+', which is
// taken by the space.
const safePunct = "-_.!*()"

var table = func() (t [256]Class) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = Safe
	}

	for c := 'A'; c <= 'Z'; c++ {
		t[c] = Safe
	}

	for c := '0'; c <= '9'; c++ {
		t[c] = Safe
	}

	for i := range safePunct {
		t[safePunct[i]] = Safe
	}

	t[' '] = Space

	return t
}()

// Of returns the class of the byte.
func Of(c byte) Class {
	return table[c]
}

// IsSafe tells whether the byte is passed through unescaped. Space isn't safe,
// as it's substituted.
func IsSafe(c byte) bool {
	return table[c] == Safe
}

// Tally counts spaces and unsafe bytes in b. Spaces aren't counted as unsafe.
func Tally(b []byte) (spaces, unsafe int) {
	for _, c := range b {
		switch table[c] {
		case Space:
			spaces++
		case Unsafe:
			unsafe++
		}
	}

	return spaces, unsafe
}
