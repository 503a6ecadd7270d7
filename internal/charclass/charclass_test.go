package charclass

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSafeNaive(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '*', '(', ')':
		return true
	}

	return false
}

func TestClassify(t *testing.T) {
	t.Run("every byte", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			c := byte(i)
			assert.Equalf(t, isSafeNaive(c), IsSafe(c), "mismatch for %s", strconv.Quote(string(c)))
		}
	})

	t.Run("space", func(t *testing.T) {
		require.Equal(t, Space, Of(' '))
		require.False(t, IsSafe(' '))
	})

	t.Run("plus is unsafe", func(t *testing.T) {
		require.Equal(t, Unsafe, Of('+'))
	})

	t.Run("reserved", func(t *testing.T) {
		for _, c := range []byte(":/?#[]@$&'+,;=%~\"<>") {
			require.Equal(t, Unsafe, Of(c), string(c))
		}
	})

	t.Run("non-ascii", func(t *testing.T) {
		for i := 0x80; i < 256; i++ {
			require.Equal(t, Unsafe, Of(byte(i)))
		}
	})

	t.Run("exactly one space", func(t *testing.T) {
		var spaces int
		for i := 0; i < 256; i++ {
			if Of(byte(i)) == Space {
				spaces++
			}
		}

		require.Equal(t, 1, spaces)
	})
}

func TestTally(t *testing.T) {
	for _, tc := range []struct {
		In             string
		Spaces, Unsafe int
	}{
		{In: ""},
		{In: "hello-world"},
		{In: "a b", Spaces: 1},
		{In: "100% sure", Spaces: 1, Unsafe: 1},
		{In: "  +", Spaces: 2, Unsafe: 1},
		{In: "é", Unsafe: 2},
	} {
		spaces, unsafe := Tally([]byte(tc.In))
		require.Equal(t, tc.Spaces, spaces, tc.In)
		require.Equal(t, tc.Unsafe, unsafe, tc.In)
	}
}
