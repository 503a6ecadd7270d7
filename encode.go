package urlenc

import (
	"github.com/indigo-web/urlenc/internal/charclass"
	"github.com/indigo-web/urlenc/internal/hexconv"
)

// Bytes urlencodes b[offset:offset+count]. If the whole buffer is requested and
// nothing in it must be escaped, b itself is returned, so the result must not be
// modified unless it's known to be a distinct slice. Use Encode with alwaysCopy
// to get a guaranteed fresh one.
//
// A nil b with zero count results in nil and no error.
func Bytes(b []byte, offset, count int) ([]byte, error) {
	return Encode(b, offset, count, false)
}

// Encode does the same as Bytes, but if alwaysCopy is set, the result never
// shares memory with b.
func Encode(b []byte, offset, count int, alwaysCopy bool) ([]byte, error) {
	encoded, same, err := encode(b, offset, count)
	if err != nil {
		return nil, err
	}

	if same && alwaysCopy {
		return clone(encoded), nil
	}

	return encoded, nil
}

// encode returns the encoded range and whether it's b itself.
func encode(b []byte, offset, count int) (encoded []byte, same bool, err error) {
	proceed, err := validate(b, offset, count)
	if !proceed {
		return nil, false, err
	}

	src := b[offset : offset+count]
	spaces, unsafe := charclass.Tally(src)

	if spaces == 0 && unsafe == 0 {
		if len(src) == len(b) {
			return b, true, nil
		}

		return clone(src), false, nil
	}

	dst := make([]byte, count+2*unsafe)
	expand(dst, src)

	return dst, false, nil
}

// expand writes the encoded src into dst, which must be exactly of the
// encoded length.
func expand(dst, src []byte) {
	var pos int

	for _, c := range src {
		switch charclass.Of(c) {
		case charclass.Safe:
			dst[pos] = c
			pos++
		case charclass.Space:
			dst[pos] = '+'
			pos++
		default:
			dst[pos], dst[pos+1], dst[pos+2] = '%', hexconv.High(c), hexconv.Low(c)
			pos += 3
		}
	}
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)

	return c
}
