package urlenc

// validate checks the range against the buffer. It returns false with no error
// if there's nothing to encode, which happens only for a nil buffer with zero count.
func validate(b []byte, offset, count int) (proceed bool, err error) {
	switch {
	case b == nil && count == 0:
		return false, nil
	case b == nil:
		return false, ErrNilBuffer
	case offset < 0 || offset > len(b):
		return false, ErrOffsetOutOfRange
	case count < 0 || count > len(b)-offset:
		return false, ErrCountOutOfRange
	}

	return true, nil
}
