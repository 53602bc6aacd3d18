package crockford32

import (
	"fmt"
	"slices"
	"strings"
)

const (

	// Only these remainders are possible for valid un-padded base32:
	// 0, 2, 4, 5, 7. Others imply bad input.

	validDecodeRemainder = uint8((1 << 0) | (1 << 2) | (1 << 4) | (1 << 5) | (1 << 7))
)

// DecodedLen returns the number of bytes encoded by n symbols.
//
// ErrOutOfRange is returned when n is negative and ErrInvalidBase32Length
// when no un-padded encoding has n symbols.
func DecodedLen(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrOutOfRange, n)
	}

	result := decodedLen(n)
	if result < 0 {
		return 0, fmt.Errorf("%w: %d symbols", ErrInvalidBase32Length, n)
	}

	return result, nil
}

// decodedLen returns the decoded length of base32 symbols
// with the provided length.
//
// If the input is zero the output will be zero. It is up
// to the calling context to choose how to handle the zero
// output case appropriately.
//
// If the input is invalid then -1 will be returned.
//
// invariants:
//
// - n must not be negative
func decodedLen(n int) int {
	rem := n % 8

	if (validDecodeRemainder & (uint8(1) << rem)) == 0 {
		return -1
	}

	return (n/8)*5 + (rem*5)/8
}

// trimTail strips trailing whitespace and legacy padding.
func trimTail[T string | []byte](src T) T {
	n := len(src)
	for n > 0 && strings.IndexByte(trimChars, src[n-1]) != -1 {
		n--
	}

	return src[:n]
}

// invalidChar locates the first symbol of group that is not in the alphabet.
// off is the index of group[0] within the caller's input.
func invalidChar[T string | []byte](group T, off int) error {
	for i := 0; i < len(group); i++ {
		if c := group[i]; decodeTab[c] == b32Invalid {
			return &CorruptInputError{Offset: off + i, Char: c, err: ErrInvalidBase32Char}
		}
	}

	panic("crockford32: group has no invalid symbol")
}

func nonZeroTail[T string | []byte](tail T, off int) error {
	i := len(tail) - 1

	return &CorruptInputError{Offset: off + i, Char: tail[i], err: ErrNonZeroTailBits}
}

// decode requires len(dst) >= decodedLen(len(src)) and that len(src) has a
// valid remainder.
//
// When strict is false the unused low-order bits of the last symbol of a
// partial group are discarded without inspection.
func decode[T string | []byte](dst []byte, src T, strict bool) error {
	var off int

	for len(src) >= 8 {
		_ = dst[4]

		c0 := decodeTab[src[0]]
		c1 := decodeTab[src[1]]
		c2 := decodeTab[src[2]]
		c3 := decodeTab[src[3]]
		c4 := decodeTab[src[4]]
		c5 := decodeTab[src[5]]
		c6 := decodeTab[src[6]]
		c7 := decodeTab[src[7]]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7) == b32Invalid {
			return invalidChar(src[:8], off)
		}

		dst[0] = (c0<<3 | c1>>2)
		dst[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		dst[2] = ((c3&0x0F)<<4 | c4>>1)
		dst[3] = ((c4&0x01)<<7 | c5<<2 | c6>>3)
		dst[4] = ((c6&0x07)<<5 | c7)

		src = src[8:]
		dst = dst[5:]
		off += 8
	}

	// Tail.
	switch len(src) {
	case 2:
		_ = dst[0]

		c0 := decodeTab[src[0]]
		c1 := decodeTab[src[1]]

		if (c0 | c1) == b32Invalid {
			return invalidChar(src, off)
		}

		// last 2 LSBs of last decoded value are unused for remainder=2
		if strict && (c1&0x03) != 0 {
			return nonZeroTail(src, off)
		}

		dst[0] = (c0<<3 | c1>>2)
	case 4:
		_ = dst[1]

		c0 := decodeTab[src[0]]
		c1 := decodeTab[src[1]]
		c2 := decodeTab[src[2]]
		c3 := decodeTab[src[3]]

		if (c0 | c1 | c2 | c3) == b32Invalid {
			return invalidChar(src, off)
		}

		// last 4 LSBs of last decoded value are unused for remainder=4
		if strict && (c3&0x0F) != 0 {
			return nonZeroTail(src, off)
		}

		dst[0] = (c0<<3 | c1>>2)
		dst[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
	case 5:
		_ = dst[2]

		c0 := decodeTab[src[0]]
		c1 := decodeTab[src[1]]
		c2 := decodeTab[src[2]]
		c3 := decodeTab[src[3]]
		c4 := decodeTab[src[4]]

		if (c0 | c1 | c2 | c3 | c4) == b32Invalid {
			return invalidChar(src, off)
		}

		// last 1 LSB of last decoded value is unused for remainder=5
		if strict && (c4&0x01) != 0 {
			return nonZeroTail(src, off)
		}

		dst[0] = (c0<<3 | c1>>2)
		dst[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		dst[2] = ((c3&0x0F)<<4 | c4>>1)
	case 7:
		_ = dst[3]

		c0 := decodeTab[src[0]]
		c1 := decodeTab[src[1]]
		c2 := decodeTab[src[2]]
		c3 := decodeTab[src[3]]
		c4 := decodeTab[src[4]]
		c5 := decodeTab[src[5]]
		c6 := decodeTab[src[6]]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6) == b32Invalid {
			return invalidChar(src, off)
		}

		// last 3 LSBs of last decoded value are unused for remainder=7
		if strict && (c6&0x07) != 0 {
			return nonZeroTail(src, off)
		}

		dst[0] = (c0<<3 | c1>>2)
		dst[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		dst[2] = ((c3&0x0F)<<4 | c4>>1)
		dst[3] = ((c4&0x01)<<7 | c5<<2 | c6>>3)
	}

	return nil
}

// decodeAlloc decodes an already trimmed src into a new slice sized exactly
// to the decoded length. Nothing is returned on failure.
func decodeAlloc[T string | []byte](src T, strict bool) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	n = decodedLen(n)
	if n < 0 {
		return nil, fmt.Errorf("%w: %d symbols", ErrInvalidBase32Length, len(src))
	}

	dst := make([]byte, n)

	if err := decode(dst, src, strict); err != nil {
		return nil, err
	}

	return dst, nil
}

// UnsafeDecode decodes the source slice into the destination slice.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
// Trailing whitespace and padding are not trimmed.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// Knowing the length of the slice now occupied by the decoded form of src
// is the responsibility of the caller. It can easily be computed by the
// expression ` (n/8)*5 + ((n%8)*5)/8` where n is the length of src.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >=  decodedLen(len(src))
//
// - len(src) is a valid base32 encoded value length
func UnsafeDecode(dst []byte, src []byte) error {
	// guard statements forcing panics with a clear message rather than
	// an index out of range from deep inside decode

	if n := decodedLen(len(src)); n <= 0 {
		panic("crockford32: invalid decode source length")
	} else if len(dst) < n {
		panic("crockford32: decode destination too short")
	}

	return decode(dst, src, false)
}

// Decode returns the decoded form of src. Trailing whitespace and '='
// characters are ignored. If nothing remains after trimming nil is
// returned.
//
// On error the returned slice is always nil.
func Decode(src []byte) ([]byte, error) {
	return decodeAlloc(trimTail(src), false)
}

// DecodeString is like Decode but takes the encoded form as a string.
func DecodeString(s string) ([]byte, error) {
	return decodeAlloc(trimTail(s), false)
}

// StrictDecode is like Decode but rejects input whose final symbol carries
// non-zero bits beyond the end of the decoded bytes. Such input fails with a
// CorruptInputError matching ErrNonZeroTailBits.
func StrictDecode(src []byte) ([]byte, error) {
	return decodeAlloc(trimTail(src), true)
}

// StrictDecodeString is like StrictDecode but takes the encoded form as a
// string.
func StrictDecodeString(s string) ([]byte, error) {
	return decodeAlloc(trimTail(s), true)
}

// AppendDecode returns the decoded form of src appended to dst.
// Trailing whitespace and '=' characters in src are ignored. If nothing
// remains after trimming dst is returned as-is.
//
// If an error occurs dst is returned unchanged alongside the error. Spare
// capacity beyond len(dst) may have been written to.
func AppendDecode(dst, src []byte) ([]byte, error) {
	src = trimTail(src)

	n := len(src)
	if n == 0 {
		return dst, nil
	}

	n = decodedLen(n)
	if n < 0 {
		return dst, fmt.Errorf("%w: %d symbols", ErrInvalidBase32Length, len(src))
	}

	orig := len(dst)

	out := slices.Grow(dst, n)
	out = out[:orig+n]

	if err := decode(out[orig:], src, false); err != nil {
		return dst, err
	}

	return out, nil
}
