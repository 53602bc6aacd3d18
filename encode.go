package crockford32

import (
	"fmt"
	"slices"
)

// EncodedLen returns the number of symbols required to encode n bytes.
//
// Zero bytes encode to zero symbols. ErrOutOfRange is returned when n is
// negative and ErrEncodedLenOverflow when the result cannot be represented
// as an int.
func EncodedLen(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrOutOfRange, n)
	}

	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		return 0, ErrEncodedLenOverflow
	}

	return result, nil
}

// encodedLenExpression computes full groups of 8 symbols plus the tail table
// 1->2, 2->4, 3->5, 4->7.
func encodedLenExpression(n int) int {
	return (n/5)*8 + ((n%5)*8+4)/5
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("crockford32: invalid encode source length")
	}

	return result
}

// encode requires len(dst) >= encodedLenExpression(len(src)).
func encode[T string | []byte](dst []byte, src T) {

	for len(src) >= 5 {
		_ = dst[7]

		b0, b1, b2, b3, b4 := src[0], src[1], src[2], src[3], src[4]

		dst[0] = encodeTab[b0>>3]
		dst[1] = encodeTab[((b0<<2)|(b1>>6))&31]
		dst[2] = encodeTab[(b1>>1)&31]
		dst[3] = encodeTab[((b1<<4)|(b2>>4))&31]
		dst[4] = encodeTab[((b2<<1)|(b3>>7))&31]
		dst[5] = encodeTab[(b3>>2)&31]
		dst[6] = encodeTab[((b3<<3)|(b4>>5))&31]
		dst[7] = encodeTab[b4&31]

		src = src[5:]
		dst = dst[8:]
	}

	// Tail (no padding).
	switch len(src) {
	case 1:
		_ = dst[1]

		b0 := src[0]

		dst[0] = encodeTab[b0>>3]
		dst[1] = encodeTab[(b0<<2)&31]
	case 2:
		_ = dst[3]

		b0, b1 := src[0], src[1]

		dst[0] = encodeTab[b0>>3]
		dst[1] = encodeTab[((b0<<2)|(b1>>6))&31]
		dst[2] = encodeTab[(b1>>1)&31]
		dst[3] = encodeTab[(b1<<4)&31]
	case 3:
		_ = dst[4]

		b0, b1, b2 := src[0], src[1], src[2]

		dst[0] = encodeTab[b0>>3]
		dst[1] = encodeTab[((b0<<2)|(b1>>6))&31]
		dst[2] = encodeTab[(b1>>1)&31]
		dst[3] = encodeTab[((b1<<4)|(b2>>4))&31]
		dst[4] = encodeTab[(b2<<1)&31]
	case 4:
		_ = dst[6]

		b0, b1, b2, b3 := src[0], src[1], src[2], src[3]

		dst[0] = encodeTab[b0>>3]
		dst[1] = encodeTab[((b0<<2)|(b1>>6))&31]
		dst[2] = encodeTab[(b1>>1)&31]
		dst[3] = encodeTab[((b1<<4)|(b2>>4))&31]
		dst[4] = encodeTab[((b2<<1)|(b3>>7))&31]
		dst[5] = encodeTab[(b3>>2)&31]
		dst[6] = encodeTab[(b3<<3)&31]
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of src
// is the responsibility of the caller. It can easily be computed by the
// expression ` (n/5)*8 + ((n%5)*8+4)/5 ` where n is the length of src.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src))
func UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics with a clear message rather than
	// an index out of range from deep inside encode

	if n := encodedLen(len(src)); len(dst) < n {
		panic("crockford32: encode destination too short")
	}

	encode(dst, src)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	dst := make([]byte, encodedLen(n))

	encode(dst, src)

	return dst
}

// EncodeToString returns the encoded form of src as a string. An empty src
// encodes to "".
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	dst := make([]byte, encodedLen(n))

	encode(dst, src)

	return string(dst)
}

// EncodeRange returns the encoded form of src[offset:offset+length].
//
// ErrOutOfRange is returned when offset or length is negative or the range
// extends past the end of src. Nothing is allocated in that case.
func EncodeRange(src []byte, offset, length int) (string, error) {
	if err := checkRange(len(src), offset, length); err != nil {
		return "", err
	}

	if length == 0 {
		return "", nil
	}

	n, err := EncodedLen(length)
	if err != nil {
		return "", err
	}

	dst := make([]byte, n)

	encode(dst, src[offset:offset+length])

	return string(dst), nil
}

// EncodeInto writes the encoded form of src[srcOffset:srcOffset+length] into
// dst starting at dstOffset and returns the number of symbols written.
//
// ErrOutOfRange is returned without writing anything when any offset or the
// length is negative, when the source range extends past the end of src, or
// when dst cannot hold the encoded symbols at dstOffset.
func EncodeInto(src []byte, srcOffset, length int, dst []byte, dstOffset int) (int, error) {
	if err := checkRange(len(src), srcOffset, length); err != nil {
		return 0, err
	}

	if dstOffset < 0 {
		return 0, fmt.Errorf("%w: dstOffset=%d", ErrOutOfRange, dstOffset)
	}

	if length == 0 {
		return 0, nil
	}

	n, err := EncodedLen(length)
	if err != nil {
		return 0, err
	}

	if dstOffset > len(dst)-n {
		return 0, fmt.Errorf("%w: dstOffset=%d needs %d symbols in a buffer of %d", ErrOutOfRange, dstOffset, n, len(dst))
	}

	encode(dst[dstOffset:dstOffset+n], src[srcOffset:srcOffset+length])

	return n, nil
}

// checkRange validates an offset/length pair against a buffer of size n.
func checkRange(n, offset, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: length=%d", ErrOutOfRange, length)
	}

	if offset < 0 {
		return fmt.Errorf("%w: offset=%d", ErrOutOfRange, offset)
	}

	if offset > n-length {
		return fmt.Errorf("%w: offset=%d length=%d exceeds buffer of %d", ErrOutOfRange, offset, length, n)
	}

	return nil
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], src)

	return dst
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], src)

	return dst
}
