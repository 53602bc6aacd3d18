// Package crockford32 implements Crockford's base32 encoding of arbitrary
// bytes. Padding is never emitted.
//
// Decoding is case insensitive and accepts the look-alike substitutions
// 'O'/'o' for '0' and 'I'/'i'/'L'/'l' for '1'. Trailing whitespace and '='
// characters are trimmed before decoding so inputs produced by padding-aware
// encoders are still accepted.
//
// The unused low-order bits of the last symbol of a partial group are ignored
// by the default decoders. Use StrictDecode or StrictDecodeString when a
// non-zero tail should be treated as corrupt input, for example when the
// encoded value is used as a canonical key and two spellings of the same bytes
// must not both be accepted.
package crockford32

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidBase32Length = errors.New("invalid base32 length")
	ErrInvalidBase32Char   = errors.New("invalid base32 character")
	ErrNonZeroTailBits     = errors.New("non-zero base32 tail bits")
	ErrOutOfRange          = errors.New("argument out of range")
	ErrEncodedLenOverflow  = errors.New("base32 encoded length overflows int")
	ErrInvalidUUIDLength   = errors.New("invalid base32 uuid length")
)

// CorruptInputError is returned by the decoders when a symbol cannot be
// decoded. Offset is the byte index of the symbol within the caller's input.
//
// It matches ErrInvalidBase32Char with errors.Is, or ErrNonZeroTailBits when
// a strict decoder found unused bits set in the final symbol.
type CorruptInputError struct {
	Offset int
	Char   byte

	err error
}

func (e *CorruptInputError) Error() string {
	return e.err.Error() + " " + strconv.QuoteRuneToASCII(rune(e.Char)) + " at input byte " + strconv.Itoa(e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.err
}
