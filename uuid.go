package crockford32

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDEncodedLen is the number of symbols in an encoded uuid.UUID.
const UUIDEncodedLen = 26

// EncodeUUID returns the 26 symbol encoded form of id's 16 bytes in
// RFC 4122 order.
func EncodeUUID(id uuid.UUID) string {
	var dst [UUIDEncodedLen]byte

	// three full groups: bytes 0-14 -> symbols 0-23
	for g := range 3 {
		s := id[g*5 : g*5+5]
		d := dst[g*8 : g*8+8]

		d[0] = encodeTab[s[0]>>3]
		d[1] = encodeTab[((s[0]<<2)|(s[1]>>6))&31]
		d[2] = encodeTab[(s[1]>>1)&31]
		d[3] = encodeTab[((s[1]<<4)|(s[2]>>4))&31]
		d[4] = encodeTab[((s[2]<<1)|(s[3]>>7))&31]
		d[5] = encodeTab[(s[3]>>2)&31]
		d[6] = encodeTab[((s[3]<<3)|(s[4]>>5))&31]
		d[7] = encodeTab[s[4]&31]
	}

	// one byte tail
	dst[24] = encodeTab[id[15]>>3]
	dst[25] = encodeTab[(id[15]<<2)&31]

	return string(dst[:])
}

// DecodeUUID parses the encoded form of a uuid.UUID using the same rules as
// DecodeString. ErrInvalidUUIDLength is returned when the input would decode
// to anything other than 16 bytes.
func DecodeUUID(s string) (uuid.UUID, error) {
	var id uuid.UUID

	s = trimTail(s)
	if decodedLen(len(s)) < 0 {
		return id, fmt.Errorf("%w: %d symbols", ErrInvalidBase32Length, len(s))
	}

	if len(s) != UUIDEncodedLen {
		return id, fmt.Errorf("%w: %d symbols", ErrInvalidUUIDLength, len(s))
	}

	if err := decode(id[:], s, false); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
