package crockford32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const invalidDecodeVal = byte(b32Invalid)

	is := assert.New(t)

	validChar := func(c byte) (byte, int8) {
		if c >= 'a' && c <= 'z' {
			c -= ('a' - 'A')
		}
		switch c {
		case 'O':
			c = '0'
		case 'I':
			c = '1'
		case 'L':
			c = '1'
		}
		return c, int8(strings.IndexByte(b32Chars, c))
	}

	for i := range 256 {
		c := byte(i)

		uc, i := validChar(c)
		if i == -1 {
			is.Equal(invalidDecodeVal, decodeTab[c])
			continue
		}

		is.Equal(i, int8(decodeTab[c]))
		is.Equal(uc, encodeTab[i])
	}

	// verify hardcoded alias values
	is.Equal(uint8(0), decodeTab['0'])
	is.Equal(uint8(1), decodeTab['1'])
	is.Equal(uint8(0), decodeTab['o'])
	is.Equal(uint8(1), decodeTab['l'])
	is.Equal(invalidDecodeVal, decodeTab['U'])
	is.Equal(invalidDecodeVal, decodeTab['u'])
}

func TestTablesForwardIsBijective(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	seen := map[byte]bool{}
	for v, c := range encodeTab {
		is.False(seen[c], "symbol %q repeats", c)
		seen[c] = true

		is.Equal(byte(v), decodeTab[c])
	}

	is.Len(seen, 32)
	is.NotContains(string(encodeTab[:]), "I")
	is.NotContains(string(encodeTab[:]), "L")
	is.NotContains(string(encodeTab[:]), "O")
	is.NotContains(string(encodeTab[:]), "U")
}

func Test_trimTail(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal("", trimTail(""))
	is.Equal("", trimTail(" \t\r\n=="))
	is.Equal("D1N0", trimTail("D1N0"))
	is.Equal("D1N0", trimTail("D1N0====\r\n"))
	is.Equal("D1N0", trimTail("D1N0= \t"))
	is.Equal(" D1 N0", trimTail(" D1 N0 "))
	is.Equal([]byte("91JP"), trimTail([]byte("91JP=\n")))
}
