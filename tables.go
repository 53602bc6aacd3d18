package crockford32

const (
	b32Invalid = 0xFF
	b32Chars   = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// trailing characters ignored by the decoders
	trimChars = " \n\r\t="
)

//
// encode and decode tables are using Crockford style case insensitive grammars
//

var encodeTab, decodeTab = func() ([32]byte, [256]byte) {
	const b32UpToLow = ('a' - 'A')

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	upLetter := func(v, i byte) {
		dec[v] = i
		dec[v+b32UpToLow] = i
	}

	for i := range b32Chars {
		i := byte(i)
		v := b32Chars[i]

		enc[i] = v
		if v > '9' {
			upLetter(v, i)
			continue
		}

		dec[v] = i
	}

	// char aliases
	upLetter('O', dec['0'])
	upLetter('I', dec['1'])
	upLetter('L', dec['1'])

	return enc, dec
}()
