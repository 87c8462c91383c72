package base32

const (
	b32Invalid = 0xFF

	rfcChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	ckChars  = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	b32UpToLow = ('a' - 'A')
)

//
// decode tables bake in case insensitive grammars so no per-character
// folding happens at decode time
//

func newTabs(chars string) ([32]byte, [256]byte) {
	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	for i := range chars {
		i := byte(i)
		v := chars[i]

		enc[i] = v
		dec[v] = i
		if v > '9' {
			dec[v+b32UpToLow] = i
		}
	}

	return enc, dec
}

var rfcEncodeTab, rfcDecodeTab = func() ([32]byte, [256]byte) {
	enc, dec := newTabs(rfcChars)

	// '=' decodes as a zero quintet so padded final groups run through
	// the same bit reconstruction as full ones
	dec[padChar] = 0

	return enc, dec
}()

var ckEncodeTab, ckDecodeTab = func() ([32]byte, [256]byte) {
	enc, dec := newTabs(ckChars)

	// char aliases
	upLetter := func(v, i byte) {
		dec[v] = i
		dec[v+b32UpToLow] = i
	}
	upLetter('O', dec['0'])
	upLetter('I', dec['1'])
	upLetter('L', dec['1'])

	return enc, dec
}()
