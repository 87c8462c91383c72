// Package base32 implements the base32 family of binary-to-text codecs:
// the RFC 4648 alphabet with and without padding, and Douglas Crockford's
// base32 tuned for human-typed identifiers.
//
// Decoding is case insensitive for every variant. The Crockford variant
// additionally folds the visually ambiguous letters O to 0 and I, L to 1 so
// transcribed identifiers survive the usual typing mistakes.
//
// Decoding is lenient about trailing slack: output length is derived from the
// input length and any non-zero bits left over in a short final group are
// dropped rather than rejected. Callers that need to detect truncated or
// tampered values should carry explicit length metadata alongside the encoded
// form.

package base32

import "errors"

// Encoding selects one of the supported base32 variants. The zero value is
// RFC4648.
type Encoding uint8

const (
	// RFC4648 uses the RFC 4648 alphabet and pads output with '=' up to a
	// full 8-symbol group.
	RFC4648 Encoding = iota

	// RFC4648NoPad uses the RFC 4648 alphabet without padding.
	RFC4648NoPad

	// Crockford uses Crockford's alphabet, no padding, and alias
	// resolution for O, I, and L on decode.
	Crockford
)

var (
	ErrNonASCIIInput     = errors.New("non-ascii base32 input")
	ErrInvalidBase32Char = errors.New("invalid base32 character")
)

const padChar = '='

func (enc Encoding) String() string {
	switch enc {
	case RFC4648:
		return "rfc4648"
	case RFC4648NoPad:
		return "rfc4648-nopad"
	case Crockford:
		return "crockford"
	}
	return "unknown"
}

func (enc Encoding) alphabet() (*[32]byte, *[256]byte) {
	switch enc {
	case RFC4648, RFC4648NoPad:
		return &rfcEncodeTab, &rfcDecodeTab
	case Crockford:
		return &ckEncodeTab, &ckDecodeTab
	}
	panic("base32: unknown encoding")
}

func (enc Encoding) padded() bool {
	return enc == RFC4648
}
