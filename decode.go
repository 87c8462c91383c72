// Decoding here is deliberately tolerant of non-canonical input: the output
// length is derived from the input length after stripping trailing padding,
// and any bits left over in a short final symbol group are dropped without
// checking that they were zero. A symbol count that could never be produced
// by an encoder (such as a single leftover character) simply contributes no
// output bytes. The only hard failures are non-ASCII input and characters
// outside the alphabet.

package base32

import (
	"slices"
	"unsafe"
)

// DecodedLength returns the number of bytes the contents of src decode to.
// Trailing padding, which can never exceed 6 of the final group's 8 symbols,
// is excluded before the length is computed. The result is the same for
// every encoding; zero input yields zero.
func DecodedLength(src []byte) int {
	n := unpaddedLen(src)

	// floor(5*n/8), kept in two terms so huge inputs cannot overflow
	return (n/8)*5 + (n%8)*5/8
}

func unpaddedLen(src []byte) int {
	n := len(src)

	for range min(6, n) {
		if src[n-1] != padChar {
			break
		}
		n--
	}

	return n
}

func isASCII(src []byte) bool {
	for _, c := range src {
		if c >= 0x80 {
			return false
		}
	}

	return true
}

func decode(dst []byte, src []byte, tab *[256]byte) error {
	for len(src) >= 8 && len(dst) >= 5 {
		c0 := tab[src[0]]
		c1 := tab[src[1]]
		c2 := tab[src[2]]
		c3 := tab[src[3]]
		c4 := tab[src[4]]
		c5 := tab[src[5]]
		c6 := tab[src[6]]
		c7 := tab[src[7]]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7) == b32Invalid {
			return ErrInvalidBase32Char
		}

		dst[0] = (c0<<3 | c1>>2)
		dst[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		dst[2] = ((c3&0x0F)<<4 | c4>>1)
		dst[3] = ((c4&0x01)<<7 | c5<<2 | c6>>3)
		dst[4] = ((c6&0x07)<<5 | c7)

		src, dst = src[8:], dst[5:]
	}

	// Tail: short or padding-bearing groups run through a zero-filled
	// quintet buffer and only the bytes dst still has room for land.
	for len(src) > 0 {
		n := min(len(src), 8)

		var q [8]byte
		for i, c := range src[:n] {
			v := tab[c]
			if v == b32Invalid {
				return ErrInvalidBase32Char
			}
			q[i] = v
		}

		var b [5]byte
		b[0] = (q[0]<<3 | q[1]>>2)
		b[1] = ((q[1]&0x03)<<6 | q[2]<<1 | q[3]>>4)
		b[2] = ((q[3]&0x0F)<<4 | q[4]>>1)
		b[3] = ((q[4]&0x01)<<7 | q[5]<<2 | q[6]>>3)
		b[4] = ((q[6]&0x07)<<5 | q[7])

		dst = dst[copy(dst, b[:]):]
		src = src[n:]
	}

	return nil
}

// UnsafeDecode decodes the source slice into the destination slice.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// Knowing the length of the slice now occupied by the decoded form of src
// is the responsibility of the caller; it equals DecodedLength(src).
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= DecodedLength(src)
func (enc Encoding) UnsafeDecode(dst []byte, src []byte) error {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if len(src) == 0 {
		panic("base32: invalid decode source length")
	}

	n := DecodedLength(src)
	if len(dst) < n {
		panic("base32: decode destination too short")
	}

	if !isASCII(src) {
		return ErrNonASCIIInput
	}

	_, tab := enc.alphabet()

	return decode(dst[:n], src, tab)
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// Decoding is case insensitive and, for Crockford, alias resolving. Inputs
// containing bytes outside the ASCII range fail with ErrNonASCIIInput before
// any characters are examined; characters outside the alphabet fail with
// ErrInvalidBase32Char.
//
// If an error is returned the caller must not assume the returned slice
// is nil. It is the caller's responsibility to choose how to handle a
// non-nil result in such a case. If the data is not sensitive simply
// ignore it. If it is sensitive consider clearing the slice of
// contents. There is no guarantee about the contents of the slice when a
// non-nil error is returned. It could be partially decoded or contain
// empty bytes.
func (enc Encoding) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	if !isASCII(src) {
		return nil, ErrNonASCIIInput
	}

	_, tab := enc.alphabet()

	dst := make([]byte, DecodedLength(src))

	err := decode(dst, src, tab)

	return dst, err
}

// DecodeString behaves like Decode over the bytes of src.
func (enc Encoding) DecodeString(src string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return enc.Decode(unsafe.Slice(unsafe.StringData(src), len(src)))
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then an error will be returned.
//
// If an error is returned the caller must not assume the returned slice
// is nil. It is the caller's responsibility to choose how to handle a
// non-nil result in such a case. There is no guarantee about the contents
// of the appended slice when a non-nil error is returned. It could be
// partially decoded or contain empty bytes.
func (enc Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	if !isASCII(src) {
		return nil, ErrNonASCIIInput
	}

	_, tab := enc.alphabet()

	n := DecodedLength(src)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	err := decode(dst[orig:], src, tab)

	return dst, err
}
