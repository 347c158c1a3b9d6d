// Package bignum implements fixed-length, arbitrary-precision unsigned
// integer primitives over []uint32 word buffers.
//
// A big integer of width N = 32*len(a) bits is stored big-endian by word:
// a[0] is the most significant word, a[len(a)-1] the least significant.
// Within a word, bits are ordered the natural little-endian way (bit i of
// a word has value 2^i). Add, Sub and ShiftLeft1 carry toward the more
// significant words and so walk their buffers from the last index toward
// index 0; ShiftRight1 carries toward the less significant words and walks
// from index 0 upward. An implementation that reversed those directions
// would silently compute a different, wrong integer.
//
// All operands passed to a single call must share the same length. None of
// the primitives check this, or any other precondition.
package bignum

// Zero sets every word of a to zero.
func Zero(a []uint32) {
	for i := range a {
		a[i] = 0
	}
}

// Add computes r = (a + b) mod 2^N, where N = 32*len(a), propagating carry
// from the least significant word (the last index) to the most significant.
// The final carry out of word 0 is discarded: overflow wraps.
//
// r may alias a and/or b.
func Add(r, a, b []uint32) {
	var carry uint64
	for i := len(a) - 1; i >= 0; i-- {
		sum := uint64(a[i]) + uint64(b[i]) + carry
		r[i] = uint32(sum)
		carry = sum >> 32
	}
}

// Sub computes r = (a - b) mod 2^N using two's complement: the borrow chain
// is realized as carry-in 1 added to a[i] + ^b[i], discarding the final
// carry out of word 0.
//
// r may alias a and/or b.
func Sub(r, a, b []uint32) {
	carry := uint64(1)
	for i := len(a) - 1; i >= 0; i-- {
		sum := uint64(a[i]) + uint64(^b[i]) + carry
		r[i] = uint32(sum)
		carry = sum >> 32
	}
}

// ShiftLeft1 computes r = (a << 1) mod 2^N. The MSB of a[0] is discarded;
// the MSB of every other word carries into the LSB of the next
// more-significant word.
//
// r may alias a.
func ShiftLeft1(r, a []uint32) {
	var carry uint32
	for i := len(a) - 1; i >= 0; i-- {
		word := a[i]
		r[i] = (word << 1) | carry
		carry = word >> 31
	}
}

// ShiftRight1 computes r = a >> 1 (logical shift). The LSB of a[len(a)-1]
// is discarded; the LSB of every other word carries into the MSB of the
// next less-significant word.
//
// r may alias a.
func ShiftRight1(r, a []uint32) {
	var carry uint32
	for i := range a {
		word := a[i]
		r[i] = (word >> 1) | (carry << 31)
		carry = word & 1
	}
}

// GreaterThan reports whether a > b, comparing both as unsigned integers.
// It scans from the most significant word (index 0) and returns as soon as
// a word differs; equal operands return false.
func GreaterThan(a, b []uint32) bool {
	for i := range a {
		if a[i] > b[i] {
			return true
		}
		if a[i] < b[i] {
			return false
		}
	}
	return false
}
