// Package montgomery implements Montgomery multiplication and the
// Montgomery residue over fixed-length []uint32 word buffers, the two
// primitives a modular-exponentiation driver needs on top of the word-vector
// arithmetic in package bignum.
//
// Montgomery multiplication avoids trial division during reduction by
// working in "Montgomery form": for R = 2^N and odd modulus M, the image of
// a is a*R mod M. Computing in this domain and converting in and out with
// the residue Nr = R^2 mod M lets modular exponentiation run entirely on
// additions, shifts and comparisons.
//
// Both Prod and Residue are bit-serial: they cost O(N) word operations per
// bit rather than the O(N) word operations per *word* a CIOS-style
// implementation would use. That is intentional for this package — see
// Residue's doc comment.
package montgomery

import "github.com/secworks/modexp/bignum"

// Prod computes s = A*B*R^-1 mod M, where R = 2^N and N = 32*len(a). M must
// be odd and nonzero; A and B must be less than 2^N. s is caller-supplied
// scratch of the same length, overwritten with the result; it must not
// alias A, B, or M.
//
// The algorithm scans B one bit at a time, from its least significant bit
// (last word, bit 0) up to its most significant, interleaving reduction with
// accumulation:
// for each bit b of B, it predicts the low bit q that reduction would need
// to cancel (q = LSB(s) XOR (b AND LSB(A)), equivalent to the low bit of
// s - b*A) and conditionally adds M before conditionally adding b*A, then
// shifts right to absorb the bit that reduction just cleared. After 32*len
// iterations s = A*B*R^-1 mod M, but in the range [0, 2M) rather than
// [0, M) — Prod performs no final conditional subtraction. That is left out
// deliberately: the exit-from-Montgomery-form step in the exponentiation
// driver (see package modexp) tolerates an input in [0, 2M), and dropping
// the subtraction here keeps this routine's cost independent of whether
// s ended up above or below M.
func Prod(s, a, b, m []uint32) {
	bignum.Zero(s)
	lastWord := len(a) - 1
	for wordIndex := lastWord; wordIndex >= 0; wordIndex-- {
		bWord := b[wordIndex]
		for i := 0; i < 32; i++ {
			bit := (bWord >> uint(i)) & 1
			q := (s[lastWord] ^ (a[lastWord] & bit)) & 1
			if q == 1 {
				bignum.Add(s, s, m)
			}
			if bit == 1 {
				bignum.Add(s, s, a)
			}
			bignum.ShiftRight1(s, s)
		}
	}
}

// Residue computes nr = 2^(2N) mod m, where N = 32*len(m): the value that
// converts an integer into Montgomery form via Prod(dst, a, nr, m). temp is
// caller-supplied scratch of the same length as m/nr, used by the
// bit-serial reduction.
//
// nr starts at 1 and is doubled and reduced 2N times; each doubling is
// followed immediately by a reduction so nr never needs more than len(m)
// words to represent. This is O(N) reductions of O(N^2) cost each, so
// O(N^3) total — expensive compared to computing R^2 mod M directly with a
// general-purpose bigint, but that shortcut is exactly what this package
// avoids: the cost here mirrors the bit-serial cost structure the rest of
// this module's operations have, which is the point of a reference model
// meant to be checked against hardware with the same cost shape.
func Residue(nr, m, temp []uint32) {
	bignum.Zero(nr)
	nr[len(nr)-1] = 1
	n := 32 * len(m)
	for i := 0; i < 2*n; i++ {
		bignum.ShiftLeft1(nr, nr)
		bignum.Mod(nr, nr, m, temp)
	}
}
