// Package modexp computes Z = X^E mod M for arbitrary-precision unsigned
// integers represented as fixed-length big-endian-by-word []uint32 buffers,
// using Montgomery multiplication throughout so the exponentiation loop
// never performs a trial division.
//
// This is a reference model, not a general-purpose bignum library: there is
// no multiplication independent of Montgomery form, no signed arithmetic,
// no GCD, no prime generation, and no constant-time guarantee. It exists to
// be checked bit-for-bit against a hardware modular-exponentiation core, so
// it favors the hardware's own cost shape (bit-serial Montgomery product
// and residue, from package montgomery) over asymptotically faster
// word-serial algorithms.
package modexp

import (
	"github.com/secworks/modexp/bignum"
	"github.com/secworks/modexp/montgomery"
)

// ModExp computes z = x^e mod m by square-and-multiply over the bits of e,
// working entirely in Montgomery form.
//
// x, e, m and z must all have the same length L; M must be odd, X must be
// less than M, and E must be less than 2^(32*L). None of these preconditions
// are checked: like
// every primitive in this module, ModExp has undefined behavior if they are
// violated, and does not try to detect the violation.
func ModExp(z, x, e, m []uint32) {
	modExp(z, x, e, m)
}

// ModExp2 is the two-length variant of ModExp: the exponent e may be
// shorter than the modulus m (len(e) <= len(m)). x, m and z share m's
// length; the exponentiation loop scans at most 32*len(e) bits of e instead
// of 32*len(m), indexing e accordingly. No other behavior changes relative to
// ModExp.
func ModExp2(z, x, e, m []uint32) {
	modExp(z, x, e, m)
}

// modExp is the shared driver behind ModExp and ModExp2. Go slices already
// carry their own length, so a single implementation serves both entry
// points: the only difference between them is a documented caller
// precondition on how len(e) relates to len(m), not a code path.
func modExp(z, x, e, m []uint32) {
	lm := len(m)
	nr := make([]uint32, lm)
	p := make([]uint32, lm)
	one := make([]uint32, lm)
	temp := make([]uint32, lm)
	temp2 := make([]uint32, lm)

	// 1. Nr := 2^(2N) mod M.
	montgomery.Residue(nr, m, temp)

	// 2. Z0 := MontProd(1, Nr, M) = R mod M, the Montgomery image of 1.
	bignum.Zero(one)
	one[lm-1] = 1
	montgomery.Prod(z, one, nr, m)

	// 3. P0 := MontProd(X, Nr, M), the Montgomery image of X.
	montgomery.Prod(p, x, nr, m)

	// 4. Square-and-multiply, right-to-left over the bits of E, stopping at
	// its highest set bit: bits above that are certainly zero, so the loop
	// body would be a no-op for Z and a pure squaring of P that nothing
	// downstream reads — skipping them changes nothing about the result.
	n := highestSetBitPlusOne(e)
	for i := 0; i < n; i++ {
		if bitAt(e, i) == 1 {
			montgomery.Prod(temp2, z, p, m)
			copy(z, temp2)
		}
		montgomery.Prod(temp2, p, p, m)
		copy(p, temp2)
	}

	// 5. Z := MontProd(1, Z, M), converting the accumulator back out of
	// Montgomery form.
	montgomery.Prod(temp2, one, z, m)
	copy(z, temp2)
}

// bitAt returns bit i of e, indexed from the least significant bit (i=0),
// treating e as big-endian by word.
func bitAt(e []uint32, i int) uint32 {
	word := e[len(e)-1-(i/32)]
	return (word >> uint(i%32)) & 1
}

// highestSetBitPlusOne returns the index of e's most significant set bit,
// plus one, or 0 if e is entirely zero. This is the findN optimization from
// the reference model: it lets the exponentiation loop stop early when e's
// high words are zero. It is a pure optimization — looping the full
// 32*len(e) iterations unconditionally would produce the same Z, since the
// skipped high bits are all zero.
func highestSetBitPlusOne(e []uint32) int {
	n := 0
	for i := 0; i < 32*len(e); i++ {
		if bitAt(e, i) == 1 {
			n = i + 1
		}
	}
	return n
}
