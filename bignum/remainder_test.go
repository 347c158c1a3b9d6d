package bignum

import (
	"math/big"
	"testing"
	"testing/quick"
)

func toBig(words []uint32) *big.Int {
	b := new(big.Int)
	for _, w := range words {
		b.Lsh(b, 32)
		b.Or(b, new(big.Int).SetUint64(uint64(w)))
	}
	return b
}

func TestModLessThanModulusIsIdentity(t *testing.T) {
	t.Parallel()

	a := []uint32{0x00000000, 0x00000005}
	m := []uint32{0x00000000, 0x0000000b}
	temp := make([]uint32, 2)
	rem := make([]uint32, 2)

	Mod(rem, a, m, temp)
	assertWordsEqual(t, rem, a)
}

func TestModReducesLargerValue(t *testing.T) {
	t.Parallel()

	a := []uint32{0x00000000, 0x00000064} // 100
	m := []uint32{0x00000000, 0x0000000b} // 11
	temp := make([]uint32, 2)
	rem := make([]uint32, 2)

	Mod(rem, a, m, temp)
	// 100 mod 11 = 1
	assertWordsEqual(t, rem, []uint32{0x00000000, 0x00000001})
}

func TestModAliasesRemAndA(t *testing.T) {
	t.Parallel()

	a := []uint32{0x00000000, 0x00000064}
	m := []uint32{0x00000000, 0x0000000b}
	temp := make([]uint32, 2)

	Mod(a, a, m, temp)
	assertWordsEqual(t, a, []uint32{0x00000000, 0x00000001})
}

func TestModAgainstMathBig(t *testing.T) {
	t.Parallel()

	const length = 3

	err := quick.Check(func(a0, a1, a2 uint32, mLow uint32) bool {
		// force modulus odd and nonzero in its low word, with a nonzero
		// high structure so it isn't trivially 0 or 1.
		m := []uint32{0x00000001, 0x00000000, mLow | 1}
		a := []uint32{a0, a1, a2}

		temp := make([]uint32, length)
		rem := make([]uint32, length)
		Mod(rem, a, m, temp)

		want := new(big.Int).Mod(toBig(a), toBig(m))
		got := toBig(rem)
		return got.Cmp(want) == 0
	}, &quick.Config{MaxCount: 200})
	if err != nil {
		t.Error(err)
	}
}

func TestModResultLessThanModulus(t *testing.T) {
	t.Parallel()

	const length = 2
	err := quick.Check(func(a0, a1, mLow uint32) bool {
		m := []uint32{0x00000000, mLow | 1}
		if m[1] == 0 {
			return true
		}
		a := []uint32{a0, a1}
		temp := make([]uint32, length)
		rem := make([]uint32, length)
		Mod(rem, a, m, temp)
		return !GreaterThan(rem, m) && (rem[0] != m[0] || rem[1] != m[1])
	}, &quick.Config{MaxCount: 200})
	if err != nil {
		t.Error(err)
	}
}
