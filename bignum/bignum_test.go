package bignum

import (
	"testing"

	"github.com/tinywasm/fmtcore/internal/testutils/assert"
)

func TestFromUint64SmallFitsOneBlock(t *testing.T) {
	bn := FromUint64(42)
	assert.Equal(t, []uint32{42}, bn.Digits())
}

func TestFromUint64LargeUsesTwoBlocks(t *testing.T) {
	bn := FromUint64(1 << 40)
	assert.Equal(t, 2, len(bn.Digits()))
}

func TestAddSmall(t *testing.T) {
	bn := FromUint32(10)
	bn.AddSmall(5)
	assert.Equal(t, []uint32{15}, bn.Digits())
}

func TestAddSmallCarries(t *testing.T) {
	bn := FromUint32(0xffffffff)
	bn.AddSmall(1)
	assert.Equal(t, []uint32{0, 1}, bn.Digits())
}

func TestSubSmall(t *testing.T) {
	bn := FromUint32(15)
	bn.SubSmall(5)
	assert.Equal(t, []uint32{10}, bn.Digits())
}

func TestMulSmall(t *testing.T) {
	bn := FromUint32(1000000000)
	bn.MulSmall(10)
	assert.Equal(t, uint64(10000000000), toUint64(&bn))
}

func TestMulPow5(t *testing.T) {
	bn := FromUint32(1)
	bn.MulPow5(3)
	assert.Equal(t, uint64(125), toUint64(&bn))
}

func TestMulPow2(t *testing.T) {
	bn := FromUint32(1)
	bn.MulPow2(33)
	assert.Equal(t, uint64(1)<<33, toUint64(&bn))
}

func TestDivRemSmall(t *testing.T) {
	bn := FromUint32(103)
	rem := bn.DivRemSmall(10)
	assert.Equal(t, uint32(3), rem)
	assert.Equal(t, uint64(10), toUint64(&bn))
}

func TestCompare(t *testing.T) {
	a := FromUint32(5)
	b := FromUint32(10)
	assert.Equal(t, -1, a.Compare(&b))
	assert.Equal(t, 1, b.Compare(&a))
	c := FromUint32(5)
	assert.Equal(t, 0, a.Compare(&c))
}

func TestMul(t *testing.T) {
	a := FromUint32(12345)
	b := FromUint32(6789)
	prod := a.Mul(&b)
	assert.Equal(t, uint64(12345)*6789, toUint64(&prod))
}

func TestAddSmallAtOverflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		bn := Bignum{size: MaxBlocks}
		for i := range bn.base {
			bn.base[i] = 0xffffffff
		}
		bn.AddSmallAt(0, 1)
	})
}

// toUint64 reassembles the little-endian blocks into a uint64, for test
// assertions on values small enough to fit.
func toUint64(bn *Bignum) uint64 {
	var v uint64
	digits := bn.Digits()
	for i := len(digits) - 1; i >= 0; i-- {
		v = v<<32 | uint64(digits[i])
	}
	return v
}
