package floatdecode

import (
	"math"
	"testing"

	"github.com/tinywasm/fmtcore/internal/testutils/assert"
)

func TestDecodeZero(t *testing.T) {
	r := Decode(0)
	assert.Equal(t, Zero, r.Category)
	assert.False(t, r.Negative)
}

func TestDecodeNegativeZero(t *testing.T) {
	r := Decode(math.Copysign(0, -1))
	assert.Equal(t, Zero, r.Category)
	assert.True(t, r.Negative)
}

func TestDecodeOne(t *testing.T) {
	// 1.0 has an all-zero fraction, so it sits at the lower boundary of its
	// binade: the asymmetric-error-bound branch doubles plus/mant and
	// shifts exp by 2 instead of 1.
	r := Decode(1.0)
	assert.Equal(t, Finite, r.Category)
	assert.False(t, r.Negative)
	assert.Equal(t, uint64(2), r.Finite.Plus)
	assert.Equal(t, uint64(1)<<54, r.Finite.Mant)
	assert.Equal(t, int16(-54), r.Finite.Exp)
}

func TestDecodeNonBoundaryMantissa(t *testing.T) {
	// 1.5 has a nonzero fraction, so the ordinary (symmetric) branch applies.
	r := Decode(1.5)
	assert.Equal(t, Finite, r.Category)
	assert.Equal(t, uint64(1), r.Finite.Plus)
	assert.Equal(t, uint64(1), r.Finite.Minus)
}

func TestDecodeInfinity(t *testing.T) {
	r := Decode(math.Inf(1))
	assert.Equal(t, Infinity, r.Category)
}

func TestDecodeNaN(t *testing.T) {
	r := Decode(math.NaN())
	assert.Equal(t, NaN, r.Category)
}

func TestDecodeNegative(t *testing.T) {
	r := Decode(-2.5)
	assert.True(t, r.Negative)
	assert.Equal(t, Finite, r.Category)
}
