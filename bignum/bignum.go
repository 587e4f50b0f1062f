// Package bignum implements a stack-allocated, fixed-capacity
// arbitrary-precision unsigned integer, used by the Dragon4 decimal
// rendering algorithm to do exact scaling arithmetic on IEEE-754 mantissas.
package bignum

// MaxBlocks is the largest number of 32-bit blocks a Bignum can hold. This
// comfortably covers the largest magnitudes the float decoder ever needs to
// scale (a binary64's exponent range fits well inside 34 blocks of 32 bits).
const MaxBlocks = 34

type carryingAddResult struct {
	value uint32
	carry bool
}

func carryingAdd(a, b uint32, carry bool) carryingAddResult {
	v1 := a + b
	carry1 := v1 < a
	var c uint32
	if carry {
		c = 1
	}
	v2 := v1 + c
	carry2 := v2 < v1
	return carryingAddResult{v2, carry1 || carry2}
}

type borrowingSubResult struct {
	value  uint32
	borrow bool
}

func borrowingSub(a, b uint32, borrow bool) borrowingSubResult {
	v1 := a - b
	borrow1 := v1 > a
	var bo uint32
	if borrow {
		bo = 1
	}
	v2 := v1 - bo
	borrow2 := v2 > v1
	return borrowingSubResult{v2, borrow1 || borrow2}
}

type carryingMulResult struct {
	value uint32
	carry uint32
}

func carryingMul(a, b, carry uint32) carryingMulResult {
	v1 := uint64(a)*uint64(b) + uint64(carry)
	return carryingMulResult{uint32(v1), uint32(v1 >> 32)}
}

// Bignum is an arbitrary-precision unsigned integer backed by a fixed array
// of 32-bit blocks, little-endian: base[0] is the least significant block.
type Bignum struct {
	size int
	base [MaxBlocks]uint32
}

// Zero constructs a Bignum holding the value 0. Prefer this over a bare
// Bignum{} literal when the value is used as an operand (rather than purely
// as an accumulator built up through AddSmallAt), since the bare zero value
// reports size 0 instead of the canonical single zero block.
func Zero() Bignum {
	return Bignum{size: 1}
}

// FromUint32 constructs a Bignum from a single small unsigned value.
func FromUint32(v uint32) Bignum {
	bn := Bignum{size: 1}
	bn.base[0] = v
	return bn
}

// FromUint64 constructs a Bignum from a 64-bit unsigned value.
func FromUint64(v uint64) Bignum {
	bn := Bignum{size: 1}
	bn.base[0] = uint32(v)
	bn.base[1] = uint32(v >> 32)
	if bn.base[1] > 0 {
		bn.size = 2
	}
	return bn
}

// Digits returns the used blocks, least significant first, such that the
// numeric value is base[0] + base[1]*2^32 + base[2]*2^64 + ...
func (bn *Bignum) Digits() []uint32 {
	return bn.base[:bn.size]
}

// GetBit returns the i-th bit, bit 0 being the least significant.
func (bn *Bignum) GetBit(i int) uint8 {
	d := i / 32
	b := i % 32
	return uint8((bn.base[d] >> uint(b)) & 1)
}

// IsZero reports whether the value is zero.
func (bn *Bignum) IsZero() bool {
	for _, v := range bn.base {
		if v != 0 {
			return false
		}
	}
	return true
}

// AddSmall adds a single block-sized value to the Bignum.
func (bn *Bignum) AddSmall(other uint32) *Bignum {
	return bn.AddSmallAt(0, other)
}

// AddSmallAt adds other to the block at index, propagating carry upward. It
// panics if the carry chain would overflow the fixed capacity: callers must
// ensure the operation fits, exactly like the contract this is ported from.
func (bn *Bignum) AddSmallAt(index int, other uint32) *Bignum {
	i := index
	res := carryingAdd(bn.base[i], other, false)
	bn.base[i] = res.value
	i++
	for res.carry && i < len(bn.base) {
		res = carryingAdd(bn.base[i], 0, res.carry)
		bn.base[i] = res.value
		i++
	}
	if res.carry {
		panic("bignum: AddSmallAt overflowed fixed capacity")
	}
	if i > bn.size {
		bn.size = i
	}
	return bn
}

// Add adds other to bn in place.
func (bn *Bignum) Add(other *Bignum) *Bignum {
	res := carryingAddResult{}
	i := 0
	for i < other.size || (res.carry && i < len(bn.base)) {
		res = carryingAdd(bn.base[i], other.base[i], res.carry)
		bn.base[i] = res.value
		i++
	}
	if res.carry {
		panic("bignum: Add overflowed fixed capacity")
	}
	if i > bn.size {
		bn.size = i
	}
	return bn
}

// SubSmall subtracts a single block-sized value from bn in place.
func (bn *Bignum) SubSmall(other uint32) *Bignum {
	res := borrowingSub(bn.base[0], other, false)
	bn.base[0] = res.value
	i := 1
	for res.borrow && i < len(bn.base) {
		res = borrowingSub(bn.base[i], 0, res.borrow)
		bn.base[i] = res.value
		i++
	}
	if res.borrow {
		panic("bignum: SubSmall underflowed")
	}
	for bn.size > 1 && bn.base[bn.size-1] == 0 {
		bn.size--
	}
	return bn
}

// Sub subtracts other from bn in place. Requires bn >= other (by block
// count); violating this is a contract error and panics.
func (bn *Bignum) Sub(other *Bignum) *Bignum {
	if bn.size < other.size {
		panic("bignum: Sub requires bn.size >= other.size")
	}
	if bn.size == 0 {
		return bn
	}
	res := borrowingSubResult{}
	for i := 0; i < bn.size; i++ {
		res = borrowingSub(bn.base[i], other.base[i], res.borrow)
		bn.base[i] = res.value
	}
	if res.borrow {
		panic("bignum: Sub underflowed")
	}
	for bn.base[bn.size-1] == 0 {
		bn.size--
		if bn.size == 0 {
			break
		}
	}
	return bn
}

// MulSmall multiplies bn in place by a single block-sized value.
func (bn *Bignum) MulSmall(other uint32) *Bignum {
	return bn.MulAddSmall(other, 0)
}

// MulAddSmall multiplies bn in place by other and adds carry into the
// result, extending the block count if a final carry remains.
func (bn *Bignum) MulAddSmall(other, carry uint32) *Bignum {
	res := carryingMulResult{carry: carry}
	for i := 0; i < bn.size; i++ {
		res = carryingMul(bn.base[i], other, res.carry)
		bn.base[i] = res.value
	}
	if res.carry > 0 {
		bn.base[bn.size] = res.carry
		bn.size++
	}
	return bn
}

// Mul returns a new Bignum holding bn*other, using schoolbook long
// multiplication.
func (bn *Bignum) Mul(other *Bignum) Bignum {
	bnMax, bnMin := bn, other
	if other.size > bn.size {
		bnMax, bnMin = other, bn
	}

	var prod Bignum
	for i := 0; i < bnMin.size; i++ {
		res := carryingMulResult{}
		for j := 0; j < bnMax.size; j++ {
			res = carryingMul(bnMin.base[i], bnMax.base[j], res.carry)
			prod.AddSmallAt(i+j, res.value)
		}
		if res.carry > 0 {
			prod.AddSmallAt(i+bnMax.size, res.carry)
		}
	}
	return prod
}

// MulDigits multiplies bn in place by the value represented by the given
// little-endian block slice.
func (bn *Bignum) MulDigits(other []uint32) *Bignum {
	selfDigits := bn.Digits()
	bnMax, bnMin := selfDigits, other
	if len(other) > len(selfDigits) {
		bnMax, bnMin = other, selfDigits
	}

	var prod Bignum
	for i := 0; i < len(bnMin); i++ {
		res := carryingMulResult{}
		for j := 0; j < len(bnMax); j++ {
			res = carryingMul(bnMin[i], bnMax[j], res.carry)
			prod.AddSmallAt(i+j, res.value)
		}
		if res.carry > 0 {
			prod.AddSmallAt(i+len(bnMax), res.carry)
		}
	}
	*bn = prod
	return bn
}

// MulPow5 multiplies bn in place by 5^k.
func (bn *Bignum) MulPow5(k int) *Bignum {
	// 5^13 is the largest power of five that still fits a uint32.
	for k >= 13 {
		bn.MulSmall(1220703125)
		k -= 13
	}
	if k == 0 {
		return bn
	}
	restPower := uint32(5)
	for k > 1 {
		restPower *= 5
		k--
	}
	return bn.MulSmall(restPower)
}

// MulPow2 multiplies bn in place by 2^exp.
func (bn *Bignum) MulPow2(exp int) *Bignum {
	digits := exp / 32
	bits := exp % 32

	if digits > 0 {
		for i := bn.size; i > 0; i-- {
			bn.base[i+digits-1] = bn.base[i-1]
		}
		for i := 0; i < digits; i++ {
			bn.base[i] = 0
		}
		bn.size += digits
	}
	if bits > 0 {
		overflow := uint32(0)
		i := 0
		for ; i < bn.size; i++ {
			res := uint64(bn.base[i]) << uint(bits)
			bn.base[i] = uint32(res) + overflow
			overflow = uint32(res >> 32)
		}
		if overflow > 0 {
			bn.base[i] = overflow
			bn.size++
		}
	}
	return bn
}

// DivRemSmall divides bn in place by a single block-sized value and returns
// the remainder.
func (bn *Bignum) DivRemSmall(other uint32) uint32 {
	var borrow uint64
	for i := bn.size; i > 0; i-- {
		v := uint64(bn.base[i-1]) + (borrow << 32)
		res := v / uint64(other)
		bn.base[i-1] = uint32(res)
		borrow = v - res*uint64(other)
	}
	return uint32(borrow)
}

// Compare returns -1, 0, or 1 as bn is less than, equal to, or greater than
// other.
func (bn *Bignum) Compare(other *Bignum) int {
	if bn.size > other.size {
		return 1
	}
	if bn.size < other.size {
		return -1
	}
	for i := bn.size; i > 0; i-- {
		if bn.base[i-1] > other.base[i-1] {
			return 1
		}
		if bn.base[i-1] < other.base[i-1] {
			return -1
		}
	}
	return 0
}

// Equal reports whether bn and other hold the same value.
func (bn *Bignum) Equal(other *Bignum) bool {
	return bn.Compare(other) == 0
}
