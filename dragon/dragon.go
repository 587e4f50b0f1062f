// Package dragon implements the Dragon4 family of algorithms for rendering
// a decoded binary64 value into the shortest round-trippable decimal digit
// string, or into an exact decimal expansion truncated/rounded to a
// requested number of significant digits or a requested decimal point.
package dragon

import (
	"math/bits"

	"github.com/tinywasm/fmtcore/bignum"
	"github.com/tinywasm/fmtcore/floatdecode"
)

// maxSigDigits is the largest number of significant decimal digits a
// float64 can ever need to round-trip (DBL_MAX_DIGITS10 in C++ terms).
const maxSigDigits = 17

// FPResult is the outcome of a Dragon4 rendering: a run of ASCII decimal
// digits (no sign, no decimal point) together with the base-10 exponent k
// such that the rendered value is 0.Digits * 10^k.
type FPResult struct {
	Digits []byte
	Exp    int16
}

func estimateScalingFactor(mant uint64, exp int16) int16 {
	// 2^(nbits-1) < mant <= 2^nbits for mant > 0.
	nbits := 64 - bits.LeadingZeros64(mant-1)
	// 1292913986 = floor(2^32 * log10(2)); this always underestimates (or is
	// exact), never overestimates.
	return int16((int64(nbits+int(exp)) * 1292913986) >> 32)
}

// roundUp increments the decimal digit string d as if adding 1 to its
// least-significant digit, propagating the carry leftward. It reports an
// extra digit that the caller may append at the end of the buffer (and bumps
// the decimal exponent for) when every digit in d was '9'; in that case d
// itself is rewritten to "1" followed by zeros, representing the part of the
// carry that still fits in place, and the extra digit is '0'. For an empty d
// the extra digit is '1'.
func roundUp(d []byte) (extra byte, hasExtra bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != '9' {
			d[i]++
			for j := i + 1; j < len(d); j++ {
				d[j] = '0'
			}
			return 0, false
		}
	}
	if len(d) > 0 {
		d[0] = '1'
		for i := 1; i < len(d); i++ {
			d[i] = '0'
		}
		return '0', true
	}
	return '1', true
}

// ExactMode selects which quantity ExactDigits/ExactFixed's numberOfDigits
// argument constrains.
type ExactMode uint8

const (
	// SignificandDigits renders exactly numberOfDigits significant digits.
	SignificandDigits ExactMode = iota
	// DecimalPoint renders digits up to numberOfDigits places after the
	// decimal point (used for fixed-precision formatting).
	DecimalPoint
)

// Exact renders dec to an exact decimal expansion per mode, with
// numberOfDigits significant digits (SignificandDigits) or numberOfDigits
// digits after the decimal point (DecimalPoint), rounding to nearest with
// ties to even.
func Exact(dec floatdecode.Finite, mode ExactMode, numberOfDigits int16) FPResult {
	if dec.Mant == 0 {
		panic("dragon: Exact requires a nonzero mantissa")
	}

	k := estimateScalingFactor(dec.Mant, dec.Exp)

	mant := bignum.FromUint64(dec.Mant)
	scale := bignum.FromUint32(1)

	s2, s5, m2, m5 := scalingExponents(dec.Exp, k)
	scale.MulPow5(s5)
	scale.MulPow2(s2)
	mant.MulPow5(m5)
	mant.MulPow2(m2)

	var length int
	var extraLen int
	switch mode {
	case SignificandDigits:
		length = int(numberOfDigits)
	case DecimalPoint:
		if int(k)+int(numberOfDigits) >= 0 {
			length = int(k) + int(numberOfDigits)
			extraLen = 1
		}
	}

	if mant.Compare(&scale) >= 0 {
		k++
		length += extraLen
	} else {
		mant.MulSmall(10)
	}

	dst := make([]byte, length, length+1)

	if length > 0 {
		scale2, scale4, scale8 := scaledCopies(&scale)

		for i := 0; i < length; i++ {
			if mant.IsZero() {
				for j := i; j < length; j++ {
					dst[j] = '0'
				}
				return FPResult{Digits: dst, Exp: k}
			}
			dst[i] = genDigit(&mant, &scale, &scale2, &scale4, &scale8)
			mant.MulSmall(10)
		}
	}

	scale.MulSmall(5)
	order := mant.Compare(&scale)
	if order > 0 || (order == 0 && length > 0 && dst[length-1]&1 == 1) {
		if extra, hasExtra := roundUp(dst[:length]); hasExtra {
			k++
			if mode == DecimalPoint && int(k) > -int(numberOfDigits) {
				dst = dst[:length+1]
				dst[length] = extra
				length++
			}
		}
	}
	return FPResult{Digits: dst[:length], Exp: k}
}

// ExactDigits renders dec to exactly numberOfDigits significant digits.
func ExactDigits(dec floatdecode.Finite, numberOfDigits int16) FPResult {
	return Exact(dec, SignificandDigits, numberOfDigits)
}

// ExactFixed renders dec with numberOfDigits digits after the decimal
// point, as used for fixed-precision ('%f'-style) formatting.
func ExactFixed(dec floatdecode.Finite, numberOfDigits int16) FPResult {
	return Exact(dec, DecimalPoint, numberOfDigits)
}

// Shortest renders dec to the shortest decimal digit string that still
// round-trips to the same binary64 value.
func Shortest(dec floatdecode.Finite) FPResult {
	if dec.Mant == 0 || dec.Minus == 0 || dec.Plus == 0 {
		panic("dragon: Shortest requires a nonzero finite decoding")
	}

	rounding := func(order int) bool {
		if dec.Inclusive {
			return order <= 0
		}
		return order < 0
	}

	k := estimateScalingFactor(dec.Mant+dec.Plus, dec.Exp)

	mant := bignum.FromUint64(dec.Mant)
	minus := bignum.FromUint64(dec.Minus)
	plus := bignum.FromUint64(dec.Plus)
	scale := bignum.FromUint32(1)

	s2, s5, m2, m5 := scalingExponents(dec.Exp, k)
	scale.MulPow5(s5)
	scale.MulPow2(s2)
	mant.MulPow5(m5)
	mant.MulPow2(m2)
	minus.MulPow5(m5)
	minus.MulPow2(m2)
	plus.MulPow5(m5)
	plus.MulPow2(m2)

	mantPlus := mant
	mantPlus.Add(&plus)
	if rounding(scale.Compare(&mantPlus)) {
		k++
	} else {
		mant.MulSmall(10)
		minus.MulSmall(10)
		plus.MulSmall(10)
	}

	scale2, scale4, scale8 := scaledCopies(&scale)

	dst := make([]byte, maxSigDigits, maxSigDigits+1)

	var down, up bool
	i := 0
	for {
		dst[i] = genDigit(&mant, &scale, &scale2, &scale4, &scale8)
		i++

		down = rounding(mant.Compare(&minus))
		mantPlus := mant
		mantPlus.Add(&plus)
		up = rounding(scale.Compare(&mantPlus))
		if down || up {
			break
		}
		mant.MulSmall(10)
		minus.MulSmall(10)
		plus.MulSmall(10)
	}

	if up {
		doubledMant := mant
		doubledMant.MulPow2(1)
		if !down || doubledMant.Compare(&scale) >= 0 {
			if extra, hasExtra := roundUp(dst[:i]); hasExtra {
				dst = dst[:i+1]
				dst[i] = extra
				i++
				k++
			}
		}
	}
	return FPResult{Digits: dst[:i], Exp: k}
}

func scalingExponents(exp, k int16) (s2, s5, m2, m5 int) {
	if exp < 0 {
		s2 = int(-exp)
	} else {
		m2 += int(exp)
	}
	if k >= 0 {
		s2 += int(k)
		s5 += int(k)
	} else {
		m2 += int(-k)
		m5 += int(-k)
	}
	return s2, s5, m2, m5
}

func scaledCopies(scale *bignum.Bignum) (scale2, scale4, scale8 bignum.Bignum) {
	scale2 = *scale
	scale2.MulPow2(1)
	scale4 = *scale
	scale4.MulPow2(2)
	scale8 = *scale
	scale8.MulPow2(3)
	return
}

// genDigit generates a single digit d = floor(mant/scale) < 10 via
// successive conditional subtraction of 8x, 4x, 2x, 1x the scale, mutating
// mant to the remainder.
func genDigit(mant, scale, scale2, scale4, scale8 *bignum.Bignum) byte {
	d := 0
	if mant.Compare(scale8) >= 0 {
		mant.Sub(scale8)
		d += 8
	}
	if mant.Compare(scale4) >= 0 {
		mant.Sub(scale4)
		d += 4
	}
	if mant.Compare(scale2) >= 0 {
		mant.Sub(scale2)
		d += 2
	}
	if mant.Compare(scale) >= 0 {
		mant.Sub(scale)
		d += 1
	}
	return byte('0' + d)
}
