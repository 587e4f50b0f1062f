package writer

import "github.com/tinywasm/fmtcore/result"

// Integer constrains WriteInt to Go's built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// WriteIntOptions configures WriteInt. The zero value writes base-10,
// lower-case digits.
type WriteIntOptions struct {
	Base      int
	UpperCase bool
}

func defaultWriteIntOptions() WriteIntOptions {
	return WriteIntOptions{Base: 10}
}

func isValidNumberBase(base int) bool {
	return base >= 2 && base <= 36
}

func numberOfDigits(value uint64, base int) int {
	if value == 0 {
		return 1
	}
	n := 0
	b := uint64(base)
	for value != 0 {
		n++
		value /= b
	}
	return n
}

const lowerDigitChars = "0123456789abcdefghijklmnopqrstuvwxyz"
const upperDigitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// writeDigits fills dst, right to left, with the base-n digits of value.
// len(dst) must equal numberOfDigits(value, base).
func writeDigits(dst []byte, value uint64, base int, upper bool) {
	digits := lowerDigitChars
	if upper {
		digits = upperDigitChars
	}
	b := uint64(base)
	i := len(dst)
	for i > 0 {
		i--
		dst[i] = digits[value%b]
		value /= b
	}
}

// WriteInt writes integer in the given options' base, with a leading '-' for
// negative values. The zero-value WriteIntOptions{} writes base-10.
func WriteInt[T Integer](w *Writer, integer T, opts ...WriteIntOptions) result.Result[result.Void] {
	options := defaultWriteIntOptions()
	if len(opts) > 0 {
		options = opts[0]
		if options.Base == 0 {
			options.Base = 10
		}
	}
	if !isValidNumberBase(options.Base) {
		return result.Err[result.Void](result.InvalidArgument)
	}

	var absValue uint64
	negative := false
	var zero T
	if zero-1 < zero {
		// T is a signed type: widen through int64 to negate safely.
		signedValue := int64(integer)
		if signedValue < 0 {
			negative = true
			absValue = uint64(-signedValue)
		} else {
			absValue = uint64(signedValue)
		}
	} else {
		absValue = uint64(integer)
	}

	digitCount := numberOfDigits(absValue, options.Base)
	total := digitCount
	if negative {
		total++
	}

	area := w.buf.GetWriteAreaOf(total)
	if area.HasError() {
		return result.Err[result.Void](area.Error())
	}
	dst := area.Value()
	if negative {
		dst[0] = '-'
	}
	writeDigits(dst[total-digitCount:], absValue, options.Base, options.UpperCase)
	return result.Ok(result.Success)
}
