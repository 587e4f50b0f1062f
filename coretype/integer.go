package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// Integer constrains the per-kind integer helpers to Go's built-in integer
// kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type intOptions struct {
	prefix    string
	base      int
	upperCase bool
}

func makeIntOptions(specType byte) (intOptions, bool) {
	switch specType {
	case fmtspec.NoType, 'd':
		return intOptions{base: 10}, true
	case 'x':
		return intOptions{prefix: "0x", base: 16}, true
	case 'X':
		return intOptions{prefix: "0X", base: 16, upperCase: true}, true
	case 'b':
		return intOptions{prefix: "0b", base: 2}, true
	case 'B':
		return intOptions{prefix: "0B", base: 2}, true
	case 'o':
		return intOptions{prefix: "0", base: 8}, true
	default:
		return intOptions{}, false
	}
}

func writeSignAndPrefix(w *writer.Writer, spec fmtspec.Spec, negative bool, prefix string) result.Result[result.Void] {
	if negative {
		if r := w.WriteChar('-'); r.HasError() {
			return r
		}
	} else if spec.Sign == '+' || spec.Sign == ' ' {
		if r := w.WriteChar(spec.Sign); r.HasError() {
			return r
		}
	}
	if spec.AlternateForm && prefix != "" {
		return w.WriteStr(prefix)
	}
	return result.Ok(result.Success)
}

// WriteInteger writes value per spec: decimal/binary/octal/hex per spec.Type,
// with an optional alternate-form prefix, sign handling and zero-padding,
// and a 'c' type that re-dispatches to character formatting.
func WriteInteger[T Integer](w *writer.Writer, spec fmtspec.Spec, value T) result.Result[result.Void] {
	if spec.Type == 'c' {
		return writePadded(w, &spec, fmtspec.AlignLeft, 1, func() result.Result[result.Void] {
			return w.WriteChar(byte(value))
		})
	}

	options, ok := makeIntOptions(spec.Type)
	if !ok {
		return result.Err[result.Void](result.InvalidFormat)
	}

	var absValue uint64
	negative := false
	var zero T
	if zero-1 < zero {
		signedValue := int64(value)
		if signedValue < 0 {
			negative = true
			absValue = uint64(-signedValue)
		} else {
			absValue = uint64(signedValue)
		}
	} else {
		absValue = uint64(value)
	}

	if spec.Type == 'o' && absValue == 0 {
		options.prefix = ""
	}

	digitCount := numberOfDigits(absValue, options.base)

	totalLength := digitCount
	if spec.AlternateForm {
		totalLength += len(options.prefix)
	}
	if negative || spec.Sign == ' ' || spec.Sign == '+' {
		totalLength++
	}

	if spec.ZeroFlag {
		if r := writeSignAndPrefix(w, spec, negative, options.prefix); r.HasError() {
			return r
		}
	}

	return writePadded(w, &spec, fmtspec.AlignRight, totalLength, func() result.Result[result.Void] {
		if !spec.ZeroFlag {
			if r := writeSignAndPrefix(w, spec, negative, options.prefix); r.HasError() {
				return r
			}
		}
		return writer.WriteInt(w, absValue, writer.WriteIntOptions{Base: options.base, UpperCase: options.upperCase})
	})
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
