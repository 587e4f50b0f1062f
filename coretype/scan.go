package coretype

import (
	"strconv"

	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
)

func baseOf(specType byte) (int, bool) {
	switch specType {
	case fmtspec.NoType, 'd':
		return 10, true
	case 'x', 'X':
		return 16, true
	case 'b', 'B':
		return 2, true
	case 'o':
		return 8, true
	default:
		return 0, false
	}
}

// ScanInteger reads an integer of type T at r's current position, per the
// base spec.Type selects.
func ScanInteger[T reader.Integer](r *reader.Reader, spec fmtspec.Spec) result.Result[T] {
	base, ok := baseOf(spec.Type)
	if !ok {
		return result.Err[T](result.InvalidFormat)
	}
	return reader.ParseInt[T](r, base)
}

// ScanBool reads "true"/"false" by default, or an integer (nonzero is true)
// when spec requests an explicit integer type.
func ScanBool(r *reader.Reader, spec fmtspec.Spec) result.Result[bool] {
	if spec.Type != fmtspec.NoType && spec.Type != 's' {
		v := ScanInteger[int64](r, spec)
		if v.HasError() {
			return result.Err[bool](v.Error())
		}
		return result.Ok(v.Value() != 0)
	}
	if r.ReadIfMatchStr("true") {
		return result.Ok(true)
	}
	if r.ReadIfMatchStr("false") {
		return result.Ok(false)
	}
	return result.Err[bool](result.InvalidData)
}

// ScanChar reads a single character, or (when spec requests an explicit
// integer type) an integer re-cast to a character.
func ScanChar(r *reader.Reader, spec fmtspec.Spec) result.Result[byte] {
	if spec.Type != fmtspec.NoType && spec.Type != 'c' {
		v := ScanInteger[int64](r, spec)
		if v.HasError() {
			return result.Err[byte](v.Error())
		}
		return result.Ok(byte(v.Value()))
	}
	return r.ReadChar()
}

// ScanString reads spec.Width characters if a width was given, else the
// remainder of the input.
func ScanString(r *reader.Reader, spec fmtspec.Spec) result.Result[string] {
	if spec.Width > 0 {
		return r.ReadNChars(spec.Width)
	}
	return result.Ok(r.ReadRemaining())
}

// ScanFloat reads a floating-point token (sign, digits, optional fraction
// and exponent) and parses it with the standard library's decimal-to-binary
// conversion; this module's own bignum/Dragon4 machinery only renders
// binary64 values to decimal, it has no reverse (decimal-to-binary) path,
// so parsing delegates to strconv rather than reimplementing that
// direction from scratch.
func ScanFloat(r *reader.Reader, spec fmtspec.Spec) result.Result[float64] {
	start := r.Pos()
	token := r.ReadUntil(func(c byte) bool {
		return !isFloatTokenByte(c)
	}, reader.ReadUntilOptions{KeepDelimiter: true})
	if token.HasError() {
		r.Unpop(r.Pos() - start)
		return result.Err[float64](token.Error())
	}
	v, err := strconv.ParseFloat(token.Value(), 64)
	if err != nil {
		r.Unpop(r.Pos() - start)
		return result.Err[float64](result.InvalidData)
	}
	return result.Ok(v)
}

func isFloatTokenByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		return true
	default:
		return false
	}
}
