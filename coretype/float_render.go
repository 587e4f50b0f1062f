package coretype

import (
	"github.com/tinywasm/fmtcore/dragon"
	"github.com/tinywasm/fmtcore/floatdecode"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// writeFixedFromDigits lays digits (with decimal-point position k, meaning
// the value equals 0.Digits * 10^k) out in fixed-point notation. An empty
// digits slice means the value rounded away to fewer significant digits
// than fracDigits calls for (e.g. a tiny value under low precision); in
// that case fracDigits zeros are still emitted after the point.
func writeFixedFromDigits(w *writer.Writer, digits []byte, k, fracDigits int, forcePoint bool) result.Result[result.Void] {
	if len(digits) == 0 {
		if r := w.WriteChar('0'); r.HasError() {
			return r
		}
		if fracDigits > 0 {
			if r := w.WriteChar('.'); r.HasError() {
				return r
			}
			return w.WriteCharN('0', fracDigits)
		}
		if forcePoint {
			return w.WriteChar('.')
		}
		return result.Ok(result.Success)
	}
	if k <= 0 {
		if r := w.WriteStr("0."); r.HasError() {
			return r
		}
		if r := w.WriteCharN('0', -k); r.HasError() {
			return r
		}
		return w.WriteStr(string(digits))
	}
	if k >= len(digits) {
		if r := w.WriteStr(string(digits)); r.HasError() {
			return r
		}
		if r := w.WriteCharN('0', k-len(digits)); r.HasError() {
			return r
		}
		if forcePoint {
			return w.WriteChar('.')
		}
		return result.Ok(result.Success)
	}
	if r := w.WriteStr(string(digits[:k])); r.HasError() {
		return r
	}
	if r := w.WriteChar('.'); r.HasError() {
		return r
	}
	return w.WriteStr(string(digits[k:]))
}

func fixedDisplayWidth(digits []byte, k, fracDigits int, forcePoint bool) int {
	if len(digits) == 0 {
		if fracDigits > 0 {
			return 2 + fracDigits
		}
		if forcePoint {
			return 2
		}
		return 1
	}
	if k <= 0 {
		return 2 + (-k) + len(digits)
	}
	if k >= len(digits) {
		n := len(digits) + (k - len(digits))
		if forcePoint {
			n++
		}
		return n
	}
	return len(digits) + 1
}

func shortestBody(w *writer.Writer, dec floatdecode.Finite) (int, func() result.Result[result.Void]) {
	fp := dragon.Shortest(dec)
	exp10 := int(fp.Exp) - 1
	if exp10 < -4 || exp10 >= len(fp.Digits) {
		width := scientificDisplayWidth(fp.Digits, int(fp.Exp), false)
		return width, func() result.Result[result.Void] {
			return writeScientificFromDigits(w, fp.Digits, int(fp.Exp), false, false)
		}
	}
	width := fixedDisplayWidth(fp.Digits, int(fp.Exp), 0, false)
	return width, func() result.Result[result.Void] {
		return writeFixedFromDigits(w, fp.Digits, int(fp.Exp), 0, false)
	}
}

func fixedBody(w *writer.Writer, dec floatdecode.Finite, precision int16, forcePoint bool) (int, func() result.Result[result.Void]) {
	fp := dragon.ExactFixed(dec, precision)
	width := fixedDisplayWidth(fp.Digits, int(fp.Exp), int(precision), forcePoint)
	return width, func() result.Result[result.Void] {
		return writeFixedFromDigits(w, fp.Digits, int(fp.Exp), int(precision), forcePoint)
	}
}

// writeScientificFromDigits writes digits (value = 0.Digits * 10^exp) as
// d[.ddd]e±NN, with at least two exponent digits. A lone digit is followed
// by '.' only when forcePoint is set.
func writeScientificFromDigits(w *writer.Writer, digits []byte, exp int, forcePoint, upper bool) result.Result[result.Void] {
	if r := w.WriteChar(digits[0]); r.HasError() {
		return r
	}
	if len(digits) > 1 {
		if r := w.WriteChar('.'); r.HasError() {
			return r
		}
		if r := w.WriteStr(string(digits[1:])); r.HasError() {
			return r
		}
	} else if forcePoint {
		if r := w.WriteChar('.'); r.HasError() {
			return r
		}
	}
	e := byte('e')
	if upper {
		e = 'E'
	}
	if r := w.WriteChar(e); r.HasError() {
		return r
	}
	exponent := exp - 1
	sign := byte('+')
	if exponent < 0 {
		sign = '-'
		exponent = -exponent
	}
	if r := w.WriteChar(sign); r.HasError() {
		return r
	}
	if exponent < 10 {
		if r := w.WriteChar('0'); r.HasError() {
			return r
		}
	}
	return writer.WriteInt(w, exponent, writer.WriteIntOptions{Base: 10})
}

func scientificDisplayWidth(digits []byte, exp int, forcePoint bool) int {
	n := 1 // mantissa leading digit
	if len(digits) > 1 {
		n += 1 + (len(digits) - 1) // '.' + trailing significand digits
	} else if forcePoint {
		n++
	}
	n += 2 // 'e' + sign
	exponent := exp - 1
	if exponent < 0 {
		exponent = -exponent
	}
	digitCount := numberOfDigits(uint64(exponent), 10)
	if digitCount < 2 {
		digitCount = 2
	}
	return n + digitCount
}

func scientificBody(w *writer.Writer, dec floatdecode.Finite, precision int16, forcePoint, upper bool) (int, func() result.Result[result.Void]) {
	fp := dragon.ExactDigits(dec, precision+1)
	width := scientificDisplayWidth(fp.Digits, int(fp.Exp), forcePoint)
	return width, func() result.Result[result.Void] {
		return writeScientificFromDigits(w, fp.Digits, int(fp.Exp), forcePoint, upper)
	}
}

func generalBody(w *writer.Writer, dec floatdecode.Finite, precision int16, forcePoint, upper bool) (int, func() result.Result[result.Void]) {
	if precision <= 0 {
		precision = 1
	}
	fp := dragon.ExactDigits(dec, precision)
	digits := fp.Digits
	if !forcePoint {
		for len(digits) > 1 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
	}
	exp10 := int(fp.Exp) - 1
	if exp10 < -4 || exp10 >= int(precision) {
		width := scientificDisplayWidth(digits, int(fp.Exp), forcePoint)
		return width, func() result.Result[result.Void] {
			return writeScientificFromDigits(w, digits, int(fp.Exp), forcePoint, upper)
		}
	}
	width := fixedDisplayWidth(digits, int(fp.Exp), 0, forcePoint)
	return width, func() result.Result[result.Void] {
		return writeFixedFromDigits(w, digits, int(fp.Exp), 0, forcePoint)
	}
}
