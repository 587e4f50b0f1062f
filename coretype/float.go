package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/floatdecode"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

const defaultFloatPrecision = 6

// WriteFloat writes value per spec.Type: unset selects the shortest
// round-trippable representation (switching between fixed and scientific
// notation based on its decimal exponent), 'f'/'F' force fixed-point,
// 'e'/'E' force scientific notation, and 'g'/'G' choose between the two
// based on the exponent vs the requested precision.
func WriteFloat(w *writer.Writer, spec fmtspec.Spec, value float64) result.Result[result.Void] {
	dec := floatdecode.Decode(value)
	upper := spec.Type == 'F' || spec.Type == 'E' || spec.Type == 'G'

	if dec.Category == floatdecode.Infinity || dec.Category == floatdecode.NaN {
		marker := "inf"
		if dec.Category == floatdecode.NaN {
			marker = "nan"
		}
		if upper {
			marker = toUpper(marker)
		}
		width := len(marker)
		if dec.Negative || spec.Sign == '+' || spec.Sign == ' ' {
			width++
		}
		return writePadded(w, &spec, fmtspec.AlignRight, width, func() result.Result[result.Void] {
			if r := writeNumericSign(w, spec, dec.Negative); r.HasError() {
				return r
			}
			return w.WriteStr(marker)
		})
	}

	if dec.Category == floatdecode.Zero {
		return writeZero(w, spec, dec.Negative, upper)
	}

	var width int
	var emit func() result.Result[result.Void]
	switch spec.Type {
	case fmtspec.NoType:
		width, emit = shortestBody(w, dec.Finite)
	case 'f', 'F':
		width, emit = fixedBody(w, dec.Finite, precisionOr(spec, defaultFloatPrecision), spec.AlternateForm)
	case 'e', 'E':
		width, emit = scientificBody(w, dec.Finite, precisionOr(spec, defaultFloatPrecision), spec.AlternateForm, upper)
	case 'g', 'G':
		width, emit = generalBody(w, dec.Finite, precisionOr(spec, defaultFloatPrecision), spec.AlternateForm, upper)
	default:
		return result.Err[result.Void](result.InvalidFormat)
	}

	if dec.Negative || spec.Sign == '+' || spec.Sign == ' ' {
		width++
	}
	return writePadded(w, &spec, fmtspec.AlignRight, width, func() result.Result[result.Void] {
		if r := writeNumericSign(w, spec, dec.Negative); r.HasError() {
			return r
		}
		return emit()
	})
}

func precisionOr(spec fmtspec.Spec, fallback int) int16 {
	if spec.Precision == fmtspec.NoPrecision {
		return int16(fallback)
	}
	return int16(spec.Precision)
}

func writeNumericSign(w *writer.Writer, spec fmtspec.Spec, negative bool) result.Result[result.Void] {
	if negative {
		return w.WriteChar('-')
	}
	if spec.Sign == '+' || spec.Sign == ' ' {
		return w.WriteChar(spec.Sign)
	}
	return result.Ok(result.Success)
}

func writeZero(w *writer.Writer, spec fmtspec.Spec, negative, upper bool) result.Result[result.Void] {
	text := "0"
	if spec.Type == 'e' || spec.Type == 'E' {
		exp := "e+00"
		if upper {
			exp = "E+00"
		}
		text = "0" + exp
	}
	width := len(text)
	if negative || spec.Sign == '+' || spec.Sign == ' ' {
		width++
	}
	return writePadded(w, &spec, fmtspec.AlignRight, width, func() result.Result[result.Void] {
		if r := writeNumericSign(w, spec, negative); r.HasError() {
			return r
		}
		return w.WriteStr(text)
	})
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
