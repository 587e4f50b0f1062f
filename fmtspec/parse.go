package fmtspec

import (
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Parse reads a format-spec from r, which must be positioned just after the
// ':' that introduced it (or at the closing '}' if the field carried no
// spec at all). Dynamic specs (a nested '{' inside the spec) are rejected;
// this module has no support for runtime-supplied width/precision.
func Parse(r *reader.Reader) result.Result[Spec] {
	spec := Default()

	cRes := r.ReadChar()
	if cRes.HasError() {
		return result.Err[Spec](cRes.Error())
	}
	c := cRes.Value()
	if c == '}' {
		return result.Ok(spec)
	}
	if c == '{' {
		return result.Err[Spec](result.InvalidFormat)
	}

	widthRequired := false

	peekRes := r.Peek()
	if peekRes.HasError() {
		return result.Err[Spec](peekRes.Error())
	}
	c2 := peekRes.Value()
	if c2 == '<' || c2 == '^' || c2 == '>' {
		spec.Align = alignOf(c2)
		widthRequired = true
		spec.Fill = c
		r.Pop(1)
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	} else if c == '<' || c == '^' || c == '>' {
		spec.Align = alignOf(c)
		widthRequired = true
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if c == '+' || c == '-' || c == ' ' {
		spec.Sign = c
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if c == '#' {
		spec.AlternateForm = true
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if c == '0' {
		if widthRequired {
			return result.Err[Spec](result.InvalidFormat)
		}
		spec.Fill = '0'
		spec.Align = AlignRight
		spec.ZeroFlag = true
		widthRequired = true
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if isDigit(c) {
		r.Unpop(1)
		wRes := reader.ParseInt[int](r, 10)
		if wRes.HasError() {
			return result.Err[Spec](wRes.Error())
		}
		spec.Width = wRes.Value()
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	} else if widthRequired {
		return result.Err[Spec](result.InvalidFormat)
	}

	if c == '.' {
		pRes := reader.ParseInt[int](r, 10)
		if pRes.HasError() {
			return result.Err[Spec](pRes.Error())
		}
		spec.Precision = pRes.Value()
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if isAlpha(c) || c == '?' {
		spec.Type = c
		cRes = r.ReadChar()
		if cRes.HasError() {
			return result.Err[Spec](cRes.Error())
		}
		c = cRes.Value()
	}

	if c == '}' {
		return result.Ok(spec)
	}
	return result.Err[Spec](result.InvalidFormat)
}

func alignOf(c byte) Alignment {
	switch c {
	case '<':
		return AlignLeft
	case '^':
		return AlignCenter
	default:
		return AlignRight
	}
}
