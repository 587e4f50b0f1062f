package reader

import "github.com/tinywasm/fmtcore/result"

func isValidNumberBase(base int) bool {
	return base >= 2 && base <= 36
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

func parseSign(r *Reader) result.Result[bool] {
	c := r.Peek()
	if c.HasError() {
		return result.Err[bool](result.EOF)
	}
	switch c.Value() {
	case '-':
		r.Pop(1)
		return result.Ok(true)
	case '+':
		r.Pop(1)
		return result.Ok(false)
	default:
		return result.Ok(false)
	}
}

// parseUnsignedDigits accumulates digits of the given base starting at r's
// current position into an unsigned 64 bit value, overflow-checked, and
// reports how many digits were consumed.
func parseUnsignedDigits(r *Reader, base int) result.Result[struct {
	Value uint64
	Count int
}] {
	type acc = struct {
		Value uint64
		Count int
	}
	rest := r.ViewRemaining()
	var value uint64
	count := 0
	for count < len(rest) {
		d, ok := digitValue(rest[count], base)
		if !ok {
			break
		}
		if value > (^uint64(0)-uint64(d))/uint64(base) {
			return result.Err[acc](result.OutOfRange)
		}
		value = value*uint64(base) + uint64(d)
		count++
	}
	if count == 0 {
		return result.Err[acc](result.InvalidData)
	}
	return result.Ok(acc{Value: value, Count: count})
}

// ParseInt parses a (possibly signed) integer of type T at the reader's
// current position using the given base, advancing the cursor only on
// success. On failure the cursor position is restored.
func ParseInt[T Integer](r *Reader, base int) result.Result[T] {
	if !isValidNumberBase(base) {
		return result.Err[T](result.InvalidArgument)
	}

	startPos := r.Pos()
	negative := parseSign(r)
	if negative.HasError() {
		r.Unpop(r.Pos() - startPos)
		return result.Err[T](negative.Error())
	}

	digits := parseUnsignedDigits(r, base)
	if digits.HasError() {
		r.Unpop(r.Pos() - startPos)
		return result.Err[T](digits.Error())
	}
	r.Pop(digits.Value().Count)

	var zero T
	isSigned := (zero - 1) < zero // true for signed types, false for unsigned

	value := digits.Value().Value
	if negative.Value() && !isSigned {
		r.Unpop(r.Pos() - startPos)
		return result.Err[T](result.OutOfRange)
	}

	if negative.Value() {
		if value > 1<<63 {
			r.Unpop(r.Pos() - startPos)
			return result.Err[T](result.OutOfRange)
		}
		signedValue := -int64(value)
		converted := T(signedValue)
		if int64(converted) != signedValue {
			r.Unpop(r.Pos() - startPos)
			return result.Err[T](result.OutOfRange)
		}
		return result.Ok(converted)
	}

	converted := T(value)
	if isSigned {
		if int64(converted) < 0 || uint64(int64(converted)) != value {
			r.Unpop(r.Pos() - startPos)
			return result.Err[T](result.OutOfRange)
		}
	} else {
		if uint64(converted) != value {
			r.Unpop(r.Pos() - startPos)
			return result.Err[T](result.OutOfRange)
		}
	}
	return result.Ok(converted)
}

// ParseIntConsumed behaves like ParseInt but additionally returns the exact
// substring of digits (sign included) that was consumed on success.
func ParseIntConsumed[T Integer](r *Reader, base int) result.Result[struct {
	Value    T
	Consumed string
}] {
	type out = struct {
		Value    T
		Consumed string
	}
	start := r.Pos()
	v := ParseInt[T](r, base)
	if v.HasError() {
		return result.Err[out](v.Error())
	}
	return result.Ok(out{Value: v.Value(), Consumed: r.input[start:r.Pos()]})
}
