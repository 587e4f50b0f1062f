package fmtspec

import "github.com/tinywasm/fmtcore/result"

// CheckIntegral validates a Spec against the types a plain integer accepts.
func CheckIntegral(spec Spec) result.Result[result.Void] {
	if spec.Precision != NoPrecision {
		return result.Err[result.Void](result.InvalidFormat)
	}
	switch spec.Type {
	case NoType, 'b', 'B', 'c', 'd', 'o', 'x', 'X':
		return result.Ok(result.Success)
	}
	return result.Err[result.Void](result.InvalidFormat)
}

// CheckUnsigned additionally forbids a sign on unsigned integers.
func CheckUnsigned(spec Spec) result.Result[result.Void] {
	if spec.Sign != NoSign {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}

// CheckBool validates a Spec against bool, which also accepts 's' (the
// default, rendering "true"/"false") in addition to the integral types.
func CheckBool(spec Spec) result.Result[result.Void] {
	if spec.Type != NoType && spec.Type != 's' {
		return CheckIntegral(spec)
	}
	if spec.Precision != NoPrecision {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}

// CheckChar validates a Spec against a single character, which accepts 'c'
// (the default) or '?' (escaped) in addition to the integral types.
func CheckChar(spec Spec) result.Result[result.Void] {
	if spec.Type != NoType && spec.Type != 'c' && spec.Type != '?' {
		return CheckIntegral(spec)
	}
	if spec.AlternateForm || spec.Sign != NoSign || spec.ZeroFlag || spec.Precision != NoPrecision {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}

// CheckPointer validates a Spec against a pointer value, which accepts only
// 'p' (or no type at all).
func CheckPointer(spec Spec) result.Result[result.Void] {
	if spec.Type != NoType && spec.Type != 'p' {
		return result.Err[result.Void](result.InvalidFormat)
	}
	if spec.AlternateForm || spec.Sign != NoSign || spec.ZeroFlag || spec.Precision != NoPrecision {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}

// CheckFloatingPoint validates a Spec against a floating-point value.
func CheckFloatingPoint(spec Spec) result.Result[result.Void] {
	switch spec.Type {
	case NoType, 'f', 'F', 'e', 'E', 'g', 'G':
		return result.Ok(result.Success)
	}
	return result.Err[result.Void](result.InvalidFormat)
}

// CheckString validates a Spec against a string/string-like value.
func CheckString(spec Spec) result.Result[result.Void] {
	if spec.AlternateForm || spec.Sign != NoSign || spec.ZeroFlag {
		return result.Err[result.Void](result.InvalidFormat)
	}
	if spec.Type != NoType && spec.Type != 's' && spec.Type != '?' {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}
