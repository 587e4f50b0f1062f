// Package arg implements a type-erased view over a single format/scan
// argument. Rather than replicate a manually managed vtable over a fixed
// byte buffer, this erases the value the idiomatic Go way: a value captured
// as an `any` dispatches over its dynamic type with a type switch, the same
// pattern the engine this module descends from already used internally for
// its printf-style formatter.
package arg

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// Char marks a byte as a single 8-bit character argument rather than a
// small unsigned integer; Go gives byte and uint8 the same type, so a
// distinct wrapper is the only way the type switch below can tell an
// integer 65 from the character 'A'.
type Char byte

// Pointer marks a uintptr as an opaque address argument, formatted as
// `0x`-prefixed hex regardless of the format spec's requested type.
type Pointer uintptr

// Arg is a single formattable/scannable argument, erased to its dynamic
// type. The caller keeps the referenced value alive for the duration of any
// call made through Arg; Arg itself holds no lock or copy beyond the `any`
// header for value types and a pointer for scan targets.
type Arg struct {
	value   any
	scanPtr any
}

// Of captures value for formatting. Supported dynamic kinds: the built-in
// integer kinds, bool, Char, string, float32/float64, and Pointer.
func Of(value any) Arg {
	return Arg{value: value}
}

// OfScan captures a pointer target for scanning. ptr must be one of
// *int.../*uint.../*bool/*string/*float32/*float64/*arg.Char.
func OfScan(ptr any) Arg {
	return Arg{scanPtr: ptr}
}

// Validate checks a format spec substring against the kind of the captured
// value without consuming any output.
func (a Arg) Validate(specReader *reader.Reader) result.Result[result.Void] {
	spec := fmtspec.Parse(specReader)
	if spec.HasError() {
		return result.Err[result.Void](spec.Error())
	}
	return checkSpec(a.value, spec.Value())
}

// Format parses the spec substring and writes the captured value to w.
func (a Arg) Format(specReader *reader.Reader, w *writer.Writer) result.Result[result.Void] {
	spec := fmtspec.Parse(specReader)
	if spec.HasError() {
		return result.Err[result.Void](spec.Error())
	}
	if r := checkSpec(a.value, spec.Value()); r.HasError() {
		return r
	}
	return writeValue(w, spec.Value(), a.value)
}

// Scan parses the spec substring and scans into the captured target.
func (a Arg) Scan(specReader *reader.Reader, input *reader.Reader) result.Result[result.Void] {
	spec := fmtspec.Parse(specReader)
	if spec.HasError() {
		return result.Err[result.Void](spec.Error())
	}
	return scanValue(input, spec.Value(), a.scanPtr)
}

func checkSpec(value any, spec fmtspec.Spec) result.Result[result.Void] {
	switch value.(type) {
	case int, int8, int16, int32, int64:
		return fmtspec.CheckIntegral(spec)
	case uint, uint8, uint16, uint32, uint64:
		if r := fmtspec.CheckIntegral(spec); r.HasError() {
			return r
		}
		return fmtspec.CheckUnsigned(spec)
	case bool:
		return fmtspec.CheckBool(spec)
	case Char:
		return fmtspec.CheckChar(spec)
	case string:
		return fmtspec.CheckString(spec)
	case float32, float64:
		return fmtspec.CheckFloatingPoint(spec)
	case Pointer:
		return fmtspec.CheckPointer(spec)
	default:
		return result.Err[result.Void](result.InvalidFormat)
	}
}
