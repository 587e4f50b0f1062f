// Package fmtcore provides thin, allocation-free-by-default entry points
// over the driver/arg/buffer stack: FormatTo, Format, FormattedSize, Fprint,
// Validate, Sscan and Println. None of these carry their own logic beyond adapting a
// convenient caller shape (a format string plus bare values) to the
// arg.Arg-erased driver calls the rest of the module implements; this file
// is deliberately the only "out of core" part of the module.
package fmtcore

import (
	"github.com/tinywasm/fmtcore/arg"
	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/driver"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// wrapArgs converts a slice of bare Go values into type-erased arguments,
// the one caller-facing seam between the two representations. Values that
// are already an arg.Arg (e.g. arg.Char/arg.Pointer markers) pass through
// unwrapped.
func wrapArgs(values []any) []arg.Arg {
	args := make([]arg.Arg, len(values))
	for i, v := range values {
		if a, ok := v.(arg.Arg); ok {
			args[i] = a
			continue
		}
		args[i] = arg.Of(v)
	}
	return args
}

// FormatTo renders format against values into buf.
func FormatTo(buf buffer.Buffer, format string, values ...any) result.Result[result.Void] {
	w := writer.New(buf)
	return driver.Format(w, format, wrapArgs(values))
}

// Format renders format against values into a growable in-memory buffer and
// returns the resulting string.
func Format(format string, values ...any) result.Result[string] {
	buf := buffer.NewMemory(64)
	if r := FormatTo(buf, format, values...); r.HasError() {
		return result.Err[string](r.Error())
	}
	return result.Ok(buf.Str())
}

// FormattedSize reports the length Format would have produced, without
// retaining the rendered characters.
func FormattedSize(format string, values ...any) result.Result[int] {
	buf := buffer.NewCounting()
	if r := FormatTo(buf, format, values...); r.HasError() {
		return result.Err[int](r.Error())
	}
	return result.Ok(buf.Count())
}

// Fprint renders format against values into a fixed-size span, failing with
// EOF if span is too small.
func Fprint(span []byte, format string, values ...any) result.Result[result.Void] {
	return FormatTo(buffer.NewSpan(span), format, values...)
}

// Validate checks format against values without rendering anything.
func Validate(format string, values ...any) result.Result[result.Void] {
	return driver.Validate(format, wrapArgs(values))
}

// Sscan scans format out of input into values (each of which must be a
// pointer of a kind arg.OfScan accepts).
func Sscan(input, format string, values ...any) result.Result[result.Void] {
	return driver.Scan(reader.New(input), format, wrapScanArgs(values))
}

func wrapScanArgs(values []any) []arg.Arg {
	args := make([]arg.Arg, len(values))
	for i, v := range values {
		if a, ok := v.(arg.Arg); ok {
			args[i] = a
			continue
		}
		args[i] = arg.OfScan(v)
	}
	return args
}

// Println renders format against values into a growable in-memory buffer,
// appends a trailing newline, and returns the result.
func Println(format string, values ...any) result.Result[string] {
	buf := buffer.NewMemory(64)
	if r := FormatTo(buf, format, values...); r.HasError() {
		return result.Err[string](r.Error())
	}
	w := writer.New(buf)
	if r := w.WriteChar('\n'); r.HasError() {
		return result.Err[string](r.Error())
	}
	return result.Ok(buf.Str())
}
