package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// WriteString writes value as-is by default (truncated to spec.Precision
// characters if given), or as a double-quoted debug-escaped representation
// for the '?' type.
func WriteString(w *writer.Writer, spec fmtspec.Spec, value string) result.Result[result.Void] {
	if spec.Precision != fmtspec.NoPrecision && spec.Precision < len(value) {
		value = value[:spec.Precision]
	}
	if spec.Type != '?' {
		return writePadded(w, &spec, fmtspec.AlignLeft, len(value), func() result.Result[result.Void] {
			return w.WriteStr(value)
		})
	}
	return writePadded(w, &spec, fmtspec.AlignLeft, len(value)+2, func() result.Result[result.Void] {
		return w.WriteStrEscaped(value)
	})
}

// WritePointer writes value (already an address rendered as uintptr) as
// "0x" followed by lowercase hex, with no sign, prefix, or precision.
func WritePointer(w *writer.Writer, spec fmtspec.Spec, value uintptr) result.Result[result.Void] {
	spec.AlternateForm = true
	spec.Type = 'x'
	return WriteInteger(w, spec, uint64(value))
}
