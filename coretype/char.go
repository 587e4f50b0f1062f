package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// WriteChar writes value as a raw character by default, as an escaped,
// single-quoted representation for the '?' debug type, or re-dispatches to
// integer formatting for any other explicit type.
func WriteChar(w *writer.Writer, spec fmtspec.Spec, value byte) result.Result[result.Void] {
	if spec.Type != fmtspec.NoType && spec.Type != 'c' && spec.Type != '?' {
		return WriteInteger(w, spec, value)
	}
	if spec.Type != '?' {
		return writePadded(w, &spec, fmtspec.AlignLeft, 1, func() result.Result[result.Void] {
			return w.WriteChar(value)
		})
	}
	return writePadded(w, &spec, fmtspec.AlignLeft, 3, func() result.Result[result.Void] {
		return w.WriteCharEscaped(value)
	})
}
