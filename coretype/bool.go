package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// WriteBool writes value as "true"/"false" by default, or as 0/1 (subject to
// the integer formatting rules) when an explicit non-'s' type is given.
func WriteBool(w *writer.Writer, spec fmtspec.Spec, value bool) result.Result[result.Void] {
	if spec.Type != fmtspec.NoType && spec.Type != 's' {
		var asInt uint8
		if value {
			asInt = 1
		}
		return WriteInteger(w, spec, asInt)
	}
	if value {
		return writePadded(w, &spec, fmtspec.AlignLeft, 4, func() result.Result[result.Void] {
			return w.WriteStr("true")
		})
	}
	return writePadded(w, &spec, fmtspec.AlignLeft, 5, func() result.Result[result.Void] {
		return w.WriteStr("false")
	})
}
