// Package coretype implements the per-kind write/scan rules shared by every
// argument kind the core formats or scans: integers, booleans, characters,
// strings, floating point, and pointers, plus the shared debug-escape
// representation used by the '?' type.
package coretype

import (
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

// writePaddingLeft emits the fill characters that precede the value for
// Right/Center alignment, and folds the consumed width back into spec.Width
// so writePaddingRight knows what (if anything) remains.
func writePaddingLeft(w *writer.Writer, spec *fmtspec.Spec, width int) result.Result[result.Void] {
	if spec.Width == 0 || spec.Width < width {
		spec.Width = 0
		return result.Ok(result.Success)
	}
	fillWidth := spec.Width - width
	if spec.Align == fmtspec.AlignLeft {
		spec.Width = fillWidth
		return result.Ok(result.Success)
	}
	if spec.Align == fmtspec.AlignCenter {
		fillWidth /= 2
	}
	spec.Width -= fillWidth + width
	return w.WriteCharN(spec.Fill, fillWidth)
}

// writePaddingRight emits trailing fill for Left/Center alignment.
func writePaddingRight(w *writer.Writer, spec *fmtspec.Spec) result.Result[result.Void] {
	if spec.Width == 0 || (spec.Align != fmtspec.AlignLeft && spec.Align != fmtspec.AlignCenter) {
		return result.Ok(result.Success)
	}
	return w.WriteCharN(spec.Fill, spec.Width)
}

// writePadded applies defaultAlign when the spec carries none, then wraps
// emit (the value's own characters, of the given display width) with
// left/right fill per the padding protocol.
func writePadded(w *writer.Writer, spec *fmtspec.Spec, defaultAlign fmtspec.Alignment, width int, emit func() result.Result[result.Void]) result.Result[result.Void] {
	if spec.Align == fmtspec.AlignNone {
		spec.Align = defaultAlign
	}
	if r := writePaddingLeft(w, spec, width); r.HasError() {
		return r
	}
	if r := emit(); r.HasError() {
		return r
	}
	return writePaddingRight(w, spec)
}
