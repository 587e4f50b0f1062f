// Package writer provides a thin convenience layer over a buffer.Buffer for
// writing characters, strings, escaped text, and integers in chunks, so
// callers never have to hand-roll the get-write-area-then-copy loop.
package writer

import (
	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/result"
)

// Writer writes chunked, possibly-multi-call content into a buffer.Buffer.
type Writer struct {
	buf buffer.Buffer
}

// New constructs a Writer over buf.
func New(buf buffer.Buffer) *Writer {
	return &Writer{buf: buf}
}

// Buffer returns the underlying buffer.
func (w *Writer) Buffer() buffer.Buffer {
	return w.buf
}

// WriteChar writes a single byte.
func (w *Writer) WriteChar(c byte) result.Result[result.Void] {
	area := w.buf.GetWriteAreaOf(1)
	if area.HasError() {
		return result.Err[result.Void](area.Error())
	}
	area.Value()[0] = c
	return result.Ok(result.Success)
}

// WriteCharN writes c repeated n times, in chunks so buffers with a limited
// internal cache (the iterator/file variants) are supported.
func (w *Writer) WriteCharN(c byte, n int) result.Result[result.Void] {
	remaining := n
	for remaining != 0 {
		area := w.buf.GetWriteAreaOfMax(remaining)
		if area.HasError() {
			return result.Err[result.Void](area.Error())
		}
		a := area.Value()
		for i := range a {
			a[i] = c
		}
		remaining -= len(a)
	}
	return result.Ok(result.Success)
}

// WriteStr writes sv in chunks.
func (w *Writer) WriteStr(sv string) result.Result[result.Void] {
	remaining := sv
	for len(remaining) != 0 {
		area := w.buf.GetWriteAreaOfMax(len(remaining))
		if area.HasError() {
			return result.Err[result.Void](area.Error())
		}
		a := area.Value()
		copy(a, remaining[:len(a)])
		remaining = remaining[len(a):]
	}
	return result.Ok(result.Success)
}
