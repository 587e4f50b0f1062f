package buffer

import (
	"io"

	"github.com/tinywasm/fmtcore/result"
)

// fileCacheSize is the size of the internal cache FileBuffer flushes to the
// underlying writer in chunks, instead of issuing one tiny Write call per
// formatted field.
const fileCacheSize = 256

// FileBuffer fulfills Buffer by caching writes and periodically flushing
// them to an io.Writer (a file, a socket, os.Stdout, ...).
type FileBuffer struct {
	core
	w     io.Writer
	cache [fileCacheSize]byte
	err   result.ErrorKind
}

// NewFile constructs a FileBuffer flushing to w.
func NewFile(w io.Writer) *FileBuffer {
	b := &FileBuffer{w: w}
	b.request = b.requestWriteArea
	b.setWriteArea(b.cache[:])
	return b
}

// Flush writes any cached, unwritten bytes to the underlying writer.
func (b *FileBuffer) Flush() result.Result[result.Void] {
	n := b.usedCount()
	if n > 0 {
		if _, err := b.w.Write(b.cache[:n]); err != nil {
			b.err = result.EOF
			return result.Err[result.Void](result.EOF)
		}
	}
	b.setWriteArea(b.cache[:])
	return result.Ok(result.Success)
}

func (b *FileBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	if f := b.Flush(); f.HasError() {
		return result.Err[[]byte](f.Error())
	}
	area := b.cache[:]
	b.setWriteArea(area)
	if size > len(area) {
		return result.Ok(area)
	}
	return result.Ok(area[:size])
}
