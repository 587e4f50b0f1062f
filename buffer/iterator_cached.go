package buffer

import "github.com/tinywasm/fmtcore/result"

// iteratorCacheSize mirrors the internal cache size used to batch calls to
// an emit callback, the same way FileBuffer batches writes to an io.Writer.
const iteratorCacheSize = 256

// IteratorCachedBuffer fulfills Buffer by caching writes and periodically
// flushing them through an emit callback — the Go analogue of formatting
// into a generic output iterator that only supports appending one chunk at
// a time (e.g. a channel, a custom sink, a non-contiguous container).
type IteratorCachedBuffer struct {
	core
	emit  func([]byte)
	cache [iteratorCacheSize]byte
}

// NewIteratorCached constructs an IteratorCachedBuffer that flushes through
// emit.
func NewIteratorCached(emit func([]byte)) *IteratorCachedBuffer {
	b := &IteratorCachedBuffer{emit: emit}
	b.request = b.requestWriteArea
	b.setWriteArea(b.cache[:])
	return b
}

// Flush emits any cached, unwritten bytes.
func (b *IteratorCachedBuffer) Flush() {
	if n := b.usedCount(); n > 0 {
		b.emit(b.cache[:n])
	}
	b.setWriteArea(b.cache[:])
}

func (b *IteratorCachedBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	b.Flush()
	area := b.cache[:]
	if size > len(area) {
		return result.Ok(area)
	}
	return result.Ok(area[:size])
}
