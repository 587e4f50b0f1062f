package buffer

import "github.com/tinywasm/fmtcore/result"

// truncatingCacheSize is the scratch area used to stage writes before
// copying the permitted prefix of them into the inner sink.
const truncatingCacheSize = 256

// TruncatingBuffer wraps an inner Buffer and forwards only the first limit
// bytes written to it, while still reporting (via Count) the full logical
// length that was requested — the same composition a caller would reach
// for to implement "format into this fixed-size field, but tell me if the
// value actually overflowed it".
type TruncatingBuffer struct {
	core
	inner     Buffer
	limit     int
	committed int
	cache     [truncatingCacheSize]byte
}

// NewTruncating constructs a TruncatingBuffer forwarding at most limit bytes
// to inner.
func NewTruncating(inner Buffer, limit int) *TruncatingBuffer {
	b := &TruncatingBuffer{inner: inner, limit: limit}
	b.request = b.requestWriteArea
	b.setWriteArea(b.cache[:])
	return b
}

// Flush copies any pending, not-yet-forwarded portion of the cache (within
// limit) to inner and reports inner's error, if any.
func (b *TruncatingBuffer) Flush() result.Result[result.Void] {
	if err := b.flushChunk(b.usedCount()); err != nil {
		return result.Err[result.Void](*err)
	}
	b.setWriteArea(b.cache[:])
	return result.Ok(result.Success)
}

func (b *TruncatingBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	if err := b.flushChunk(used); err != nil {
		return result.Err[[]byte](*err)
	}
	area := b.cache[:]
	b.setWriteArea(area)
	if size > len(area) {
		return result.Ok(area)
	}
	return result.Ok(area[:size])
}

func (b *TruncatingBuffer) flushChunk(used int) *result.ErrorKind {
	if used == 0 {
		return nil
	}
	chunk := b.cache[:used]
	if b.committed < b.limit {
		room := b.limit - b.committed
		forward := chunk
		if len(forward) > room {
			forward = forward[:room]
		}
		n := len(forward)
		for n > 0 {
			r := b.inner.GetWriteAreaOfMax(n)
			if r.HasError() {
				err := r.Error()
				return &err
			}
			area := r.Value()
			copy(area, forward[:len(area)])
			forward = forward[len(area):]
			n -= len(area)
		}
	}
	b.committed += used
	return nil
}

// Count returns the total number of bytes logically requested, including
// the part that was truncated away.
func (b *TruncatingBuffer) Count() int {
	return b.committed + b.usedCount()
}

// Truncated reports whether more was written than the limit allowed.
func (b *TruncatingBuffer) Truncated() bool {
	return b.Count() > b.limit
}
