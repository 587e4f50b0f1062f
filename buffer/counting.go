package buffer

import "github.com/tinywasm/fmtcore/result"

// countingCacheSize is the scratch area CountingBuffer recycles for every
// write area it hands out, since it never actually needs to retain content.
const countingCacheSize = 256

// CountingBuffer fulfills Buffer by discarding all written content and only
// counting how many bytes of write area it handed out (at most
// countingCacheSize per GetWriteAreaOfMax call) — used to measure the rendered
// width of a value before allocating the real destination.
type CountingBuffer struct {
	core
	committed int
	cache     [countingCacheSize]byte
}

// NewCounting constructs a CountingBuffer.
func NewCounting() *CountingBuffer {
	b := &CountingBuffer{}
	b.request = b.requestWriteArea
	b.setWriteArea(b.cache[:])
	return b
}

func (b *CountingBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	b.committed += used
	area := b.cache[:]
	b.setWriteArea(area)
	if size > len(area) {
		return result.Ok(area)
	}
	return result.Ok(area[:size])
}

// Count returns the total number of bytes of write area handed out so far.
func (b *CountingBuffer) Count() int {
	return b.committed + b.usedCount()
}
