package buffer

import "github.com/tinywasm/fmtcore/result"

// MemoryBuffer fulfills Buffer with a growable in-memory backing store,
// mirroring the teacher's approach of keeping a scratch []byte around and
// growing it as writes demand more than is already allocated.
type MemoryBuffer struct {
	core
	data      []byte
	committed int
}

// NewMemory constructs a MemoryBuffer with at least the given initial
// capacity.
func NewMemory(capacity int) *MemoryBuffer {
	b := &MemoryBuffer{}
	b.request = b.requestWriteArea
	if capacity < 32 {
		capacity = 32
	}
	b.data = make([]byte, capacity)
	b.setWriteArea(b.data)
	return b
}

func (b *MemoryBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	b.committed += used
	newSize := b.committed + size
	if newSize > len(b.data) {
		grown := make([]byte, newSize)
		copy(grown, b.data[:b.committed])
		b.data = grown
	}
	area := b.data[b.committed:newSize]
	b.setWriteArea(area)
	return result.Ok(area)
}

// View returns the portion of the buffer written so far.
func (b *MemoryBuffer) View() []byte {
	return b.data[:b.committed+b.usedCount()]
}

// Str returns a copy of the portion of the buffer written so far.
func (b *MemoryBuffer) Str() string {
	return string(b.View())
}
