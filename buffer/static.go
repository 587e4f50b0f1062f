package buffer

// staticCapacity is the size of the inline array a StaticBuffer holds
// before it refuses to grow further. This mirrors a small-buffer
// optimization: a StaticBuffer never allocates on the heap.
const staticCapacity = 256

// StaticBuffer fulfills Buffer using a fixed-size array embedded directly in
// the struct, so constructing one never allocates. Unlike MemoryBuffer it
// cannot grow past its inline capacity; exceeding it fails with EOF, which
// makes it the right choice for tight embedded/allocation-free call sites.
type StaticBuffer struct {
	core
	storage [staticCapacity]byte
}

// NewStatic constructs an empty StaticBuffer.
func NewStatic() *StaticBuffer {
	b := &StaticBuffer{}
	b.request = noGrowth
	b.setWriteArea(b.storage[:])
	return b
}

// View returns the portion of the inline storage written so far.
func (b *StaticBuffer) View() []byte {
	return b.storage[:b.usedCount()]
}

// Str returns a copy of the portion of the inline storage written so far.
func (b *StaticBuffer) Str() string {
	return string(b.View())
}
