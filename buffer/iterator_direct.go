package buffer

import "unsafe"

// IteratorDirectBuffer fulfills Buffer by writing straight through a raw
// pointer, trusting the caller to have reserved enough memory beyond it —
// the Go analogue of formatting into a raw output pointer (no bounds
// checking, no internal cache, the fastest of the nine variants). This is
// the one variant where avoiding a bounds-checked []byte literally requires
// unsafe, the same tradeoff the teacher's zero-copy string/byte conversions
// make in internal/tfmt/memory.go.
type IteratorDirectBuffer struct {
	core
	ptr *byte
}

// direct buffers never hit the EOF path: they present an address space
// large enough that no realistic single format call can exhaust it.
const directWindow = 1 << 30

// NewIteratorDirect constructs an IteratorDirectBuffer writing starting at
// ptr. The caller must guarantee at least directWindow bytes are valid
// starting at ptr, or must not request more than it actually reserved.
func NewIteratorDirect(ptr *byte) *IteratorDirectBuffer {
	b := &IteratorDirectBuffer{ptr: ptr}
	b.request = noGrowth
	b.setWriteArea(unsafe.Slice(ptr, directWindow))
	return b
}

// Out returns the number of bytes written so far, i.e. the offset one past
// the last byte written through ptr.
func (b *IteratorDirectBuffer) Out() int {
	return b.usedCount()
}
