package buffer

import "github.com/tinywasm/fmtcore/result"

// BackInsertBuffer fulfills Buffer by growing a caller-owned slice in
// place, the Go analogue of formatting through a back_insert_iterator over
// a contiguous container: the caller keeps the *[]byte and sees it grow as
// the format completes.
type BackInsertBuffer struct {
	core
	target    *[]byte
	committed int
}

// NewBackInsert constructs a BackInsertBuffer appending to *target.
func NewBackInsert(target *[]byte) *BackInsertBuffer {
	b := &BackInsertBuffer{target: target, committed: len(*target)}
	b.request = b.requestWriteArea
	capLeft := cap(*target) - len(*target)
	if capLeft > 0 {
		b.setWriteArea((*target)[len(*target) : len(*target)+capLeft])
	} else {
		b.setWriteArea(nil)
	}
	return b
}

func (b *BackInsertBuffer) requestWriteArea(used, size int) result.Result[[]byte] {
	b.committed += used
	newLen := b.committed + size
	if newLen > cap(*b.target) {
		grown := make([]byte, newLen, newLen*2)
		copy(grown, (*b.target)[:b.committed])
		*b.target = grown[:b.committed]
	}
	area := (*b.target)[b.committed:newLen]
	if newLen > len(*b.target) {
		*b.target = (*b.target)[:newLen]
	}
	b.setWriteArea(area)
	return result.Ok(area)
}

// Out flushes pending writes into *target and returns it.
func (b *BackInsertBuffer) Out() []byte {
	total := b.committed + b.usedCount()
	*b.target = (*b.target)[:total]
	return *b.target
}
