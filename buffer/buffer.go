// Package buffer provides the polymorphic "write area" contract every
// formatting sink in this module targets, plus nine concrete variants
// covering fixed spans, growable memory, files, iterator-style sinks,
// counting, and truncating composition.
//
// Rather than C++ virtual dispatch, each variant supplies its own
// request-write-area behavior as a plain closure captured by the shared
// core helper — an enum-of-behaviors instead of a vtable, which keeps every
// variant a concrete, non-pointer-receiver-polymorphic type satisfying one
// small interface.
package buffer

import "github.com/tinywasm/fmtcore/result"

// Buffer is the contract every sink satisfies: a source of contiguous
// "write areas" a Writer can fill.
type Buffer interface {
	// GetWriteAreaOf returns a write area of exactly size bytes, or EOF if
	// that much room is not available.
	GetWriteAreaOf(size int) result.Result[[]byte]
	// GetWriteAreaOfMax returns a write area of at most size bytes — fewer
	// if the sink has a limited internal cache — or EOF if the sink cannot
	// supply one. Fixed-capacity sinks (span, static) fail with EOF whenever
	// fewer than size bytes remain. Callers that can write in chunks (Writer's
	// WriteStr/WriteCharN) should prefer this to support chunked sinks.
	GetWriteAreaOfMax(size int) result.Result[[]byte]
}

// core implements the get-write-area bookkeeping shared by every variant.
// A variant embeds core and sets request to its own backing-store logic.
type core struct {
	area    []byte
	used    int
	request func(used, size int) result.Result[[]byte]
}

func (c *core) setWriteArea(area []byte) {
	c.area = area
	c.used = 0
}

func (c *core) usedCount() int {
	return c.used
}

// GetWriteAreaOfMax implements Buffer.GetWriteAreaOfMax.
func (c *core) GetWriteAreaOfMax(size int) result.Result[[]byte] {
	remaining := len(c.area) - c.used
	if remaining >= size {
		area := c.area[c.used : c.used+size]
		c.used += size
		return result.Ok(area)
	}
	r := c.request(c.used, size)
	if r.HasError() {
		return r
	}
	area := r.Value()
	c.used += len(area)
	return result.Ok(area)
}

// GetWriteAreaOf implements Buffer.GetWriteAreaOf.
func (c *core) GetWriteAreaOf(size int) result.Result[[]byte] {
	r := c.GetWriteAreaOfMax(size)
	if r.HasError() {
		return r
	}
	area := r.Value()
	if len(area) < size {
		c.used -= len(area)
		return result.Err[[]byte](result.EOF)
	}
	return result.Ok(area)
}

// noGrowth is the default request callback for fixed-capacity variants: once
// the backing area is exhausted, there is nowhere else to get more.
func noGrowth(used, size int) result.Result[[]byte] {
	return result.Err[[]byte](result.EOF)
}
