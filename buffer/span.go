package buffer

// SpanBuffer fulfills Buffer over a caller-provided, fixed-capacity byte
// slice. It never grows: once the span is full, further write-area requests
// fail with EOF.
type SpanBuffer struct {
	core
	span []byte
}

// NewSpan constructs a SpanBuffer writing into span.
func NewSpan(span []byte) *SpanBuffer {
	b := &SpanBuffer{span: span}
	b.request = noGrowth
	b.setWriteArea(span)
	return b
}

// View returns the portion of the span written so far.
func (b *SpanBuffer) View() []byte {
	return b.span[:b.usedCount()]
}

// Str returns a copy of the portion of the span written so far.
func (b *SpanBuffer) Str() string {
	return string(b.View())
}
