package writer

import (
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
)

func TestWriteChar(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteChar('x')
	assert.Equal(t, "x", b.Str())
}

func TestWriteCharN(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteCharN('z', 5)
	assert.Equal(t, "zzzzz", b.Str())
}

func TestWriteStr(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteStr("hello")
	assert.Equal(t, "hello", b.Str())
}

func TestWriteStrEOFWhenFull(t *testing.T) {
	b := buffer.NewSpan(make([]byte, 2))
	w := New(b)
	r := w.WriteStr("abc")
	assert.True(t, r.HasError())
}

func TestWriteCharEscaped(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteCharEscaped('\n')
	assert.Equal(t, `'\n'`, b.Str())
}

func TestWriteStrEscapedPlain(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteStrEscaped("hi")
	assert.Equal(t, `"hi"`, b.Str())
}

func TestWriteStrEscapedWithQuoteAndControl(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	w.WriteStrEscaped("a\"b\x01")
	assert.Equal(t, `"a\"b\x01"`, b.Str())
}

func TestWriteIntBase10(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	WriteInt(w, 123)
	assert.Equal(t, "123", b.Str())
}

func TestWriteIntNegative(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	WriteInt(w, -42)
	assert.Equal(t, "-42", b.Str())
}

func TestWriteIntZero(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	WriteInt(w, 0)
	assert.Equal(t, "0", b.Str())
}

func TestWriteIntHexUpper(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	WriteInt(w, 255, WriteIntOptions{Base: 16, UpperCase: true})
	assert.Equal(t, "FF", b.Str())
}

func TestWriteIntUnsigned(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	WriteInt[uint32](w, 4000000000)
	assert.Equal(t, "4000000000", b.Str())
}

func TestWriteIntInvalidBase(t *testing.T) {
	b := buffer.NewStatic()
	w := New(b)
	r := WriteInt(w, 1, WriteIntOptions{Base: 1})
	assert.True(t, r.HasError())
}
