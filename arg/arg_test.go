package arg

import (
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/writer"
)

func formatSpec(t *testing.T, a Arg, spec string) string {
	t.Helper()
	b := buffer.NewStatic()
	w := writer.New(b)
	r := reader.New(spec)
	res := a.Format(r, w)
	assert.True(t, res.HasValue())
	return b.Str()
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "42", formatSpec(t, Of(42), "}"))
}

func TestFormatUnsignedWithWidth(t *testing.T) {
	assert.Equal(t, "  42", formatSpec(t, Of(uint(42)), "4}"))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", formatSpec(t, Of(true), "}"))
}

func TestFormatChar(t *testing.T) {
	assert.Equal(t, "A", formatSpec(t, Of(Char('A')), "}"))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "hi", formatSpec(t, Of("hi"), "}"))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5", formatSpec(t, Of(1.5), "}"))
}

func TestFormatPointer(t *testing.T) {
	assert.Equal(t, "0xff", formatSpec(t, Of(Pointer(0xff)), "}"))
}

func TestFormatRejectsMismatchedSpec(t *testing.T) {
	r := reader.New("#}")
	b := buffer.NewStatic()
	w := writer.New(b)
	res := Of("hi").Format(r, w)
	assert.True(t, res.HasError())
}

func TestScanInt(t *testing.T) {
	var v int
	r := reader.New("}")
	input := reader.New("123")
	res := OfScan(&v).Scan(r, input)
	assert.True(t, res.HasValue())
	assert.Equal(t, 123, v)
}

func TestScanBool(t *testing.T) {
	var v bool
	r := reader.New("}")
	input := reader.New("true")
	res := OfScan(&v).Scan(r, input)
	assert.True(t, res.HasValue())
	assert.True(t, v)
}

func TestScanString(t *testing.T) {
	var v string
	r := reader.New("}")
	input := reader.New("hello")
	res := OfScan(&v).Scan(r, input)
	assert.True(t, res.HasValue())
	assert.Equal(t, "hello", v)
}

func TestScanFloat(t *testing.T) {
	var v float64
	r := reader.New("}")
	input := reader.New("3.5")
	res := OfScan(&v).Scan(r, input)
	assert.True(t, res.HasValue())
	assert.Equal(t, 3.5, v)
}
