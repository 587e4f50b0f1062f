package coretype

import (
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/writer"
)

func TestWriteIntegerDefaultDecimal(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteInteger(w, fmtspec.Default(), 42)
	assert.Equal(t, "42", b.Str())
}

func TestWriteIntegerNegativeRightAligned(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Width = 5
	WriteInteger(w, spec, -3)
	assert.Equal(t, "   -3", b.Str())
}

func TestWriteIntegerHexAlternateForm(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'x'
	spec.AlternateForm = true
	WriteInteger(w, spec, 255)
	assert.Equal(t, "0xff", b.Str())
}

func TestWriteIntegerZeroPadded(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Width = 6
	spec.ZeroFlag = true
	spec.Fill = '0' // Parse always pairs the zero flag with a '0' fill
	spec.Sign = '+'
	WriteInteger(w, spec, 42)
	assert.Equal(t, "+00042", b.Str())
}

func TestWriteIntegerOctalZeroHasNoPrefix(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'o'
	spec.AlternateForm = true
	WriteInteger(w, spec, 0)
	assert.Equal(t, "0", b.Str())
}

func TestWriteIntegerBinaryUpper(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'B'
	spec.AlternateForm = true
	WriteInteger(w, spec, 5)
	assert.Equal(t, "0B101", b.Str())
}

func TestWriteIntegerCType(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'c'
	WriteInteger(w, spec, 65)
	assert.Equal(t, "A", b.Str())
}

func TestWriteIntegerInvalidType(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'z'
	r := WriteInteger(w, spec, 1)
	assert.True(t, r.HasError())
}
