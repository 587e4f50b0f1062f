package coretype

import (
	"math"
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/writer"
)

func TestWriteFloatShortestDefault(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteFloat(w, fmtspec.Default(), 1.5)
	assert.Equal(t, "1.5", b.Str())
}

func TestWriteFloatFixedPrecision(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'f'
	spec.Precision = 2
	WriteFloat(w, spec, 3.14159)
	assert.Equal(t, "3.14", b.Str())
}

func TestWriteFloatScientificPrecision(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'e'
	spec.Precision = 2
	WriteFloat(w, spec, 12345.0)
	assert.Equal(t, "1.23e+04", b.Str())
}

func TestWriteFloatGeneralFixedBranch(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'g'
	spec.Precision = 4
	WriteFloat(w, spec, 123.4)
	assert.Equal(t, "123.4", b.Str())
}

func TestWriteFloatGeneralScientificBranch(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'g'
	spec.Precision = 3
	WriteFloat(w, spec, 1234.0)
	assert.Equal(t, "1.23e+03", b.Str())
}

func TestWriteFloatNaN(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteFloat(w, fmtspec.Default(), math.NaN())
	assert.Equal(t, "nan", b.Str())
}

func TestWriteFloatInfinity(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Sign = '+'
	WriteFloat(w, spec, math.Inf(1))
	assert.Equal(t, "+inf", b.Str())
}

func TestWriteFloatNegativeInfinityUpper(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'F'
	WriteFloat(w, spec, math.Inf(-1))
	assert.Equal(t, "-INF", b.Str())
}

func TestWriteFloatZero(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteFloat(w, fmtspec.Default(), 0.0)
	assert.Equal(t, "0", b.Str())
}

func TestWriteFloatZeroScientific(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'e'
	WriteFloat(w, spec, 0.0)
	assert.Equal(t, "0e+00", b.Str())
}

func TestWriteFloatTinyValueFixedPrecision(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'f'
	spec.Precision = 2
	WriteFloat(w, spec, 1e-20)
	assert.Equal(t, "0.00", b.Str())
}
