package coretype

import (
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/writer"
)

func TestWriteCharPlain(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteChar(w, fmtspec.Default(), 'x')
	assert.Equal(t, "x", b.Str())
}

func TestWriteCharDebugEscaped(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = '?'
	WriteChar(w, spec, '\n')
	assert.Equal(t, `'\n'`, b.Str())
}

func TestWriteCharAsHex(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'x'
	WriteChar(w, spec, 'A')
	assert.Equal(t, "41", b.Str())
}

func TestWriteCharPaddedCenter(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Width = 3
	spec.Align = fmtspec.AlignCenter
	WriteChar(w, spec, 'x')
	assert.Equal(t, " x ", b.Str())
}
