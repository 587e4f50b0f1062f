package coretype

import (
	"testing"

	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/writer"
)

func TestWriteBoolTrue(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteBool(w, fmtspec.Default(), true)
	assert.Equal(t, "true", b.Str())
}

func TestWriteBoolFalse(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	WriteBool(w, fmtspec.Default(), false)
	assert.Equal(t, "false", b.Str())
}

func TestWriteBoolFalsePadded(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Width = 7
	WriteBool(w, spec, false)
	assert.Equal(t, "false  ", b.Str())
}

func TestWriteBoolAsInteger(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	spec := fmtspec.Default()
	spec.Type = 'd'
	WriteBool(w, spec, true)
	assert.Equal(t, "1", b.Str())
}
