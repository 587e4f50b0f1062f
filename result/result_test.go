package result

import (
	"testing"

	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/internal/testutils/require"
)

func TestOkHasValue(t *testing.T) {
	r := Ok(42)
	assert.True(t, r.HasValue())
	assert.False(t, r.HasError())
	assert.Equal(t, 42, r.Value())
}

func TestErrHasError(t *testing.T) {
	r := Err[int](EOF)
	assert.False(t, r.HasValue())
	assert.True(t, r.HasError())
	assert.Equal(t, EOF, r.Error())
}

func TestErrZeroKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		Err[int](0)
	})
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 42, Ok(42).ValueOr(7))
	assert.Equal(t, 7, Err[int](OutOfRange).ValueOr(7))
}

func TestUnwrap(t *testing.T) {
	v, err := Ok("hi").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	_, err = Err[string](InvalidData).Unwrap()
	require.Error(t, err)
	assert.Equal(t, "invalid data", err.Error())
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		EOF:              "eof",
		InvalidArgument:  "invalid argument",
		InvalidData:      "invalid data",
		OutOfRange:       "out of range",
		InvalidFormat:    "invalid format",
		ErrorKind(99):    "unknown error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestMapResult(t *testing.T) {
	r := MapResult(Ok(3), func(v int) string { return "n" })
	assert.Equal(t, "n", r.Value())

	r2 := MapResult(Err[int](EOF), func(v int) string { return "n" })
	assert.True(t, r2.HasError())
	assert.Equal(t, EOF, r2.Error())
}
