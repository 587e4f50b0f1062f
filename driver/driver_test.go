package driver

import (
	"testing"

	"github.com/tinywasm/fmtcore/arg"
	"github.com/tinywasm/fmtcore/buffer"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/writer"
)

func formatStr(t *testing.T, format string, args ...arg.Arg) string {
	t.Helper()
	b := buffer.NewStatic()
	w := writer.New(b)
	res := Format(w, format, args)
	assert.True(t, res.HasValue())
	return b.Str()
}

func TestFormatAutomaticIndexing(t *testing.T) {
	got := formatStr(t, "{} and {}", arg.Of(1), arg.Of(2))
	assert.Equal(t, "1 and 2", got)
}

func TestFormatExplicitIndexing(t *testing.T) {
	got := formatStr(t, "{1} before {0}", arg.Of("a"), arg.Of("b"))
	assert.Equal(t, "b before a", got)
}

func TestFormatEscapedBraces(t *testing.T) {
	got := formatStr(t, "{{{}}}", arg.Of(5))
	assert.Equal(t, "{5}", got)
}

func TestFormatWithSpec(t *testing.T) {
	got := formatStr(t, "[{:5}]", arg.Of(42))
	assert.Equal(t, "[   42]", got)
}

func TestFormatMixedIndexingIsInvalid(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	res := Format(w, "{0} {}", []arg.Arg{arg.Of(1), arg.Of(2)})
	assert.True(t, res.HasError())
}

func TestFormatUnmatchedCloseBraceIsInvalid(t *testing.T) {
	b := buffer.NewStatic()
	w := writer.New(b)
	res := Format(w, "}", nil)
	assert.True(t, res.HasError())
}

func TestValidateOutOfRangeIndex(t *testing.T) {
	res := Validate("{5}", []arg.Arg{arg.Of(1)})
	assert.True(t, res.HasError())
}

func TestValidateRequiresFullArgumentCoverage(t *testing.T) {
	res := Validate("{}", []arg.Arg{arg.Of(1), arg.Of(2)})
	assert.True(t, res.HasError())
}

func TestValidateTypeMismatch(t *testing.T) {
	res := Validate("{:#}", []arg.Arg{arg.Of("hi")})
	assert.True(t, res.HasError())
}

func TestScanLiteralAndFields(t *testing.T) {
	var a, b int
	input := reader.New("1, 2")
	res := Scan(input, "{}, {}", []arg.Arg{arg.OfScan(&a), arg.OfScan(&b)})
	assert.True(t, res.HasValue())
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestScanLiteralMismatch(t *testing.T) {
	var a int
	input := reader.New("X1")
	res := Scan(input, "1{}", []arg.Arg{arg.OfScan(&a)})
	assert.True(t, res.HasError())
}
