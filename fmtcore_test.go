package fmtcore

import (
	"testing"

	"github.com/tinywasm/fmtcore/internal/testutils/assert"
)

func TestFormatBasic(t *testing.T) {
	got := Format("{} + {} = {}", 1, 2, 3)
	assert.True(t, got.HasValue())
	assert.Equal(t, "1 + 2 = 3", got.Value())
}

func TestFormatWithSpec(t *testing.T) {
	got := Format("{:05}", 42)
	assert.True(t, got.HasValue())
	assert.Equal(t, "00042", got.Value())
}

func TestFormattedSizeMatchesFormat(t *testing.T) {
	s := Format("{}-{}", "ab", 12)
	n := FormattedSize("{}-{}", "ab", 12)
	assert.True(t, s.HasValue())
	assert.True(t, n.HasValue())
	assert.Equal(t, len(s.Value()), n.Value())
}

func TestFprintOverflowsSpan(t *testing.T) {
	r := Fprint(make([]byte, 2), "{}", 12345)
	assert.True(t, r.HasError())
}

func TestValidateCatchesBadSpec(t *testing.T) {
	r := Validate("{:#}", "hi")
	assert.True(t, r.HasError())
}

func TestSscanBasic(t *testing.T) {
	var a int
	var b string
	r := Sscan("42 hello", "{} {}", &a, &b)
	assert.True(t, r.HasValue())
	assert.Equal(t, 42, a)
	assert.Equal(t, "hello", b)
}

func TestPrintlnAppendsNewline(t *testing.T) {
	got := Println("{}", "hi")
	assert.True(t, got.HasValue())
	assert.Equal(t, "hi\n", got.Value())
}
