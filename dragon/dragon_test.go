package dragon

import (
	"testing"

	"github.com/tinywasm/fmtcore/floatdecode"
	"github.com/tinywasm/fmtcore/internal/testutils/assert"
)

func shortestOf(t *testing.T, v float64) (string, int16) {
	t.Helper()
	dec := floatdecode.Decode(v)
	if dec.Category != floatdecode.Finite {
		t.Fatalf("expected finite decode for %v", v)
	}
	res := Shortest(dec.Finite)
	return string(res.Digits), res.Exp
}

func TestShortestOne(t *testing.T) {
	digits, exp := shortestOf(t, 1.0)
	assert.Equal(t, "1", digits)
	assert.Equal(t, int16(1), exp)
}

func TestShortestOneTenth(t *testing.T) {
	digits, exp := shortestOf(t, 0.1)
	assert.Equal(t, "1", digits)
	assert.Equal(t, int16(0), exp)
}

func TestShortestPi(t *testing.T) {
	digits, exp := shortestOf(t, 3.141592653589793)
	assert.Equal(t, "3141592653589793", digits)
	assert.Equal(t, int16(1), exp)
}

func TestShortestRoundNumber(t *testing.T) {
	digits, exp := shortestOf(t, 100.0)
	assert.Equal(t, "1", digits)
	assert.Equal(t, int16(3), exp)
}

func TestExactDigitsPi(t *testing.T) {
	dec := floatdecode.Decode(3.141592653589793)
	res := ExactDigits(dec.Finite, 3)
	assert.Equal(t, 3, len(res.Digits))
	assert.Equal(t, "314", string(res.Digits))
}

func TestExactFixedRounding(t *testing.T) {
	// 0.125 at 2 digits after the decimal point rounds to even -> "12".
	dec := floatdecode.Decode(0.125)
	res := ExactFixed(dec.Finite, 2)
	assert.Equal(t, "12", string(res.Digits))
}

func TestRoundUpAllNines(t *testing.T) {
	d := []byte("999")
	extra, has := roundUp(d)
	assert.True(t, has)
	assert.Equal(t, byte('0'), extra)
	assert.Equal(t, "100", string(d))
}

func TestRoundUpNoCarryAtEnd(t *testing.T) {
	d := []byte("123")
	extra, has := roundUp(d)
	assert.False(t, has)
	assert.Equal(t, byte(0), extra)
	assert.Equal(t, "124", string(d))
}

func TestRoundUpEmptyBuffer(t *testing.T) {
	extra, has := roundUp(nil)
	assert.True(t, has)
	assert.Equal(t, byte('1'), extra)
}
