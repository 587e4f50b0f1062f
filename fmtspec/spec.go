// Package fmtspec parses the format-spec grammar embedded in a replacement
// field's ":" section — fill, alignment, sign, alternate form, zero padding,
// width, precision, and a one-character type — and offers per-kind
// validity checks against the parsed result.
//
//	format_spec ::= [[fill]align][sign]["#"]["0"][width]["." precision][type]
//	fill        ::= any character other than '{' or '}'
//	align       ::= "<" | ">" | "^"
//	sign        ::= "+" | "-" | " "
//	type        ::= any ASCII letter | "?"
//
// Parse accepts any type letter; the per-kind Check functions decide which
// types each kind of value accepts.
package fmtspec

// Alignment is the parsed alignment directive, or None if the field carried
// no explicit alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// NoSign, NoPrecision and NoType are the sentinel "unset" values for the
// corresponding Spec fields.
const (
	NoSign      = 0
	NoPrecision = -1
	NoType      = 0
)

// Spec holds one replacement field's parsed format-spec.
type Spec struct {
	Fill          byte
	Align         Alignment
	Sign          byte
	AlternateForm bool
	ZeroFlag      bool
	Width         int
	Precision     int
	Type          byte
}

// Default returns the zero-value Spec: a space fill, no alignment, no sign,
// no precision, and the default type for whatever is being formatted.
func Default() Spec {
	return Spec{Fill: ' ', Precision: NoPrecision}
}
