// Package driver implements the replacement-field state machine shared by
// formatting and scanning: it walks a format string once, turning `{{`/`}}`
// into literal braces, literal runs into literal output (format) or literal
// matches (scan), and `{...}` replacement fields into calls against a
// caller-supplied argument pack.
package driver

import (
	"github.com/tinywasm/fmtcore/arg"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

type state uint8

const (
	stateLiteral state = iota
	statePossibleOpenBrace
	statePossibleCloseBrace
)

// indexing tracks whether the format string commits to automatic
// (unnumbered) or explicit (numbered) argument indices, and which
// arguments have been referenced. The original library tracks the latter
// with a bitset<128> word-packed coverage mask; a plain []bool sized to
// the argument count is the idiomatic Go equivalent, with no word-packing
// to hand-roll.
type indexing struct {
	args     []arg.Arg
	seen     []bool
	autoNext int
	sawAuto  bool
	sawIndex bool
}

func newIndexing(args []arg.Arg) *indexing {
	return &indexing{args: args, seen: make([]bool, len(args))}
}

// allCovered reports whether every supplied argument was referenced by at
// least one replacement field, mirroring the original's
// bitset<128>::all_first(arg_cnt) check in its validate().
func (ix *indexing) allCovered() bool {
	for _, s := range ix.seen {
		if !s {
			return false
		}
	}
	return true
}

func (ix *indexing) next(explicit int, hasExplicit bool) result.Result[int] {
	if hasExplicit {
		if ix.sawAuto {
			return result.Err[int](result.InvalidFormat)
		}
		ix.sawIndex = true
		if explicit < 0 || explicit >= len(ix.args) {
			return result.Err[int](result.InvalidFormat)
		}
		ix.seen[explicit] = true
		return result.Ok(explicit)
	}
	if ix.sawIndex {
		return result.Err[int](result.InvalidFormat)
	}
	ix.sawAuto = true
	if ix.autoNext >= len(ix.args) {
		return result.Err[int](result.InvalidFormat)
	}
	i := ix.autoNext
	ix.seen[i] = true
	ix.autoNext++
	return result.Ok(i)
}

// readFieldHead reads an optional leading digit run (an explicit argument
// index) followed by the separator that ends it: ':' (a spec follows) or
// '}' (no spec, field ends here). c is the character already consumed
// immediately after the opening '{'.
func readFieldHead(r *reader.Reader, c byte) (explicit int, hasExplicit bool, sep byte, res result.Result[result.Void]) {
	if c >= '0' && c <= '9' {
		r.Unpop(1)
		n := reader.ParseInt[int](r, 10)
		if n.HasError() {
			return 0, false, 0, result.Err[result.Void](n.Error())
		}
		cRes := r.ReadChar()
		if cRes.HasError() {
			return 0, false, 0, result.Err[result.Void](cRes.Error())
		}
		sep = cRes.Value()
		if sep != ':' && sep != '}' {
			return 0, false, 0, result.Err[result.Void](result.InvalidFormat)
		}
		return n.Value(), true, sep, result.Ok(result.Success)
	}
	if c != ':' && c != '}' {
		return 0, false, 0, result.Err[result.Void](result.InvalidFormat)
	}
	return 0, false, c, result.Ok(result.Success)
}

// hooks lets Format, Validate and Scan share one state machine while
// differing only in what they do with a literal byte and with a resolved
// replacement field.
type hooks struct {
	literal func(c byte) result.Result[result.Void]
	field   func(a arg.Arg, specReader *reader.Reader) result.Result[result.Void]
	// requireCoverage, when true, fails run with InvalidFormat if any
	// supplied argument was never referenced by a replacement field. Only
	// Validate sets this.
	requireCoverage bool
}

func run(format string, args []arg.Arg, h hooks) result.Result[result.Void] {
	r := reader.New(format)
	ix := newIndexing(args)
	st := stateLiteral

	for {
		cRes := r.ReadChar()
		if cRes.HasError() {
			break
		}
		c := cRes.Value()

		switch st {
		case stateLiteral:
			switch c {
			case '{':
				st = statePossibleOpenBrace
			case '}':
				st = statePossibleCloseBrace
			default:
				if res := h.literal(c); res.HasError() {
					return res
				}
			}

		case statePossibleOpenBrace:
			if c == '{' {
				if res := h.literal('{'); res.HasError() {
					return res
				}
				st = stateLiteral
				continue
			}
			explicit, hasExplicit, sep, headRes := readFieldHead(r, c)
			if headRes.HasError() {
				return headRes
			}
			idxRes := ix.next(explicit, hasExplicit)
			if idxRes.HasError() {
				return result.Err[result.Void](idxRes.Error())
			}

			// When sep is '}' the field carries no spec; hand the field
			// hook a reader that immediately reports the close. When sep
			// is ':' the spec grammar itself lives in format starting
			// right here, so r (already positioned just past the ':')
			// keeps driving the same cursor through to the closing '}'.
			var specReader *reader.Reader
			if sep == '}' {
				specReader = reader.New("}")
			} else {
				specReader = r
			}
			if res := h.field(args[idxRes.Value()], specReader); res.HasError() {
				return res
			}
			st = stateLiteral

		case statePossibleCloseBrace:
			if c == '}' {
				if res := h.literal('}'); res.HasError() {
					return res
				}
				st = stateLiteral
				continue
			}
			return result.Err[result.Void](result.InvalidFormat)
		}
	}

	if st != stateLiteral {
		return result.Err[result.Void](result.InvalidFormat)
	}
	if h.requireCoverage && !ix.allCovered() {
		return result.Err[result.Void](result.InvalidFormat)
	}
	return result.Ok(result.Success)
}

// Format renders format against args into w.
func Format(w *writer.Writer, format string, args []arg.Arg) result.Result[result.Void] {
	return run(format, args, hooks{
		literal: func(c byte) result.Result[result.Void] { return w.WriteChar(c) },
		field: func(a arg.Arg, specReader *reader.Reader) result.Result[result.Void] {
			return a.Format(specReader, w)
		},
	})
}

// Validate checks format against args without producing output: every
// replacement field's spec must validate against its argument's kind, and
// every literal brace must be correctly escaped.
func Validate(format string, args []arg.Arg) result.Result[result.Void] {
	return run(format, args, hooks{
		literal: func(byte) result.Result[result.Void] { return result.Ok(result.Success) },
		field: func(a arg.Arg, specReader *reader.Reader) result.Result[result.Void] {
			return a.Validate(specReader)
		},
		requireCoverage: true,
	})
}

// Scan matches format's literal runs against input and scans its
// replacement fields into args. A literal mismatch is InvalidData; running
// out of input is EOF.
func Scan(input *reader.Reader, format string, args []arg.Arg) result.Result[result.Void] {
	return run(format, args, hooks{
		literal: func(c byte) result.Result[result.Void] {
			got := input.ReadChar()
			if got.HasError() {
				return result.Err[result.Void](result.EOF)
			}
			if got.Value() != c {
				return result.Err[result.Void](result.InvalidData)
			}
			return result.Ok(result.Success)
		},
		field: func(a arg.Arg, specReader *reader.Reader) result.Result[result.Void] {
			return a.Scan(specReader, input)
		},
	})
}
