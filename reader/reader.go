// Package reader implements an immutable cursor over a byte sequence, with
// the peek/pop/unpop/match/parse-integer primitives the rest of this module
// builds its scanning on top of.
package reader

import "github.com/tinywasm/fmtcore/result"

// Integer is the set of integer types Reader.ParseInt can target.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Reader is a cursor over an input string. Every read advances (or, via
// Unpop, retreats) the cursor; the cursor position always saturates at the
// bounds of the input instead of going negative or past the end.
type Reader struct {
	input string
	pos   int
}

// New constructs a Reader over input starting at position 0.
func New(input string) *Reader {
	return &Reader{input: input}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Sub returns a new Reader over the pos..pos+length window of r's original
// input, independent of r's own cursor.
func (r *Reader) Sub(pos, length int) *Reader {
	end := pos + length
	if end > len(r.input) {
		end = len(r.input)
	}
	if pos > end {
		pos = end
	}
	return &Reader{input: r.input[pos:end]}
}

// Eof reports whether the cursor has reached the end of the input.
func (r *Reader) Eof() bool {
	return r.pos >= len(r.input)
}

// RemainingCount returns the number of unread bytes.
func (r *Reader) RemainingCount() int {
	return len(r.input) - r.pos
}

// Empty reports whether the input is empty (regardless of cursor position).
func (r *Reader) Empty() bool {
	return len(r.input) == 0
}

// ViewRemaining returns the unread suffix of the input without consuming it.
func (r *Reader) ViewRemaining() string {
	return r.input[r.pos:]
}

// ReadRemaining consumes and returns the unread suffix of the input.
func (r *Reader) ReadRemaining() string {
	s := r.input[r.pos:]
	r.pos = len(r.input)
	return s
}

// Pop advances the cursor by cnt bytes, saturating at the end of the input.
func (r *Reader) Pop(cnt int) {
	r.pos += cnt
	if r.pos > len(r.input) {
		r.pos = len(r.input)
	}
}

// Unpop retreats the cursor by cnt bytes, saturating at the start of the
// input.
func (r *Reader) Unpop(cnt int) {
	r.pos -= cnt
	if r.pos < 0 {
		r.pos = 0
	}
}

// Peek returns the next unread byte without consuming it.
func (r *Reader) Peek() result.Result[byte] {
	if r.Eof() {
		return result.Err[byte](result.EOF)
	}
	return result.Ok(r.input[r.pos])
}

// ReadChar consumes and returns the next byte.
func (r *Reader) ReadChar() result.Result[byte] {
	c := r.Peek()
	if c.HasError() {
		return c
	}
	r.Pop(1)
	return c
}

// ReadNChars consumes and returns the next n bytes.
func (r *Reader) ReadNChars(n int) result.Result[string] {
	if r.RemainingCount() < n {
		return result.Err[string](result.EOF)
	}
	s := r.input[r.pos : r.pos+n]
	r.Pop(n)
	return result.Ok(s)
}

// ReadIfMatchChar consumes c if it is the next byte, reporting whether it
// matched.
func (r *Reader) ReadIfMatchChar(c byte) bool {
	if r.Eof() || r.input[r.pos] != c {
		return false
	}
	r.Pop(1)
	return true
}

// ReadIfMatchStr consumes s if it is a prefix of the remaining input,
// reporting whether it matched.
func (r *Reader) ReadIfMatchStr(s string) bool {
	if len(r.ViewRemaining()) < len(s) || r.input[r.pos:r.pos+len(s)] != s {
		return false
	}
	r.Pop(len(s))
	return true
}

// ReadUntilOptions controls the behavior of the ReadUntil* family.
type ReadUntilOptions struct {
	// IncludeDelimiter, if true, includes the matched delimiter in the
	// returned span.
	IncludeDelimiter bool
	// KeepDelimiter, if true, does not consume the matched delimiter, so a
	// subsequent read can still see it.
	KeepDelimiter bool
	// IgnoreEOF, if true, requires the delimiter to actually be found:
	// running off the end of input without a match fails with InvalidData.
	// The default (false) treats running out of input as a match at the
	// end of the remaining input and consumes it all successfully.
	IgnoreEOF bool
}

func (r *Reader) readUntilPos(matchPos int, matched bool, opts ReadUntilOptions, delimiterSize int) result.Result[string] {
	if r.Eof() {
		return result.Err[string](result.EOF)
	}
	if !matched {
		if !opts.IgnoreEOF {
			s := r.ReadRemaining()
			return result.Ok(s)
		}
		return result.Err[string](result.InvalidData)
	}
	end := matchPos
	if opts.IncludeDelimiter {
		end += delimiterSize
	}
	s := r.input[r.pos:end]
	if opts.KeepDelimiter {
		r.pos = matchPos
	} else {
		r.pos = matchPos + delimiterSize
	}
	return result.Ok(s)
}

// ReadUntilChar reads up to (and, per opts, possibly past or excluding) the
// next occurrence of delim.
func (r *Reader) ReadUntilChar(delim byte, opts ReadUntilOptions) result.Result[string] {
	rest := r.ViewRemaining()
	idx := indexByte(rest, delim)
	if idx < 0 {
		return r.readUntilPos(0, false, opts, 1)
	}
	return r.readUntilPos(r.pos+idx, true, opts, 1)
}

// ReadUntilStr reads up to the next occurrence of delim.
func (r *Reader) ReadUntilStr(delim string, opts ReadUntilOptions) result.Result[string] {
	if delim == "" {
		return r.readUntilPos(0, false, opts, 0)
	}
	rest := r.ViewRemaining()
	idx := indexString(rest, delim)
	if idx < 0 {
		return r.readUntilPos(0, false, opts, len(delim))
	}
	return r.readUntilPos(r.pos+idx, true, opts, len(delim))
}

// ReadUntilAnyOf reads up to the next byte that is any of the bytes in set.
func (r *Reader) ReadUntilAnyOf(set string, opts ReadUntilOptions) result.Result[string] {
	rest := r.ViewRemaining()
	for i := 0; i < len(rest); i++ {
		if indexByte(set, rest[i]) >= 0 {
			return r.readUntilPos(r.pos+i, true, opts, 1)
		}
	}
	return r.readUntilPos(0, false, opts, 1)
}

// ReadUntilNoneOf reads up to the next byte that is not in set.
func (r *Reader) ReadUntilNoneOf(set string, opts ReadUntilOptions) result.Result[string] {
	rest := r.ViewRemaining()
	for i := 0; i < len(rest); i++ {
		if indexByte(set, rest[i]) < 0 {
			return r.readUntilPos(r.pos+i, true, opts, 1)
		}
	}
	return r.readUntilPos(0, false, opts, 1)
}

// Predicate is a byte classifier used by ReadUntil.
type Predicate func(byte) bool

// ReadUntil reads up to the next byte for which pred returns true.
func (r *Reader) ReadUntil(pred Predicate, opts ReadUntilOptions) result.Result[string] {
	rest := r.ViewRemaining()
	for i := 0; i < len(rest); i++ {
		if pred(rest[i]) {
			return r.readUntilPos(r.pos+i, true, opts, 1)
		}
	}
	return r.readUntilPos(0, false, opts, 1)
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func indexString(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}
