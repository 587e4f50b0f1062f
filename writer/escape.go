package writer

import "github.com/tinywasm/fmtcore/result"

const hexDigits = "0123456789abcdef"

// escapedLen returns the number of bytes c expands to when escaped, and, for
// '\n', '\r' and '\t', the named escape sequence; the string is empty for
// every other byte.
func escapedLen(c byte, quote byte) (int, string) {
	switch c {
	case quote, '\\':
		return 2, ""
	case '\n':
		return 2, `\n`
	case '\r':
		return 2, `\r`
	case '\t':
		return 2, `\t`
	}
	if c < 0x20 || c == 0x7f {
		return 4, ""
	}
	return 1, ""
}

func writeEscapedByte(dst []byte, c byte, quote byte) []byte {
	switch c {
	case quote, '\\':
		return append(dst, '\\', c)
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	}
	if c < 0x20 || c == 0x7f {
		return append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
	}
	return append(dst, c)
}

// WriteCharEscaped writes c wrapped in single quotes, with control
// characters and the quote/backslash themselves backslash-escaped.
func (w *Writer) WriteCharEscaped(c byte) result.Result[result.Void] {
	return w.writeEscaped(string(c), '\'')
}

// WriteStrEscaped writes sv wrapped in double quotes, with control
// characters and the quote/backslash themselves backslash-escaped.
func (w *Writer) WriteStrEscaped(sv string) result.Result[result.Void] {
	return w.writeEscaped(sv, '"')
}

func (w *Writer) writeEscaped(sv string, quote byte) result.Result[result.Void] {
	total := 2
	for i := 0; i < len(sv); i++ {
		n, _ := escapedLen(sv[i], quote)
		total += n
	}
	area := w.buf.GetWriteAreaOf(total)
	if area.HasError() {
		return result.Err[result.Void](area.Error())
	}
	dst := area.Value()[:0]
	dst = append(dst, quote)
	for i := 0; i < len(sv); i++ {
		dst = writeEscapedByte(dst, sv[i], quote)
	}
	dst = append(dst, quote)
	return result.Ok(result.Success)
}
