package CouloyIO

import (
	"fmt"
	"unicode/utf8"

	"github.com/Kirov7/CouloyIO/driver"
)

var quote = []byte{'\''}

// WriteEncodedRune emits r to h as a single-quoted, backslash-escaped
// character literal. The first failing write stops further emission, but the
// closing quote is always attempted so the literal is visually terminated;
// its error never overrides an earlier one. The returned count is the number
// of bytes actually committed.
func WriteEncodedRune(h driver.IOManager, r rune) (int, error) {
	n, err := h.Write(quote)
	if err == nil {
		var nn int
		if esc, ok := namedEscape(r); ok {
			nn, err = h.Write([]byte(esc))
		} else if r < 32 {
			// always exactly two uppercase hex digits for the low byte
			nn, err = h.Write([]byte(fmt.Sprintf(`\x%02X`, byte(r))))
		} else {
			buf := make([]byte, utf8.UTFMax)
			w := utf8.EncodeRune(buf, r)
			nn, err = h.Write(buf[:w])
		}
		n += nn
	}

	nn, errQuote := h.Write(quote)
	n += nn
	if err == nil {
		err = errQuote
	}
	return n, err
}

func namedEscape(r rune) (string, bool) {
	switch r {
	case '\a':
		return `\a`, true
	case '\b':
		return `\b`, true
	case 0x1b:
		return `\e`, true
	case '\f':
		return `\f`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\v':
		return `\v`, true
	}
	return "", false
}
