//revive:disable:var-naming
package common

//revive:enable:var-naming

import (
	"io"
	"unicode/utf8"
)

type Reader interface {
	io.Reader
	ReadRune() (r rune, size int, err error)
	Peek(n int) ([]byte, error)
}

// IsLineBreak reports whether r terminates a line. CR is handled by the
// caller since it may be followed by LF.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// ReadLine returns the next line without its terminator and the number of
// bytes consumed including the terminator.
// Lines end on LF, CRLF, a lone CR, or any other universal line break.
// Input is expected to be valid UTF-8 (see NewDecodingReader).
func ReadLine(r Reader) ([]byte, int64, error) {
	var (
		buf      []byte
		consumed int64
	)

	for {
		c, size, err := r.ReadRune()
		if err != nil {
			if err == io.EOF {
				if consumed == 0 {
					return nil, 0, io.EOF
				}
				// EOF after some bytes, no trailing newline
				return buf, consumed, nil
			}
			return nil, 0, err
		}
		consumed += int64(size)

		if IsLineBreak(c) {
			return buf, consumed, nil
		}

		if c == '\r' {
			p, perr := r.Peek(1)
			if perr == nil && len(p) > 0 && p[0] == '\n' {
				if _, _, rerr := r.ReadRune(); rerr != nil {
					return nil, 0, rerr
				}
				consumed++
			}
			return buf, consumed, nil
		}

		buf = utf8.AppendRune(buf, c)
	}
}
