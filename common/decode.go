package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnknownCharset = errors.New("unknown charset")

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "utf-8"

// LookupEncoding resolves an IANA charset name. Empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if isUTF8Name(name) {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownCharset, name, err)
	}
	if enc == nil {
		// known to the index but without an implementation
		return nil, fmt.Errorf("%w %q: unsupported", ErrUnknownCharset, name)
	}
	return enc, nil
}

// NewDecoder returns a transformer producing valid UTF-8 from input in the
// given charset. A leading BOM switches to the matching Unicode decoding and
// is removed. Byte sequences that aren't valid UTF-8 are dropped, while a
// U+FFFD already present in the input is kept.
func NewDecoder(charset string) (transform.Transformer, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return nil, err
	}

	// x/text's UTF-8 decoder substitutes U+FFFD, so UTF-8 skips it.
	var fallback transform.Transformer = dropIllFormed{}
	if !isUTF8Name(charset) {
		fallback = transform.Chain(enc.NewDecoder(), dropIllFormed{})
	}

	// BOMOverride decodes UTF-8 itself once it sees a UTF-8 BOM, so that
	// BOM is stripped beforehand and only UTF-16 BOMs reach it.
	return transform.Chain(&stripUTF8BOM{}, unicode.BOMOverride(fallback)), nil
}

// NewDecodingReader wraps r with NewDecoder.
func NewDecodingReader(r io.Reader, charset string) (io.Reader, error) {
	t, err := NewDecoder(charset)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, t), nil
}

// DecodeString applies NewDecoder to an in-memory string.
func DecodeString(s, charset string) (string, error) {
	t, err := NewDecoder(charset)
	if err != nil {
		return "", err
	}

	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("decode %s input: %w", charset, err)
	}
	return out, nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

var utf8BOM = []byte("\xef\xbb\xbf")

// stripUTF8BOM removes a UTF-8 byte order mark at the start of the input and
// passes everything else through.
type stripUTF8BOM struct {
	checked bool
}

func (t *stripUTF8BOM) Reset() { t.checked = false }

func (t *stripUTF8BOM) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.checked {
		if len(src) < len(utf8BOM) && !atEOF && bytes.HasPrefix(utf8BOM, src) {
			return 0, 0, transform.ErrShortSrc
		}
		t.checked = true
		if bytes.HasPrefix(src, utf8BOM) {
			nSrc = len(utf8BOM)
		}
	}

	n := copy(dst, src[nSrc:])
	nDst = n
	nSrc += n
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return nDst, nSrc, err
}

// dropIllFormed copies valid UTF-8 and skips every byte that doesn't start a
// valid encoding.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			nSrc++
			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}
