// Package encoding normalizes backup files to UTF-8. Backups exported by the
// app are UTF-8, but files that passed through other tools on Arabic-locale
// systems may arrive as UTF-16 or an Arabic single-byte code page.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader returns a reader that decodes r to UTF-8.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 is returned as-is
//  3. chardet reporting ISO-8859-6
//  4. Windows-1256 otherwise
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	case utf8.Valid(trimPartialRune(buf)):
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil && result.Charset == "ISO-8859-6" {
		return transform.NewReader(br, charmap.ISO8859_6.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1256.NewDecoder()), nil
}

// trimPartialRune drops a multi-byte rune cut off by the end of a full peek
// window so a valid UTF-8 stream is not misread as a code page.
func trimPartialRune(buf []byte) []byte {
	if len(buf) < peekSize {
		return buf
	}

	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buf[i]) {
			continue
		}

		if !utf8.FullRune(buf[i:]) {
			return buf[:i]
		}

		break
	}

	return buf
}
