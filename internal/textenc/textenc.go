// Package textenc приводит присланный клиентом текст к UTF-8.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const detectWindow = 2048

var bom = []byte{0xEF, 0xBB, 0xBF}

// Decode detects the charset on the first 2 KiB and converts b to UTF-8.
// Windows-1251/1252, ISO-8859-1 and KOI8-R are decoded; anything else is
// treated as UTF-8 with invalid sequences dropped.
func Decode(b []byte) string {
	b = bytes.TrimPrefix(b, bom)
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		return string(b)
	}

	peek := b
	if len(peek) > detectWindow {
		peek = peek[:detectWindow]
	}
	cs := "utf-8"
	if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
		cs = strings.ToLower(det.Charset)
	}

	if dec := decoderFor(cs); dec != nil {
		if out, err := dec.NewDecoder().Bytes(b); err == nil {
			return string(out)
		}
	}
	return strings.ToValidUTF8(string(b), "")
}

func decoderFor(charset string) encoding.Encoding {
	switch charset {
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "koi8-r":
		return charmap.KOI8R
	default:
		return nil
	}
}
