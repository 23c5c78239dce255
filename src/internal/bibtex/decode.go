package bibtex

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns data as UTF-8 text. An explicit charset wins; otherwise
// valid UTF-8 passes through and anything else is run through charset
// detection. BibTeX files from older reference managers are commonly
// Latin-1 or Windows-1252.
func Decode(data []byte, charset string) (string, error) {
	if charset != "" {
		enc := lookupEncoding(charset)
		if enc == nil {
			return "", fmt.Errorf("bibtex: unsupported charset %q", charset)
		}
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("bibtex: decode %s: %w", charset, err)
		}
		return string(bytes.TrimPrefix(out, utf8BOM)), nil
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	res, err := chardet.NewTextDetector().DetectBest(data)
	if err == nil && res != nil {
		if enc := lookupEncoding(res.Charset); enc != nil {
			if out, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(out), nil
			}
		}
	}
	// Undetectable: Windows-1252 maps every byte, which beats dropping them.
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("bibtex: decode: %w", err)
	}
	return string(out), nil
}

func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(charset)) {
	case "utf8", "utf8bom":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592", "latin2":
		return charmap.ISO8859_2
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "macintosh", "macroman":
		return charmap.Macintosh
	case "koi8r":
		return charmap.KOI8R
	}
	return nil
}
