// Package encoding normalizes uploaded text documents to UTF-8 before
// they are handed to the extraction model.
package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ToUTF8 decodes a text document of unknown charset to UTF-8.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Content that already validates as UTF-8 is returned as-is
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
func ToUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):], nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		return decode(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		return decode(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM))
	}

	if utf8.Valid(data) {
		return data, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return data, nil
		case "ISO-8859-1", "windows-1252":
			return decode(data, charmap.Windows1252)
		case "ISO-8859-15":
			return decode(data, charmap.ISO8859_15)
		case "ISO-8859-9":
			return decode(data, charmap.ISO8859_9)
		}
	}

	return decode(data, charmap.Windows1252)
}

func decode(data []byte, enc encoding.Encoding) ([]byte, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding to UTF-8: %w", err)
	}

	return out, nil
}
