package lcf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePage selects the legacy encoding used to display names stored in game
// files. Rule matching always uses Shift-JIS, which is what the game data
// the rules target is written in.
type CodePage int

const (
	CodePageASCII CodePage = iota
	CodePageEastern
	CodePageCyrillic
	CodePageShiftJIS
	CodePageBig5
)

var codePageNames = []string{"ascii", "eastern", "cyrillic", "shift-jis", "big5"}

// CodePageNames lists the accepted values of ParseCodePage.
func CodePageNames() []string {
	return append([]string(nil), codePageNames...)
}

// ParseCodePage parses a code page name. Windows code page numbers are
// accepted as aliases.
func ParseCodePage(s string) (CodePage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii", "1252", "western":
		return CodePageASCII, nil
	case "eastern", "1250", "european":
		return CodePageEastern, nil
	case "cyrillic", "1251":
		return CodePageCyrillic, nil
	case "shift-jis", "shiftjis", "sjis", "932", "japanese":
		return CodePageShiftJIS, nil
	case "big5", "950", "chinese":
		return CodePageBig5, nil
	default:
		return CodePageASCII, fmt.Errorf("unknown code page: %q (valid: %s)", s, strings.Join(codePageNames, ", "))
	}
}

func (c CodePage) String() string {
	if int(c) >= 0 && int(c) < len(codePageNames) {
		return codePageNames[c]
	}
	return "unknown"
}

// Encoding returns the x/text encoding for the code page.
func (c CodePage) Encoding() encoding.Encoding {
	switch c {
	case CodePageEastern:
		return charmap.Windows1250
	case CodePageCyrillic:
		return charmap.Windows1251
	case CodePageShiftJIS:
		return japanese.ShiftJIS
	case CodePageBig5:
		return traditionalchinese.Big5
	default:
		return charmap.Windows1252
	}
}

// Decode converts raw bytes to a string. Undecodable input falls back to the
// raw bytes so that display never fails.
func (c CodePage) Decode(b []byte) string {
	out, err := c.Encoding().NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// DecodeShiftJIS decodes raw game text.
func DecodeShiftJIS(b []byte) string {
	return CodePageShiftJIS.Decode(b)
}

// EncodeShiftJIS encodes s for comparison against raw game bytes. It panics
// on text that Shift-JIS cannot represent, which only happens for constant
// signatures written in code.
func EncodeShiftJIS(s string) []byte {
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("lcf: %q is not representable in Shift-JIS: %v", s, err))
	}
	return out
}
