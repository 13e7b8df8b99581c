// Package charset maps character set names to QR ECI assignment numbers and
// converts UTF-8 text into the corresponding byte encodings.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ErrUnknown indicates a character set name with no registered mapping.
var ErrUnknown = errors.New("charset: unknown character set")

// Charset describes a character encoding a QR symbol payload can carry,
// together with its ECI assignment number.
type Charset struct {
	Name    string
	ECI     int
	aliases []string
	enc     encoding.Encoding // nil encodes as UTF-8
}

// Supported character sets.
var (
	UTF8      = &Charset{Name: "UTF-8", ECI: 26, aliases: []string{"UTF8"}}
	ISO8859_1 = &Charset{Name: "ISO-8859-1", ECI: 1, aliases: []string{"ISO8859_1", "Latin-1", "Latin1"}, enc: charmap.ISO8859_1}
	ShiftJIS  = &Charset{Name: "Shift_JIS", ECI: 20, aliases: []string{"SJIS", "Shift-JIS"}, enc: japanese.ShiftJIS}
	GB18030   = &Charset{Name: "GB18030", ECI: 29, aliases: []string{"GB2312", "GBK"}, enc: simplifiedchinese.GB18030}
)

var byName map[string]*Charset

func init() {
	byName = make(map[string]*Charset)
	for _, cs := range []*Charset{UTF8, ISO8859_1, ShiftJIS, GB18030} {
		byName[strings.ToLower(cs.Name)] = cs
		for _, alias := range cs.aliases {
			byName[strings.ToLower(alias)] = cs
		}
	}
}

// Lookup returns the character set registered under name. Names and aliases
// are matched case-insensitively; the empty name resolves to UTF-8.
func Lookup(name string) (*Charset, error) {
	if name == "" {
		return UTF8, nil
	}
	cs := byName[strings.ToLower(name)]
	if cs == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return cs, nil
}

// Bytes converts UTF-8 text to this character set's byte encoding. It fails
// when text contains characters the encoding cannot represent.
func (cs *Charset) Bytes(text string) ([]byte, error) {
	if cs.enc == nil {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(cs.enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("charset: encode %s: %w", cs.Name, err)
	}
	return out, nil
}
