// Package charset maps byte-mode character sets to their ECI designators
// and transcodes text into them.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupported indicates an unknown character set or text that the
// character set cannot represent.
var ErrUnsupported = errors.New("charset: unsupported character set")

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value    int
	Name     string
	Aliases  []string
	Encoding encoding.Encoding
}

// pre-defined ECIs
var (
	ECIISO8859_1  = &ECI{3, "ISO8859_1", []string{"ISO-8859-1", "latin1"}, charmap.ISO8859_1}
	ECIISO8859_2  = &ECI{4, "ISO8859_2", []string{"ISO-8859-2"}, charmap.ISO8859_2}
	ECIISO8859_3  = &ECI{5, "ISO8859_3", []string{"ISO-8859-3"}, charmap.ISO8859_3}
	ECIISO8859_4  = &ECI{6, "ISO8859_4", []string{"ISO-8859-4"}, charmap.ISO8859_4}
	ECIISO8859_5  = &ECI{7, "ISO8859_5", []string{"ISO-8859-5"}, charmap.ISO8859_5}
	ECIISO8859_6  = &ECI{8, "ISO8859_6", []string{"ISO-8859-6"}, charmap.ISO8859_6}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", []string{"ISO-8859-7"}, charmap.ISO8859_7}
	ECIISO8859_8  = &ECI{10, "ISO8859_8", []string{"ISO-8859-8"}, charmap.ISO8859_8}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", []string{"ISO-8859-9"}, charmap.ISO8859_9}
	ECIISO8859_10 = &ECI{12, "ISO8859_10", []string{"ISO-8859-10"}, charmap.ISO8859_10}
	ECIISO8859_11 = &ECI{13, "ISO8859_11", []string{"ISO-8859-11", "TIS-620"}, charmap.Windows874}
	ECIISO8859_13 = &ECI{15, "ISO8859_13", []string{"ISO-8859-13"}, charmap.ISO8859_13}
	ECIISO8859_14 = &ECI{16, "ISO8859_14", []string{"ISO-8859-14"}, charmap.ISO8859_14}
	ECIISO8859_15 = &ECI{17, "ISO8859_15", []string{"ISO-8859-15"}, charmap.ISO8859_15}
	ECIISO8859_16 = &ECI{18, "ISO8859_16", []string{"ISO-8859-16"}, charmap.ISO8859_16}
	ECISJIS       = &ECI{20, "SJIS", []string{"Shift_JIS"}, japanese.ShiftJIS}
	ECICp1250     = &ECI{21, "Cp1250", []string{"windows-1250"}, charmap.Windows1250}
	ECICp1251     = &ECI{22, "Cp1251", []string{"windows-1251"}, charmap.Windows1251}
	ECICp1252     = &ECI{23, "Cp1252", []string{"windows-1252"}, charmap.Windows1252}
	ECICp1256     = &ECI{24, "Cp1256", []string{"windows-1256"}, charmap.Windows1256}
	ECIUTF8       = &ECI{26, "UTF8", []string{"UTF-8"}, unicode.UTF8}
)

// allECIs is ordered by ECI value.
var allECIs = []*ECI{
	ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4, ECIISO8859_5,
	ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9, ECIISO8859_10,
	ECIISO8859_11, ECIISO8859_13, ECIISO8859_14, ECIISO8859_15, ECIISO8859_16,
	ECISJIS, ECICp1250, ECICp1251, ECICp1252, ECICp1256, ECIUTF8,
}

var nameToECI map[string]*ECI

func init() {
	nameToECI = make(map[string]*ECI)
	for _, eci := range allECIs {
		nameToECI[strings.ToLower(eci.Name)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[strings.ToLower(alias)] = eci
		}
	}
}

// GetECIByName returns the ECI for the given encoding name, ignoring case.
func GetECIByName(name string) (*ECI, error) {
	eci, ok := nameToECI[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return eci, nil
}

// Encode transcodes content from UTF-8 into the ECI's character set.
// Content that is not valid UTF-8 is rejected rather than replaced.
func (e *ECI) Encode(content string) ([]byte, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrUnsupported, content)
	}
	b, err := e.Encoding.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s cannot encode %q: %v", ErrUnsupported, e.Name, content, err)
	}
	return b, nil
}

// CanEncode reports whether every character of content is representable.
func (e *ECI) CanEncode(content string) bool {
	_, err := e.Encode(content)
	return err == nil
}

// IsDefault reports whether e is the byte-mode default, which is never
// announced with an ECI header.
func (e *ECI) IsDefault() bool {
	return e == ECIISO8859_1
}

func (e *ECI) String() string {
	return e.Name
}
