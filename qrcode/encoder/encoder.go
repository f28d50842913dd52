// Package encoder turns text into a finished QR Code symbol: mode
// recognition, bitstream packing, error correction, matrix assembly and mask
// selection.
package encoder

import (
	"fmt"
	"strings"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/charset"
	"github.com/ericlevine/qrencode/qrcode/mask"
	"github.com/ericlevine/qrencode/qrcode/matrix"
	"github.com/ericlevine/qrencode/qrcode/mode"
	"github.com/ericlevine/qrencode/qrcode/version"
)

// State is a stage of the encoding pipeline.
type State int

const (
	StateIdle State = iota
	StateRecognized
	StateDataEncoded
	StateECBuilt
	StateAssembled
	StateMasked
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecognized:
		return "recognized"
	case StateDataEncoded:
		return "data encoded"
	case StateECBuilt:
		return "ec built"
	case StateAssembled:
		return "assembled"
	case StateMasked:
		return "masked"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Hints adjusts the encoding. The zero value picks everything automatically.
type Hints struct {
	// CharacterSet forces the byte-mode character set.
	CharacterSet string
	// MinVersion is the smallest version the symbol may use; 0 means 1.
	MinVersion int
	// MaskPattern forces a mask pattern instead of penalty selection.
	MaskPattern *int
}

// QRCode holds the encoded QR code data.
type QRCode struct {
	Mode        mode.Mode
	ECI         *charset.ECI // byte mode only
	ECLevel     version.ErrorCorrectionLevel
	Version     *version.Version
	MaskPattern int
	Penalty     int
	Matrix      *bitutil.BitMatrix
}

// String returns a visual representation of the QR code.
func (qr *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mode: %s\n", qr.Mode)
	if qr.ECI != nil {
		fmt.Fprintf(&sb, "eci: %s\n", qr.ECI)
	}
	fmt.Fprintf(&sb, "ecLevel: %s\n", qr.ECLevel)
	fmt.Fprintf(&sb, "version: %s\n", qr.Version)
	fmt.Fprintf(&sb, "maskPattern: %d\n", qr.MaskPattern)
	sb.WriteString(qr.Matrix.StringWithChars("##", "  "))
	return sb.String()
}

// encoding carries one Encode call through the pipeline.
type encoding struct {
	state   State
	content string
	ecLevel version.ErrorCorrectionLevel
	hints   Hints

	recognition mode.Recognition
	version     *version.Version
	detail      version.VersionDetail
	dataBits    *bitutil.BitArray
	codewords   *bitutil.BitArray
	assembled   *matrix.TriStateMatrix
	masked      mask.Result
}

// Encode encodes content into a QRCode at the given error correction level.
// hints may be nil. On error no symbol is returned.
func Encode(content string, ecLevel version.ErrorCorrectionLevel, hints *Hints) (*QRCode, error) {
	e := &encoding{content: content, ecLevel: ecLevel}
	if hints != nil {
		e.hints = *hints
	}
	steps := []func() error{
		e.recognize,
		e.encodeData,
		e.buildEC,
		e.assemble,
		e.selectMask,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("qrcode/encoder: %s -> %s: %w", e.state, e.state+1, err)
		}
		e.state++
	}
	e.state = StateDone
	return &QRCode{
		Mode:        e.recognition.Mode,
		ECI:         e.recognition.ECI,
		ECLevel:     e.ecLevel,
		Version:     e.version,
		MaskPattern: int(e.masked.Pattern),
		Penalty:     e.masked.Penalty,
		Matrix:      e.masked.Matrix,
	}, nil
}

func (e *encoding) recognize() error {
	r, err := mode.RecognizeWithCharset(e.content, e.hints.CharacterSet)
	if err != nil {
		return err
	}
	e.recognition = r
	return nil
}

func (e *encoding) encodeData() error {
	enc := mode.NewEncoder(e.recognition)
	dataBits, err := enc.DataBits(e.content)
	if err != nil {
		return err
	}
	v, err := chooseVersion(e.recognition, dataBits.Size(), e.ecLevel, e.hints.MinVersion)
	if err != nil {
		return err
	}
	e.version = v
	e.detail = v.Detail(e.ecLevel)

	bits := bitutil.NewBitArray(e.detail.DataBits())
	if err := mode.AppendHeader(bits, e.recognition, enc.CharacterCount(e.content), v); err != nil {
		return err
	}
	bits.AppendBitArray(dataBits)
	if err := TerminateBits(e.detail.NumDataBytes, bits); err != nil {
		return err
	}
	e.dataBits = bits
	return nil
}

func (e *encoding) buildEC() error {
	codewords, err := InterleaveWithECBytes(e.dataBits, e.detail)
	if err != nil {
		return err
	}
	e.codewords = codewords
	return nil
}

func (e *encoding) assemble() error {
	tm, err := matrix.Assemble(e.codewords, e.version)
	if err != nil {
		return err
	}
	e.assembled = tm
	return nil
}

func (e *encoding) selectMask() error {
	var (
		result mask.Result
		err    error
	)
	if e.hints.MaskPattern != nil {
		p, perr := mask.NewPattern(*e.hints.MaskPattern)
		if perr != nil {
			return perr
		}
		result, err = mask.Apply(e.assembled, e.ecLevel, p)
	} else {
		result, err = mask.Select(e.assembled, e.ecLevel)
	}
	if err != nil {
		return err
	}
	e.masked = result
	return nil
}

// chooseVersion returns the smallest version, not below minVersion, whose
// data capacity holds the header and numDataBits. The character count width
// changes between tiers, so each tier is sized separately.
func chooseVersion(r mode.Recognition, numDataBits int, ecLevel version.ErrorCorrectionLevel, minVersion int) (*version.Version, error) {
	if minVersion != 0 {
		if _, err := version.ForNumber(minVersion); err != nil {
			return nil, err
		}
	}
	for tier := 0; tier < 3; tier++ {
		first, last := version.TierRange(tier)
		if first < minVersion {
			first = minVersion
		}
		totalBits := mode.HeaderBits(r, tier) + numDataBits
		for n := first; n <= last; n++ {
			v, _ := version.ForNumber(n)
			if totalBits <= v.Detail(ecLevel).DataBits() {
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: data too big for any version at level %s", qrencode.ErrInvalidInput, ecLevel)
}
