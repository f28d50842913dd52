// Package qrcode renders encoded QR Code symbols into scaled bit matrices
// with a quiet zone, ready for an image or terminal renderer.
package qrcode

import (
	"fmt"

	qrencode "github.com/ericlevine/qrencode"
	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/qrcode/encoder"
	"github.com/ericlevine/qrencode/qrcode/version"
)

const defaultQuietZoneSize = 4

// Writer encodes QR codes.
type Writer struct{}

var _ qrencode.Writer = (*Writer)(nil)

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a QR code BitMatrix at least width
// by height pixels large. Empty contents encode as an empty numeric symbol.
func (w *Writer) Encode(contents string, width, height int, opts *qrencode.EncodeOptions) (*bitutil.BitMatrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: requested dimensions are too small: %dx%d", qrencode.ErrInvalidInput, width, height)
	}
	code, quietZone, err := w.EncodeSymbol(contents, opts)
	if err != nil {
		return nil, err
	}
	return RenderResult(code, width, height, quietZone), nil
}

// EncodeSymbol encodes contents without rendering and returns the quiet
// zone requested by opts.
func (w *Writer) EncodeSymbol(contents string, opts *qrencode.EncodeOptions) (*encoder.QRCode, int, error) {
	ecLevel := version.ECLevelL
	quietZone := defaultQuietZoneSize
	hints := &encoder.Hints{}

	if opts != nil {
		if opts.ErrorCorrection != "" {
			level, err := version.ParseECLevel(opts.ErrorCorrection)
			if err != nil {
				return nil, 0, err
			}
			ecLevel = level
		}
		if opts.Margin != nil {
			if *opts.Margin < 0 {
				return nil, 0, fmt.Errorf("%w: negative margin %d", qrencode.ErrInvalidInput, *opts.Margin)
			}
			quietZone = *opts.Margin
		}
		hints.CharacterSet = opts.CharacterSet
		hints.MinVersion = opts.QRVersion
		hints.MaskPattern = opts.QRMaskPattern
	}

	code, err := encoder.Encode(contents, ecLevel, hints)
	if err != nil {
		return nil, 0, err
	}
	return code, quietZone, nil
}

// RenderResult scales the symbol by the largest whole module size that fits
// width by height with the quiet zone around it, and centers it.
func RenderResult(code *encoder.QRCode, width, height, quietZone int) *bitutil.BitMatrix {
	input := code.Matrix
	inputWidth := input.Width()
	inputHeight := input.Height()
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := width
	if outputWidth < qrWidth {
		outputWidth = qrWidth
	}
	outputHeight := height
	if outputHeight < qrHeight {
		outputHeight = qrHeight
	}

	multiple := outputWidth / qrWidth
	if h := outputHeight / qrHeight; h < multiple {
		multiple = h
	}

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)

	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) {
				outputX := leftPadding + inputX*multiple
				output.SetRegion(outputX, outputY, multiple, multiple)
			}
		}
	}

	return output
}
