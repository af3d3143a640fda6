// Package qrgen wraps QR code and barcode generation. The heavy lifting
// is library work; this package only validates parameters and normalizes
// output to PNG bytes.
package qrgen

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	qrcode "github.com/skip2/go-qrcode"
)

// ErrBadInput is returned for empty content or out-of-range dimensions.
var ErrBadInput = errors.New("bad input")

const (
	minSize = 64
	maxSize = 2048
)

// RecoveryLevel selects QR error correction strength.
type RecoveryLevel string

const (
	Low     RecoveryLevel = "low"     // ~7% recovery
	Medium  RecoveryLevel = "medium"  // ~15% recovery
	High    RecoveryLevel = "high"    // ~25% recovery
	Highest RecoveryLevel = "highest" // ~30% recovery
)

// QR encodes content as a size×size QR code PNG.
func QR(content string, size int, level RecoveryLevel) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("empty content: %w", ErrBadInput)
	}
	if size < minSize || size > maxSize {
		return nil, fmt.Errorf("size %d outside [%d,%d]: %w", size, minSize, maxSize, ErrBadInput)
	}

	rl, err := recoveryLevel(level)
	if err != nil {
		return nil, err
	}

	data, err := qrcode.Encode(content, rl, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return data, nil
}

func recoveryLevel(level RecoveryLevel) (qrcode.RecoveryLevel, error) {
	switch level {
	case Low:
		return qrcode.Low, nil
	case Medium, "":
		return qrcode.Medium, nil
	case High:
		return qrcode.High, nil
	case Highest:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("recovery level %q: %w", level, ErrBadInput)
	}
}

// BarcodeFormat selects the 1D symbology.
type BarcodeFormat string

const (
	Code128 BarcodeFormat = "code128"
	EAN     BarcodeFormat = "ean" // EAN-8 or EAN-13 depending on content length
)

// Barcode encodes content as a width×height barcode PNG.
func Barcode(content string, format BarcodeFormat, width, height int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("empty content: %w", ErrBadInput)
	}
	if width < minSize || width > maxSize || height < 16 || height > maxSize {
		return nil, fmt.Errorf("dimensions %dx%d out of range: %w", width, height, ErrBadInput)
	}

	var (
		bc  barcode.Barcode
		err error
	)
	switch format {
	case Code128, "":
		bc, err = code128.Encode(content)
	case EAN:
		bc, err = ean.Encode(content)
	default:
		return nil, fmt.Errorf("barcode format %q: %w", format, ErrBadInput)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s barcode: %w", format, err)
	}

	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("scaling barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding barcode png: %w", err)
	}
	return buf.Bytes(), nil
}
