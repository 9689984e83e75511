package scale

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/roboco-io/mdembed/internal/asset"
)

// Raster scales pixel images by decoding, resampling with a Lanczos filter,
// and re-encoding in the input format.
type Raster struct {
	Format asset.Format
	Warn   io.Writer
}

// Scale resamples the payload down to maxWidth. A payload narrower than
// maxWidth is returned unchanged with UpscaleRefused set; a payload exactly
// maxWidth wide is returned unchanged to keep byte-for-byte fidelity.
func (r *Raster) Scale(payload []byte, maxWidth int) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode image: %w", err)
	}

	width := img.Bounds().Dx()
	if width < maxWidth {
		if r.Warn != nil {
			fmt.Fprintf(r.Warn, "Warning: Image is %dpx wide but --max-width is %dpx. Keeping original size to avoid upscaling.\n", width, maxWidth)
		}
		return Result{Payload: payload, UpscaleRefused: true}, nil
	}
	if width == maxWidth {
		return Result{Payload: payload}, nil
	}

	height := img.Bounds().Dy()
	targetHeight := int(float64(maxWidth) * float64(height) / float64(width))

	resized := imaging.Resize(img, maxWidth, targetHeight, imaging.Lanczos)
	encoded, err := encodeRaster(resized, r.Format)
	if err != nil {
		return Result{}, err
	}
	return Result{Payload: encoded}, nil
}

// encodeRaster re-encodes the image in the given format. The format table
// is closed upstream by extension dispatch, so the error branch is a guard
// against the table growing without this mapping.
func encodeRaster(img image.Image, format asset.Format) ([]byte, error) {
	var f imaging.Format
	switch format {
	case asset.FormatPNG:
		f = imaging.PNG
	case asset.FormatJPEG:
		f = imaging.JPEG
	case asset.FormatGIF:
		f = imaging.GIF
	default:
		return nil, fmt.Errorf("no encoder for format: %s", format)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
