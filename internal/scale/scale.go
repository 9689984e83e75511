// Package scale downsizes image payloads while refusing to upscale.
package scale

import (
	"io"

	"github.com/roboco-io/mdembed/internal/asset"
)

// Result is the outcome of a scaling attempt. When UpscaleRefused is true
// the payload is byte-identical to the input.
type Result struct {
	Payload        []byte
	UpscaleRefused bool
}

// Scaler downsizes an image payload to a maximum pixel width, preserving
// aspect ratio. Implementations write a warning to their diagnostic writer
// when they refuse to upscale.
type Scaler interface {
	Scale(payload []byte, maxWidth int) (Result, error)
}

// ForFormat returns the scaler for the given asset format. Warnings about
// refused upscaling are written to warn; a nil warn discards them.
func ForFormat(f asset.Format, warn io.Writer) Scaler {
	if f.IsVector() {
		return &SVG{Warn: warn}
	}
	return &Raster{Format: f, Warn: warn}
}
