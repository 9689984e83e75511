// Package embed turns a local image file into a Markdown data-URI line.
package embed

import (
	"encoding/base64"
	"io"

	"github.com/roboco-io/mdembed/internal/asset"
	"github.com/roboco-io/mdembed/internal/encode"
	"github.com/roboco-io/mdembed/internal/scale"
)

// Options controls a single embed invocation.
type Options struct {
	Alt       string    // alt text; empty means filename without extension
	MaxWidth  int       // target max width in pixels; 0 disables scaling
	WrapWidth int       // base64 line width; 0 disables wrapping
	Warn      io.Writer // diagnostic stream for upscale warnings
}

// File reads the image at path and returns the Markdown image line.
//
// SVG content is URL-escaped into data:image/svg+xml,<payload>; raster
// content is base64-encoded into data:<mime>;base64,<payload>, optionally
// wrapped. Scaling never enlarges: a refused upscale keeps the original
// payload and writes one warning to opts.Warn.
func File(path string, opts Options) (string, error) {
	a, err := asset.Load(path, opts.Alt)
	if err != nil {
		return "", err
	}

	payload := a.Data
	if opts.MaxWidth > 0 {
		res, err := scale.ForFormat(a.Format, opts.Warn).Scale(payload, opts.MaxWidth)
		if err != nil {
			return "", err
		}
		payload = res.Payload
	}

	var dataURI string
	if a.Format.IsVector() {
		dataURI = encode.TextDataURI(a.MIME(), encode.PercentEncode(string(payload)))
	} else {
		encoded := base64.StdEncoding.EncodeToString(payload)
		if opts.WrapWidth > 0 {
			encoded = encode.WrapBase64(encoded, opts.WrapWidth)
		}
		dataURI = encode.Base64DataURI(a.MIME(), encoded)
	}

	return encode.MarkdownImage(a.Alt, dataURI), nil
}
