// Package asset loads image files and classifies their format.
package asset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported image format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatSVG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatSVG:
		return "svg"
	default:
		return "unknown"
	}
}

// MIME returns the MIME type used in the data URI prefix.
func (f Format) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return ""
	}
}

// IsVector reports whether the format is scaled by rewriting markup
// attributes rather than resampling pixels.
func (f Format) IsVector() bool {
	return f == FormatSVG
}

// Extensions lists the supported file extensions in display order.
func Extensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}
}

// DetectFormat detects the image format from the file extension.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".gif":
		return FormatGIF
	case ".svg":
		return FormatSVG
	default:
		return FormatUnknown
	}
}

// DetectFormatFromReader detects the format by reading magic bytes.
// Extension dispatch stays authoritative for embedding; this exists for
// callers that want to cross-check what a file actually contains.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 4 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}
	buf = buf[:n]

	// PNG signature
	if len(buf) >= 8 && string(buf[:8]) == "\x89PNG\r\n\x1a\n" {
		return FormatPNG, nil
	}

	// JPEG SOI marker
	if buf[0] == 0xFF && buf[1] == 0xD8 && buf[2] == 0xFF {
		return FormatJPEG, nil
	}

	// GIF87a / GIF89a
	if string(buf[:4]) == "GIF8" {
		return FormatGIF, nil
	}

	// SVG is plain text; look for an XML declaration or the root tag
	if string(buf[:4]) == "<svg" || string(buf[:5]) == "<?xml" {
		return FormatSVG, nil
	}

	return FormatUnknown, nil
}
