package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

// UnsupportedFormatError reports a file extension outside the supported set.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported format: %s. Supported: %s", e.Ext, strings.Join(Extensions(), ", "))
}

// ImageAsset is an immutable image input read from disk.
type ImageAsset struct {
	Path   string
	Format Format
	Alt    string
	Data   []byte
}

// Load reads the file at path and classifies it by extension. alt overrides
// the default alt text, which is the filename without its extension.
func Load(path, alt string) (*ImageAsset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, &UnsupportedFormatError{Ext: strings.ToLower(filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if alt == "" {
		base := filepath.Base(path)
		alt = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &ImageAsset{
		Path:   path,
		Format: format,
		Alt:    alt,
		Data:   data,
	}, nil
}

// MIME returns the MIME type of the asset.
func (a *ImageAsset) MIME() string {
	return a.Format.MIME()
}

// Text returns the asset content as a string. Only meaningful for SVG.
func (a *ImageAsset) Text() string {
	return string(a.Data)
}
