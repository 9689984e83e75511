package embed

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return buf.Bytes()
}

// splitMarkdownImage pulls alt text and data URI out of ![alt](uri).
func splitMarkdownImage(t *testing.T, line string) (alt, uri string) {
	t.Helper()
	if !strings.HasPrefix(line, "![") || !strings.HasSuffix(line, ")") {
		t.Fatalf("not a markdown image line: %q", line)
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(line, "!["), ")")
	sep := strings.Index(rest, "](")
	if sep < 0 {
		t.Fatalf("missing alt/uri separator: %q", line)
	}
	return rest[:sep], rest[sep+2:]
}

func TestFile_PNGBasic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.png")
	original := writePNG(t, path, 10, 10)

	line, err := File(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alt, uri := splitMarkdownImage(t, line)
	if alt != "sample" {
		t.Errorf("expected alt 'sample', got %q", alt)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected data URI prefix: %q", uri)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("unscaled embed must carry the original bytes")
	}
}

func TestFile_UpscaleRefusedWarns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.png")
	original := writePNG(t, path, 10, 10)

	var warn bytes.Buffer
	line, err := File(path, Options{MaxWidth: 100, Warn: &warn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := warn.String()
	if !strings.Contains(msg, "10px") || !strings.Contains(msg, "100px") {
		t.Errorf("warning should name both widths, got: %q", msg)
	}

	_, uri := splitMarkdownImage(t, line)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("refused upscale must embed the original bytes")
	}
}

func TestFile_Downscale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.png")
	writePNG(t, path, 200, 100)

	line, err := File(path, Options{MaxWidth: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, uri := splitMarkdownImage(t, line)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode embedded payload: %v", err)
	}
	if format != "png" {
		t.Errorf("expected png payload, got %s", format)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("expected 100x50, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestFile_Wrapped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.png")
	original := writePNG(t, path, 64, 64)

	line, err := File(path, Options{WrapWidth: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, uri := splitMarkdownImage(t, line)
	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	if !strings.Contains(payload, "\n") {
		t.Fatal("expected wrapped payload to contain newlines")
	}
	for i, l := range strings.Split(payload, "\n") {
		if len(l) > 40 {
			t.Errorf("line %d longer than wrap width: %d", i, len(l))
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload, "\n", ""))
	if err != nil {
		t.Fatalf("joined payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("wrapping must not alter the payload content")
	}
}

func TestFile_SVG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.svg")
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100"><rect/></svg>`
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	line, err := File(path, Options{MaxWidth: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alt, uri := splitMarkdownImage(t, line)
	if alt != "logo" {
		t.Errorf("expected alt 'logo', got %q", alt)
	}
	if !strings.HasPrefix(uri, "data:image/svg+xml,") {
		t.Fatalf("unexpected data URI prefix: %q", uri)
	}
	if strings.Contains(uri, ";base64") {
		t.Error("svg data URI must not carry a base64 marker")
	}

	payload := strings.TrimPrefix(uri, "data:image/svg+xml,")
	if !strings.Contains(payload, "width%3D%22100%22") || !strings.Contains(payload, "height%3D%2250%22") {
		t.Errorf("expected percent-encoded injected dimensions, got: %q", payload)
	}
	if strings.ContainsAny(payload, "<>\" ") {
		t.Errorf("payload contains unescaped markup characters: %q", payload)
	}
}

func TestFile_SVGUnscaled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.svg")
	markup := `<svg width="40" height="40"><circle/></svg>`
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	// No max width: markup goes through encode-only, attributes untouched.
	line, err := File(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, uri := splitMarkdownImage(t, line)
	if !strings.Contains(uri, "width%3D%2240%22") {
		t.Errorf("original width attribute should survive, got: %q", uri)
	}
}

func TestFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(dir, "missing.png"), Options{})
		if err == nil || !strings.Contains(err.Error(), "File not found") {
			t.Errorf("expected file-not-found error, got: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "image.bmp")
		if err := os.WriteFile(path, []byte("BM"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		_, err := File(path, Options{})
		if err == nil || !strings.Contains(err.Error(), "Unsupported format") {
			t.Errorf("expected unsupported-format error, got: %v", err)
		}
	})
}
