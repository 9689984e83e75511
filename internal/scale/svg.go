package scale

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// SVG attributes are rewritten with pattern matching, not a DOM. This keeps
// the first-occurrence, root-tag-only semantics explicit and avoids an XML
// dependency for what is a two-attribute edit.
var (
	widthAttrPattern   = regexp.MustCompile(`width=["'](\d+(?:\.\d+)?)`)
	widthValuePattern  = regexp.MustCompile(`width=["']([\d.]+)["']`)
	heightValuePattern = regexp.MustCompile(`height=["']([\d.]+)["']`)
	viewBoxPattern     = regexp.MustCompile(`viewBox=["']([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)["']`)

	svgOpenTagPattern  = regexp.MustCompile(`<svg[^>]*>`)
	stripWidthPattern  = regexp.MustCompile(`\s+width=["'][\d.]+["']`)
	stripHeightPattern = regexp.MustCompile(`\s+height=["'][\d.]+["']`)
)

// ExtractSVGWidth returns the intrinsic pixel width of SVG markup. An
// explicit width attribute wins over the viewBox; decimal values are
// truncated. ok is false when neither source is present.
func ExtractSVGWidth(markup string) (width int, ok bool) {
	if m := widthAttrPattern.FindStringSubmatch(markup); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(w), true
		}
	}
	if m := viewBoxPattern.FindStringSubmatch(markup); m != nil {
		if w, err := strconv.ParseFloat(m[3], 64); err == nil {
			return int(w), true
		}
	}
	return 0, false
}

// ExtractSVGHeight returns the intrinsic pixel height, mirroring
// ExtractSVGWidth: explicit height attribute first, then the viewBox.
func ExtractSVGHeight(markup string) (height int, ok bool) {
	if m := heightValuePattern.FindStringSubmatch(markup); m != nil {
		if h, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(h), true
		}
	}
	if m := viewBoxPattern.FindStringSubmatch(markup); m != nil {
		if h, err := strconv.ParseFloat(m[4], 64); err == nil {
			return int(h), true
		}
	}
	return 0, false
}

// SVG scales vector markup by rewriting the width and height attributes of
// the root <svg> tag.
type SVG struct {
	Warn io.Writer
}

// Scale rewrites the root tag to maxWidth, deriving the height from the
// viewBox when present, else from explicit width/height attributes, else
// assuming a square drawing. When the markup is already narrower than
// maxWidth it is returned unchanged with UpscaleRefused set.
func (s *SVG) Scale(payload []byte, maxWidth int) (Result, error) {
	markup := string(payload)

	if orig, ok := ExtractSVGWidth(markup); ok && orig > 0 && maxWidth > orig {
		if s.Warn != nil {
			fmt.Fprintf(s.Warn, "Warning: SVG is %dpx wide but --max-width is %dpx. Keeping original size to avoid upscaling.\n", orig, maxWidth)
		}
		return Result{Payload: payload, UpscaleRefused: true}, nil
	}

	targetHeight := maxWidth // square fallback when no aspect source exists
	if m := viewBoxPattern.FindStringSubmatch(markup); m != nil {
		vbWidth, _ := strconv.ParseFloat(m[3], 64)
		vbHeight, _ := strconv.ParseFloat(m[4], 64)
		if vbWidth > 0 {
			targetHeight = int(float64(maxWidth) * vbHeight / vbWidth)
		}
	} else {
		wm := widthValuePattern.FindStringSubmatch(markup)
		hm := heightValuePattern.FindStringSubmatch(markup)
		if wm != nil && hm != nil {
			w, _ := strconv.ParseFloat(wm[1], 64)
			h, _ := strconv.ParseFloat(hm[1], 64)
			if w > 0 {
				targetHeight = int(float64(maxWidth) * h / w)
			}
		}
	}

	return Result{Payload: []byte(injectDimensions(markup, maxWidth, targetHeight))}, nil
}

// injectDimensions strips any width/height attributes from the first
// <svg ...> opening tag and appends the new ones before its closing '>'.
// Everything outside that tag passes through byte-for-byte.
func injectDimensions(markup string, width, height int) string {
	loc := svgOpenTagPattern.FindStringIndex(markup)
	if loc == nil {
		return markup
	}

	tag := markup[loc[0]:loc[1]]
	tag = stripWidthPattern.ReplaceAllString(tag, "")
	tag = stripHeightPattern.ReplaceAllString(tag, "")
	tag = fmt.Sprintf(`%s width="%d" height="%d">`, strings.TrimSuffix(tag, ">"), width, height)

	return markup[:loc[0]] + tag + markup[loc[1]:]
}
