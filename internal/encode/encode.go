// Package encode builds data URIs and their encoded payloads.
package encode

import (
	"fmt"
	"strings"
)

// WrapBase64 splits encoded into lines of width characters joined by single
// newlines. The final line may be shorter. Width is validated by the caller;
// an empty input yields an empty string.
func WrapBase64(encoded string, width int) string {
	if encoded == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(encoded) + len(encoded)/width + 1)
	for i := 0; i < len(encoded); i += width {
		if i > 0 {
			sb.WriteByte('\n')
		}
		end := i + width
		if end > len(encoded) {
			end = len(encoded)
		}
		sb.WriteString(encoded[i:end])
	}
	return sb.String()
}

// PercentEncode escapes markup for use in a non-base64 data URI. Unreserved
// characters and '/' pass through, every other byte becomes %XX.
func PercentEncode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~' || c == '/'
}

// Base64DataURI composes data:<mime>;base64,<payload>.
func Base64DataURI(mime, payload string) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, payload)
}

// TextDataURI composes data:<mime>,<payload> for URL-escaped content.
func TextDataURI(mime, payload string) string {
	return fmt.Sprintf("data:%s,%s", mime, payload)
}

// MarkdownImage renders the final Markdown image line.
func MarkdownImage(alt, dataURI string) string {
	return fmt.Sprintf("![%s](%s)", alt, dataURI)
}
