package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/roboco-io/mdembed/internal/asset"
	"github.com/roboco-io/mdembed/internal/scale"
)

var (
	inspectFormat string
	inspectPretty bool
	inspectOutput string
)

// imageInfo is the report printed by the inspect command.
type imageInfo struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	MIME     string `json:"mime"`
	Bytes    int    `json:"bytes"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Mismatch string `json:"content_mismatch,omitempty"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show image facts without embedding",
	Long: `Inspect reports what mdembed would see for a file: detected format,
MIME type, byte size, and pixel dimensions. Raster dimensions come from the
image header; SVG dimensions come from the width/height attributes or the
viewBox, the same sources the scaler consults.

When the file content does not match its extension (checked via magic
bytes), the report carries a content_mismatch note.

Examples:
  mdembed inspect diagram.png
  mdembed inspect logo.svg --format text
  mdembed inspect photo.jpg -o report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "json", "output format (json, text)")
	inspectCmd.Flags().BoolVar(&inspectPretty, "pretty", true, "indent JSON output")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "output file path (default: stdout)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := asset.Load(args[0], "")
	if err != nil {
		return err
	}

	info := imageInfo{
		Path:   a.Path,
		Format: a.Format.String(),
		MIME:   a.MIME(),
		Bytes:  len(a.Data),
	}

	if a.Format.IsVector() {
		if w, ok := scale.ExtractSVGWidth(a.Text()); ok {
			info.Width = w
		}
		if h, ok := scale.ExtractSVGHeight(a.Text()); ok {
			info.Height = h
		}
	} else {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(a.Data))
		if err != nil {
			return fmt.Errorf("failed to decode image header: %w", err)
		}
		info.Width = cfg.Width
		info.Height = cfg.Height
	}

	if sniffed, err := asset.DetectFormatFromReader(bytes.NewReader(a.Data)); err == nil &&
		sniffed != asset.FormatUnknown && sniffed != a.Format {
		info.Mismatch = fmt.Sprintf("content looks like %s", sniffed)
	}

	output, err := renderInfo(info, inspectFormat)
	if err != nil {
		return err
	}

	if inspectOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	} else {
		if err := os.WriteFile(inspectOutput, []byte(output+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

func renderInfo(info imageInfo, format string) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if inspectPretty {
			data, err = json.MarshalIndent(info, "", "  ")
		} else {
			data, err = json.Marshal(info)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text":
		var sb strings.Builder
		fmt.Fprintf(&sb, "Path:   %s\n", info.Path)
		fmt.Fprintf(&sb, "Format: %s\n", info.Format)
		fmt.Fprintf(&sb, "MIME:   %s\n", info.MIME)
		fmt.Fprintf(&sb, "Size:   %d bytes\n", info.Bytes)
		if info.Width > 0 {
			fmt.Fprintf(&sb, "Width:  %dpx\n", info.Width)
		}
		if info.Height > 0 {
			fmt.Fprintf(&sb, "Height: %dpx\n", info.Height)
		}
		if info.Mismatch != "" {
			fmt.Fprintf(&sb, "Note:   %s\n", info.Mismatch)
		}
		return strings.TrimRight(sb.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
