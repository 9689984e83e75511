// Package cli implements the mdembed command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboco-io/mdembed/internal/asset"
	"github.com/roboco-io/mdembed/internal/config"
	"github.com/roboco-io/mdembed/internal/embed"
)

var version = "dev"

var (
	embedAlt      string
	embedMaxWidth int
	embedWrap     int
	embedOutput   string
	embedVerbose  bool
	embedQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "mdembed <file>",
	Short: "Embed an image into Markdown as a data URI",
	Long: `mdembed converts a local image file (PNG, JPEG, GIF, or SVG) into a
Markdown image line whose source is an inline data URI.

Raster images are base64-encoded; SVG markup is URL-escaped. With
--max-width the image is downscaled preserving aspect ratio. Images are
never upscaled: when the target width exceeds the intrinsic width the
original payload is kept and a warning goes to stderr. --wrap splits the
base64 payload into fixed-width lines.

Examples:
  mdembed diagram.png
  mdembed diagram.png --max-width 400
  mdembed logo.svg --alt "Company logo" --max-width 200
  mdembed photo.jpg --wrap
  mdembed photo.jpg --wrap=120 -o photo.md`,
	Args:          cobra.ExactArgs(1),
	PreRunE:       validateEmbedFlags,
	RunE:          runEmbed,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&embedAlt, "alt", "", "alt text (default: filename without extension)")
	rootCmd.Flags().IntVar(&embedMaxWidth, "max-width", 0, "scale image to max width in pixels (preserves aspect ratio, no upscaling)")
	rootCmd.Flags().IntVar(&embedWrap, "wrap", 0, "wrap base64 at WIDTH chars (default 80 when flag used, min 40)")
	rootCmd.Flags().Lookup("wrap").NoOptDefVal = "80"
	rootCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "output file path (default: stdout)")
	rootCmd.Flags().BoolVarP(&embedVerbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&embedQuiet, "quiet", "q", false, "quiet mode")
}

// validateEmbedFlags rejects bad --wrap values before any file I/O.
func validateEmbedFlags(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("wrap") && embedWrap < 40 {
		return fmt.Errorf("--wrap WIDTH must be at least 40, got %d", embedWrap)
	}
	return nil
}

func runEmbed(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	loader, err := config.NewLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	// Flags win; config fills in what the command line omits.
	maxWidth := embedMaxWidth
	if !cmd.Flags().Changed("max-width") {
		maxWidth = cfg.Defaults.MaxWidth
	}
	wrapWidth := embedWrap
	if !cmd.Flags().Changed("wrap") {
		wrapWidth = cfg.Defaults.WrapWidth
	}

	var warn io.Writer = cmd.ErrOrStderr()
	if !cfg.Warnings {
		warn = io.Discard
	}

	if embedVerbose && !embedQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Input file: %s\n", inputPath)
		fmt.Fprintf(cmd.ErrOrStderr(), "Format: %s\n", asset.DetectFormat(inputPath))
	}

	markdown, err := embed.File(inputPath, embed.Options{
		Alt:       embedAlt,
		MaxWidth:  maxWidth,
		WrapWidth: wrapWidth,
		Warn:      warn,
	})
	if err != nil {
		return err
	}

	if embedOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
	} else {
		if err := os.WriteFile(embedOutput, []byte(markdown+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if !embedQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", embedOutput)
		}
	}

	return nil
}

// Execute runs the root command, printing failures to stderr and exiting
// non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}
