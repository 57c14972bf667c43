package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/cover"
	"github.com/bookpress/bookpress/internal/watermark"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark [file]",
	Short: "Stamp a diagonal text watermark on a PDF or HTML file",
	Long: `Stamps a semi-transparent rotated text watermark on every page of a
PDF, or injects a fixed overlay into an HTML file. A sidecar file
records the applied settings so repeated runs skip stamped files.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatermark,
}

var watermarkBatchCmd = &cobra.Command{
	Use:   "batch [directory]",
	Short: "Watermark every PDF and HTML file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatermarkBatch,
}

func init() {
	rootCmd.AddCommand(watermarkCmd)
	watermarkCmd.AddCommand(watermarkBatchCmd)

	for _, c := range []*cobra.Command{watermarkCmd, watermarkBatchCmd} {
		c.Flags().String("text", "", "Watermark text")
		c.Flags().Float64("font-size", watermark.DefaultFontSize, "Font size in points")
		c.Flags().Float64("opacity", watermark.DefaultOpacity, "Opacity (0..1)")
		c.Flags().Float64("angle", watermark.DefaultAngle, "Rotation in degrees, counterclockwise")
		c.Flags().String("color", "", "Watermark color as a hex value (default light gray)")
		c.MarkFlagRequired("text")
	}

	watermarkCmd.Flags().String("output", "", "Output path (default: overwrite in place)")
}

// watermarkConfigFromFlags builds a watermark.Config from the shared flags.
func watermarkConfigFromFlags(cmd *cobra.Command) (watermark.Config, error) {
	cfg := watermark.Config{
		Text:     mustGetString(cmd, "text"),
		FontSize: mustGetFloat64(cmd, "font-size"),
		Opacity:  mustGetFloat64(cmd, "opacity"),
		Angle:    mustGetFloat64(cmd, "angle"),
	}

	if hex := mustGetString(cmd, "color"); hex != "" {
		rgb, err := cover.ParseHex(hex)
		if err != nil {
			return cfg, fmt.Errorf("parsing watermark color: %w", err)
		}
		cfg.Color = watermark.RGB{R: int(rgb.R), G: int(rgb.G), B: int(rgb.B)}
	}
	return cfg, nil
}

func runWatermark(cmd *cobra.Command, args []string) error {
	cfg, err := watermarkConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	output := mustGetString(cmd, "output")
	if output == "" {
		output = input
	}

	switch strings.ToLower(filepath.Ext(input)) {
	case ".pdf":
		if err := watermark.ApplyPDF(input, output, cfg); err != nil {
			return err
		}
	case ".html", ".htm":
		if output != input {
			return fmt.Errorf("HTML watermarking is applied in place, --output is not supported")
		}
		if err := watermark.ApplyHTML(input, cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported file type %q (supported: pdf, html)", filepath.Ext(input))
	}

	fmt.Printf("Watermarked %s\n", output)
	return nil
}

func runWatermarkBatch(cmd *cobra.Command, args []string) error {
	cfg, err := watermarkConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	report, err := watermark.Batch(args[0], cfg, true)
	if err != nil {
		return err
	}

	fmt.Printf("\nProcessed: %d files\n", len(report.Processed))
	fmt.Printf("Skipped:   %d files (already watermarked)\n", len(report.Skipped))
	if len(report.Failed) > 0 {
		fmt.Printf("Failed:    %d files\n", len(report.Failed))
		for path, msg := range report.Failed {
			fmt.Printf("  %s: %s\n", path, msg)
		}
	}
	return nil
}
