package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/cover"
	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Generate and convert book covers",
}

var coverCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Render a cover from title, author and a color scheme",
	Long: `Renders a cover image. Ebook covers are 1600x2560 JPEG; print covers
are full wraps (back + spine + front) sized by the KDP geometry and
written as both JPEG and a print-ready PDF.`,
	RunE: runCoverCreate,
}

var coverConvertCmd = &cobra.Command{
	Use:   "convert [image]",
	Short: "Convert an existing image into a cover",
	Long: `Scales an existing image into an ebook cover or embeds it as the
front panel of a print cover wrap.`,
	Args: cobra.ExactArgs(1),
	RunE: runCoverConvert,
}

func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.AddCommand(coverCreateCmd)
	coverCmd.AddCommand(coverConvertCmd)

	for _, c := range []*cobra.Command{coverCreateCmd, coverConvertCmd} {
		c.Flags().String("output", "cover.jpg", "Output path (a .pdf is written alongside for print formats)")
		c.Flags().String("format", "ebook", "Cover format: ebook, paperback, hardcover")
		c.Flags().String("scheme", "", "Named color scheme (see cover schemes)")
		c.Flags().String("primary", "", "Primary hex color, overrides the scheme")
		c.Flags().String("secondary", "", "Secondary hex color, overrides the scheme")
		c.Flags().Float64("trim-width", 6.0, "Trim width in inches (print only)")
		c.Flags().Float64("trim-height", 9.0, "Trim height in inches (print only)")
		c.Flags().Int("pages", 0, "Page count (print only)")
		c.Flags().String("paper", "white", "Paper type (print only)")
		c.Flags().String("wrap", "", "Hardcover wrap style: board_only, dust_jacket")
		c.Flags().Int("dpi", kdp.PrintDPI, "Output resolution (print only)")
	}

	coverCreateCmd.Flags().String("title", "", "Book title")
	coverCreateCmd.Flags().String("subtitle", "", "Book subtitle")
	coverCreateCmd.Flags().String("author", "", "Author name")
	coverCreateCmd.Flags().String("style", "gradient", "Cover style: gradient, solid, minimalist")
	coverCreateCmd.MarkFlagRequired("title")

	coverConvertCmd.Flags().String("title", "", "Book title (used for spine text and PDF metadata)")
	coverConvertCmd.Flags().String("author", "", "Author name (used for spine text)")
}

// coverSpecFromFlags builds a cover.Spec from the shared cover flags.
func coverSpecFromFlags(cmd *cobra.Command) (cover.Spec, error) {
	format := layout.Format(mustGetString(cmd, "format"))
	binding := kdp.BindingPaperback
	if format == layout.FormatHardcover {
		binding = kdp.BindingHardcover
	}

	spec := cover.Spec{
		Title:      mustGetString(cmd, "title"),
		Author:     mustGetString(cmd, "author"),
		Format:     format,
		Primary:    mustGetString(cmd, "primary"),
		Secondary:  mustGetString(cmd, "secondary"),
		TrimWidth:  mustGetFloat64(cmd, "trim-width"),
		TrimHeight: mustGetFloat64(cmd, "trim-height"),
		PageCount:  mustGetInt(cmd, "pages"),
		Paper:      kdp.PaperType(mustGetString(cmd, "paper")),
		Binding:    binding,
		WrapStyle:  kdp.HardcoverWrapStyle(mustGetString(cmd, "wrap")),
		DPI:        mustGetInt(cmd, "dpi"),
	}

	if name := mustGetString(cmd, "scheme"); name != "" && spec.Primary == "" {
		scheme, ok := cover.SchemeByName(name)
		if !ok {
			names := make([]string, len(cover.Schemes))
			for i, s := range cover.Schemes {
				names[i] = s.Name
			}
			return spec, fmt.Errorf("unknown color scheme %q (available: %s)", name, strings.Join(names, ", "))
		}
		spec.Primary = scheme.Primary
		spec.Secondary = scheme.Secondary
	}
	return spec, nil
}

// writeCoverOutputs writes the JPEG and, for print formats, the PDF.
func writeCoverOutputs(img *image.RGBA, dims kdp.CoverDimensions, spec cover.Spec, output string) error {
	jpg, err := cover.EncodeJPEG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, jpg, 0o644); err != nil {
		return fmt.Errorf("writing cover: %w", err)
	}
	fmt.Printf("Cover written to %s (%d x %d px)\n", output, img.Bounds().Dx(), img.Bounds().Dy())

	if spec.Format == layout.FormatEbook {
		return nil
	}

	pdfPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".pdf"
	if err := cover.WritePDF(img, dims, spec.Title, pdfPath); err != nil {
		return fmt.Errorf("writing cover PDF: %w", err)
	}
	fmt.Printf("Print PDF written to %s (%.3f x %.3f in)\n", pdfPath, dims.WidthInches, dims.HeightInches)
	return nil
}

func runCoverCreate(cmd *cobra.Command, args []string) error {
	spec, err := coverSpecFromFlags(cmd)
	if err != nil {
		return err
	}
	spec.Subtitle = mustGetString(cmd, "subtitle")
	spec.Style = cover.Style(mustGetString(cmd, "style"))

	output := mustGetString(cmd, "output")

	if spec.Format == layout.FormatEbook {
		img, err := cover.GenerateEbook(spec)
		if err != nil {
			return err
		}
		return writeCoverOutputs(img, kdp.CoverDimensions{}, spec, output)
	}

	img, dims, err := cover.GeneratePrint(spec)
	if err != nil {
		return err
	}
	return writeCoverOutputs(img, dims, spec, output)
}

func runCoverConvert(cmd *cobra.Command, args []string) error {
	src, err := cover.LoadImage(args[0])
	if err != nil {
		return fmt.Errorf("loading source image: %w", err)
	}

	spec, err := coverSpecFromFlags(cmd)
	if err != nil {
		return err
	}
	output := mustGetString(cmd, "output")

	if spec.Format == layout.FormatEbook {
		return writeCoverOutputs(cover.ConvertToEbook(src), kdp.CoverDimensions{}, spec, output)
	}

	img, dims, err := cover.ConvertToPrint(src, spec)
	if err != nil {
		return err
	}
	return writeCoverOutputs(img, dims, spec, output)
}
