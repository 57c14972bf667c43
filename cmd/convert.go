package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert manuscripts between formats via pandoc",
	Long: `Converts one or more manuscript files (markdown, docx, html, epub, txt)
into a single EPUB, PDF, HTML, DOCX or markdown output. Multiple inputs
are concatenated in argument order. Text is normalized to plain ASCII
punctuation before conversion.

PDF output compensates for binding: with --kdp-margins the interior
margins (including the page-count-dependent gutter) are computed from
the KDP tables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("output", "", "Output file; the extension selects the format")
	convertCmd.Flags().String("title", "", "Book title")
	convertCmd.Flags().String("subtitle", "", "Book subtitle")
	convertCmd.Flags().String("author", "", "Author name")
	convertCmd.Flags().String("cover", "", "Cover image to embed (epub only)")
	convertCmd.Flags().Bool("kdp-margins", false, "Apply KDP manuscript margins (pdf only)")
	convertCmd.Flags().Int("pages", 0, "Estimated page count for the gutter table (with --kdp-margins)")
	convertCmd.Flags().Bool("page-numbers", true, "Number pages (pdf only)")
	convertCmd.Flags().String("page-number-position", string(convert.FooterCenter),
		"Page number position: footer-center, footer-left, footer-right, header-center, header-left, header-right")

	convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	numbering := convert.PageNumbering{
		Enabled:  mustGetBool(cmd, "page-numbers"),
		Position: convert.Position(mustGetString(cmd, "page-number-position")),
	}

	job := convert.Job{
		Inputs:     args,
		Output:     mustGetString(cmd, "output"),
		Title:      mustGetString(cmd, "title"),
		Subtitle:   mustGetString(cmd, "subtitle"),
		Author:     mustGetString(cmd, "author"),
		CoverImage: mustGetString(cmd, "cover"),
		KDPMargins: mustGetBool(cmd, "kdp-margins"),
		PageCount:  mustGetInt(cmd, "pages"),
	}

	if err := convert.New(numbering).Convert(cmd.Context(), job); err != nil {
		return err
	}

	fmt.Printf("Converted %d input(s) to %s\n", len(args), job.Output)
	return nil
}
