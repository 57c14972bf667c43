package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/kdp"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manuscript against KDP print requirements",
	Long: `Checks a trim size against the standard KDP catalog and a page count
against the print limits (minimum, maximum, even parity).`,
	RunE: runValidate,
}

var trimSizesCmd = &cobra.Command{
	Use:   "trim-sizes",
	Short: "List the standard KDP trim sizes",
	RunE:  runTrimSizes,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(trimSizesCmd)

	validateCmd.Flags().Float64("trim-width", 0, "Trim width in inches")
	validateCmd.Flags().Float64("trim-height", 0, "Trim height in inches")
	validateCmd.Flags().Int("pages", 0, "Page count")

	trimSizesCmd.Flags().String("interior", "", "Filter by interior type: bw, color")
}

func runValidate(cmd *cobra.Command, args []string) error {
	width := mustGetFloat64(cmd, "trim-width")
	height := mustGetFloat64(cmd, "trim-height")
	pages := mustGetInt(cmd, "pages")

	issues := 0

	if width > 0 || height > 0 {
		if ok, name := kdp.ValidateTrimSize(width, height); ok {
			fmt.Printf("Trim size: %.2f x %.2f in matches %q\n", width, height, name)
		} else {
			fmt.Printf("Trim size: %.2f x %.2f in does not match any standard KDP trim size\n", width, height)
			issues++
		}
	}

	if pages > 0 {
		if ok, msg := kdp.ValidatePageCount(pages); ok {
			fmt.Printf("Page count: %d ok\n", pages)
		} else {
			fmt.Printf("Page count: %s\n", msg)
			issues++
		}
	}

	if issues > 0 {
		return fmt.Errorf("%d validation issue(s) found", issues)
	}
	return nil
}

func runTrimSizes(cmd *cobra.Command, args []string) error {
	interior := kdp.InteriorType(mustGetString(cmd, "interior"))
	switch interior {
	case "", kdp.InteriorBW, kdp.InteriorColor:
	default:
		return fmt.Errorf("unknown interior type %q (supported: bw, color)", interior)
	}

	for _, ts := range kdp.TrimSizes(interior) {
		fmt.Printf("%-14s %5.2f x %5.2f in  %-5s max %d pages\n",
			ts.Name, ts.Width, ts.Height, ts.Interior, ts.MaxPages)
	}
	return nil
}
