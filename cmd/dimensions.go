package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Calculate the full cover wrap for a print book",
	Long: `Calculates the complete cover wrap (back panel + spine + front panel,
plus bleed, plus the hardcover case or dust jacket extension) in both
inches and pixels at the chosen DPI.`,
	RunE: runDimensions,
}

func init() {
	rootCmd.AddCommand(dimensionsCmd)

	dimensionsCmd.Flags().Float64("trim-width", 6.0, "Trim width in inches")
	dimensionsCmd.Flags().Float64("trim-height", 9.0, "Trim height in inches")
	dimensionsCmd.Flags().Int("pages", 0, "Page count (24-828)")
	dimensionsCmd.Flags().String("paper", "white", "Paper type: white, cream, color, standard_color")
	dimensionsCmd.Flags().String("binding", "paperback", "Binding: paperback, hardcover")
	dimensionsCmd.Flags().String("wrap", "", "Hardcover wrap style: board_only, dust_jacket")
	dimensionsCmd.Flags().Int("dpi", kdp.PrintDPI, "Output resolution in dots per inch")

	dimensionsCmd.MarkFlagRequired("pages")
}

func runDimensions(cmd *cobra.Command, args []string) error {
	dims, err := kdp.CalculateCoverDimensions(
		mustGetFloat64(cmd, "trim-width"),
		mustGetFloat64(cmd, "trim-height"),
		mustGetInt(cmd, "pages"),
		kdp.PaperType(mustGetString(cmd, "paper")),
		kdp.BindingType(mustGetString(cmd, "binding")),
		kdp.HardcoverWrapStyle(mustGetString(cmd, "wrap")),
		mustGetInt(cmd, "dpi"),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Cover wrap: %.3f x %.3f in (%d x %d px @ %d DPI)\n",
		dims.WidthInches, dims.HeightInches, dims.WidthPx, dims.HeightPx, dims.DPI)
	fmt.Printf("  Spine: %.3f in (%d px)\n", kdp.Round3(dims.SpineWidthInches), dims.SpineWidthPx)
	fmt.Printf("  Panel: %.3f in (%d px)\n", dims.PanelWidthInches(), dims.PanelWidthPx())
	fmt.Printf("  Bleed: %.3f in\n", dims.BleedInches)
	if dims.FlapWidthInches > 0 {
		fmt.Printf("  Flaps: %.3f in (%d px) each\n", dims.FlapWidthInches, dims.FlapWidthPx)
	}

	regions := layout.Regions(dims)
	fmt.Printf("\nPanel regions (px):\n")
	if dims.FlapWidthPx > 0 {
		fmt.Printf("  Back flap:  %v\n", regions.BackFlap)
	}
	fmt.Printf("  Back:       %v\n", regions.Back)
	fmt.Printf("  Spine:      %v\n", regions.Spine)
	fmt.Printf("  Front:      %v\n", regions.Front)
	if dims.FlapWidthPx > 0 {
		fmt.Printf("  Front flap: %v\n", regions.FrontFlap)
	}
	return nil
}
