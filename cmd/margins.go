package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/kdp"
)

var marginsCmd = &cobra.Command{
	Use:   "margins",
	Short: "Calculate KDP-compliant manuscript margins",
	Long: `Calculates interior page margins for a manuscript. The gutter
(inside margin) grows with the page count per the KDP binding table;
top, bottom and outside margins default to the KDP recommendation.`,
	RunE: runMargins,
}

func init() {
	rootCmd.AddCommand(marginsCmd)

	marginsCmd.Flags().Int("pages", 0, "Page count (24-828)")
	marginsCmd.Flags().Float64("top", kdp.DefaultMargin, "Top margin in inches")
	marginsCmd.Flags().Float64("bottom", kdp.DefaultMargin, "Bottom margin in inches")
	marginsCmd.Flags().Float64("outside", kdp.DefaultMargin, "Outside margin in inches")
	marginsCmd.Flags().Float64("gutter", -1, "Gutter override in inches (negative = use page-count table)")

	marginsCmd.MarkFlagRequired("pages")
}

func runMargins(cmd *cobra.Command, args []string) error {
	margins, err := kdp.CalculateManuscriptMargins(
		mustGetInt(cmd, "pages"),
		mustGetFloat64(cmd, "top"),
		mustGetFloat64(cmd, "bottom"),
		mustGetFloat64(cmd, "outside"),
		mustGetFloat64(cmd, "gutter"),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Top:     %.3f in\n", margins.Top)
	fmt.Printf("Bottom:  %.3f in\n", margins.Bottom)
	fmt.Printf("Outside: %.3f in\n", margins.Outside)
	fmt.Printf("Gutter:  %.3f in\n", margins.Gutter)
	fmt.Printf("Bleed:   %.3f in\n", margins.Bleed)
	return nil
}
