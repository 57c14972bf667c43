package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
)

var spineCmd = &cobra.Command{
	Use:   "spine",
	Short: "Calculate the spine width for a print book",
	Long: `Calculates the KDP spine width from the page count and paper type.
Hardcover bindings add the case thickness on top of the page block.`,
	RunE: runSpine,
}

func init() {
	rootCmd.AddCommand(spineCmd)

	spineCmd.Flags().Int("pages", 0, "Page count (24-828)")
	spineCmd.Flags().String("paper", "white", "Paper type: white, cream, color, standard_color")
	spineCmd.Flags().String("binding", "paperback", "Binding: paperback, hardcover")

	spineCmd.MarkFlagRequired("pages")
}

func runSpine(cmd *cobra.Command, args []string) error {
	pages := mustGetInt(cmd, "pages")
	paper := kdp.PaperType(mustGetString(cmd, "paper"))
	binding := kdp.BindingType(mustGetString(cmd, "binding"))

	width, err := kdp.CalculateSpineWidth(pages, paper, binding)
	if err != nil {
		return err
	}

	fmt.Printf("Spine width: %.3f in (%.2f mm)\n", kdp.Round3(width), width*25.4)
	if !layout.SpineTextEligible(pages) {
		fmt.Printf("Note: spine text requires at least %d pages\n", layout.MinSpineTextPages)
	}
	return nil
}
