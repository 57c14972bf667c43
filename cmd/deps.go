package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/convert"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check external tool dependencies",
	Long: `Checks for the external tools used by document conversion: pandoc,
a PDF engine and the EPUB/MOBI helpers. Optional tools are reported
but do not block the commands that work without them.`,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	missing := 0
	for _, dep := range convert.CheckDependencies() {
		status := "ok"
		if !dep.Found {
			status = "missing"
			if dep.Required {
				missing++
			}
		}

		fmt.Printf("%-12s %-8s %s\n", dep.Name, status, dep.Purpose)
		if dep.Found && dep.Path != "" {
			fmt.Printf("%-12s %-8s %s\n", "", "", dep.Path)
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d required dependency(ies) missing", missing)
	}
	return nil
}
