package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookpress",
	Short: "A CLI toolkit for producing print-ready books",
	Long: `BookPress is a CLI toolkit for independent publishing. It computes
KDP-compliant cover geometry (spine width, full cover wraps, manuscript
margins), renders ebook and print covers, converts manuscripts between
formats via pandoc, watermarks review copies, and uses AI models
(OpenAI, Gemini) for titles, descriptions and keywords.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
