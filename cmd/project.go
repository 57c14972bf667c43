package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage book projects",
	Long: `Tracks book projects and their generated files. Projects are stored
in a local JSON file by default, or in PostgreSQL when DATABASE_URL is set.`,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent projects",
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show project details",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search projects by title or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectSearch,
}

var projectStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show project statistics",
	RunE:  runProjectStats,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd, projectShowCmd, projectSearchCmd, projectStatsCmd, projectDeleteCmd)

	projectListCmd.Flags().Int("limit", 10, "Maximum number of projects to list")
	projectListCmd.Flags().String("type", "", "Filter by project type (ebook, cover, watermark, conversion)")
}

// openStore picks the project backend from configuration.
func openStore(cfg *config.Config) (project.Store, error) {
	if cfg.Database.URL != "" {
		return project.NewPostgresStore(cfg.Database.URL)
	}
	return project.NewFileStore(cfg.Storage.Dir)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	var typ project.Type
	if raw := cmd.Flag("type").Value.String(); raw != "" {
		typ = project.Type(raw)
		if !typ.Valid() {
			return fmt.Errorf("invalid project type: %s", raw)
		}
	}

	projects, err := store.Recent(cmd.Context(), mustGetInt(cmd, "limit"), typ)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	for _, p := range projects {
		printProjectLine(p)
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	p, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Title: %s\n", p.Title)
	fmt.Printf("ID: %s\n", p.ID)
	fmt.Printf("Type: %s\n", p.Type)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated: %s\n", p.UpdatedAt.Format(time.RFC3339))
	if len(p.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if len(p.Files) > 0 {
		fmt.Println("Files:")
		for _, f := range p.Files {
			fmt.Printf("  [%s] %s\n", f.Kind, f.Path)
		}
	}
	if len(p.Metadata) > 0 {
		fmt.Println("Metadata:")
		for k, v := range p.Metadata {
			fmt.Printf("  %s: %v\n", k, v)
		}
	}
	return nil
}

func runProjectSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	projects, err := store.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No matching projects")
		return nil
	}

	for _, p := range projects {
		printProjectLine(p)
	}
	return nil
}

func runProjectStats(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Books: %d\n", stats.TotalBooks)
	fmt.Printf("Covers: %d\n", stats.TotalCovers)
	fmt.Printf("Conversions: %d\n", stats.TotalConversions)
	fmt.Printf("Watermarks: %d\n", stats.TotalWatermarks)
	if stats.LastActivity != nil {
		fmt.Printf("Last activity: %s\n", stats.LastActivity.Format(time.RFC3339))
	}
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted project %s\n", args[0])
	return nil
}

func printProjectLine(p project.Project) {
	fmt.Printf("%s  %-12s %-10s %s\n", p.ID, p.Type, p.Status, p.Title)
}
