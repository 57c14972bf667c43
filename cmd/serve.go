package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Starts the HTTP API for spine and cover calculations, trim size
lookups, cover generation and project management.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (default from BOOKPRESS_PORT or 8080)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from BOOKPRESS_HOST, all interfaces when empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	port := mustGetInt(cmd, "port")
	if port == 0 {
		port = cfg.Server.Port
	}
	host := mustGetString(cmd, "host")
	if host == "" {
		host = cfg.Server.Host
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open project store: %w", err)
	}

	server := web.NewServer(cfg, port, host, store)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	return server.Start()
}
