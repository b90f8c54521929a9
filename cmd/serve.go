package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhmaterial/material-api/api"
	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
	"github.com/zhmaterial/material-api/internal/services/cache"
	"github.com/zhmaterial/material-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Material Search API server with the configured settings.

The server listens for HTTP requests and serves bilingual media search,
translation, favorites and search history endpoints.

Example:
  material-api serve
  material-api serve --port 9090
  material-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	srv := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))

	// Database is optional. Without it the search and translation endpoints
	// still work, favorites and history just stay disabled.
	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if err := db.AutoMigrate(&models.Favorite{}, &models.SearchHistory{}); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}

		srv.SetDatabase(db)
	}

	if cfg.Cache.Enabled {
		srv.SetResponseCache(cache.NewMemoryCache(int64(cfg.Cache.MaxSizeMB)))
	}

	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Material Search API server on %s:%d\n", serverHost, serverPort)
	if !config.PixabayConfigured() {
		fmt.Println("Pixabay API key not configured, serving demo search results")
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
