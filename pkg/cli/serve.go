package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/internal/config"
	"github.com/getbookd/bookd/internal/storage"
	"github.com/getbookd/bookd/pkg/api"
	"github.com/getbookd/bookd/pkg/book"
	"github.com/getbookd/bookd/pkg/logging"
)

var (
	servePort      int
	serveLogLevel  string
	serveLogFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the book catalog server",
	Long: `Start the book catalog server.

By default the server listens on port 3000. Configure it with flags or
environment variables (BOOKD_PORT, BOOKD_LOG_LEVEL, BOOKD_LOG_FORMAT);
flags win over the environment.`,
	Example: `  # Start with defaults
  bookd serve

  # Start on a custom port with JSON logs
  bookd serve --port 8080 --log-format json`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	cfg := config.FromEnv()
	serveCmd.Flags().IntVar(&servePort, "port", cfg.Port, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", cfg.LogFormat, "Log format: text, json")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.New(logging.Config{
		Level:  serveLogLevel,
		Format: serveLogFormat,
	})

	store := storage.NewInMemoryBookStore()
	store.Seed(book.SeedBooks()...)

	a := api.New(servePort,
		api.WithStore(store),
		api.WithLogger(log),
		api.WithVersion(Version),
	)
	if err := a.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	fmt.Printf("bookd listening on http://localhost:%d (%d books seeded)\n", servePort, store.Count())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutting down...")

	if err := a.Stop(); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
