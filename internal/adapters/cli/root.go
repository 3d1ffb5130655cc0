// Package cli implements the invoicegen command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"invoicegen/internal/app"
	"invoicegen/internal/config"
	"invoicegen/internal/core"
	"invoicegen/internal/logger"
	"invoicegen/internal/store"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "Invoicegen CLI - manage invoices, receipts, and clients",
	Long: `Invoicegen CLI works against the local document database: list and
inspect invoices, receipts, and clients, export documents to PDF, and
print dashboard statistics.

The database location is taken from DATABASE_PATH (default: invoicegen.db).`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Invoicegen CLI!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		// Bad LOG_* values fall back to the defaults rather than aborting.
		fmt.Fprintf(os.Stderr, "Invalid logging configuration (%v), using defaults\n", err)
		_ = logger.Setup(logger.DefaultConfig())
	}

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

// stderrNotifier prints service notifications for interactive use.
type stderrNotifier struct{}

func (stderrNotifier) Notify(sev core.Severity, msg string) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", strings.ToUpper(string(sev)), msg)
}

// newService opens the database and wires the application service. The
// returned cleanup closes the store.
func newService() (app.ApplicationService, func(), error) {
	cfg := config.Load()
	repo, err := store.OpenBolt(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", cfg.DatabasePath, err)
	}
	svc := app.NewService(repo, stderrNotifier{})
	return svc, func() { _ = repo.Close() }, nil
}
