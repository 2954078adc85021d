// Package cli holds the cleaning_tracker commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/cleaning_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/cleaning_tracker/internal/platform/config"
	"github.com/SscSPs/cleaning_tracker/internal/platform/logging"
	"github.com/SscSPs/cleaning_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/cleaning_tracker/internal/repositories/jsonfile"
	"github.com/SscSPs/cleaning_tracker/pkg/database"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cleaning_tracker",
		Short: "Time, expense and invoice tracking for a cleaning business",
		Long: `cleaning_tracker records work sessions and expenses per client,
reports them by month and by tax year, and renders monthly invoices.

Examples:
  cleaning_tracker serve
  cleaning_tracker backfill-miles --apply
  cleaning_tracker hash-password`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newBackfillMilesCommand(),
		newHashPasswordCommand(),
		newGenSecretCommand(),
	)
	return root
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// loadRuntime reads and validates the configuration and builds the process logger.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logger, nil
}

// openStore opens the configured storage backend. The returned func
// releases whatever the backend holds open.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	default:
		repos, err := jsonfile.NewRepositoryProvider(cfg.DataDir)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		logger.Info("Using JSON file store", slog.String("data_dir", cfg.DataDir))
		return repos, func() {}, nil
	}
}
