// Command piptrade-import bulk loads a JSON dataset into the record store
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"piptrade/internal/client"
	"piptrade/internal/core/record"
	"piptrade/internal/modkit"
	"piptrade/internal/modkit/module"
	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
	"piptrade/internal/platform/net/http/bind"
	"piptrade/internal/platform/store"

	recsdom "piptrade/internal/services/records/domain"
	recsmod "piptrade/internal/services/records/module"
)

const appName = "piptrade-import"

// exit codes
const (
	exitError     = 1
	exitDataError = 3
)

var (
	flagURL    string
	flagDirect bool
	flagDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "piptrade-import <file>",
	Short: "Bulk import a JSON array of records",
	Long: `Bulk import a JSON array of records, all or nothing.

Usage:
  piptrade-import jsondata.json
  piptrade-import --url http://api:6000 jsondata.json
  piptrade-import --direct jsondata.json

By default the file is posted to /alldata of a running service.
With --direct the records go straight into the configured store
(SERVICE_STORE_BACKEND, SERVICE_PGSQL_DBURL or SERVICE_CLICKHOUSE_DBURL).`,
	Args:          cobra.ExactArgs(1),
	RunE:          runImport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "http://localhost:6000", "base URL of a running piptrade-api")
	rootCmd.Flags().BoolVar(&flagDirect, "direct", false, "insert through the store instead of the HTTP API")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "parse and validate only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()
	l := logger.Named("import")

	recs, err := readDataset(args[0])
	if err != nil {
		return err
	}
	if err := bind.Validate(recs); err != nil {
		return dataError{err}
	}
	if flagDryRun {
		l.Info().Int("records", len(recs)).Str("file", args[0]).Msg("dry run, nothing written")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	var saved []record.Record
	if flagDirect {
		saved, err = importDirect(ctx, recs)
	} else {
		saved, err = client.New(client.Options{BaseURL: flagURL, UserAgent: appName}).Save(ctx, recs)
	}
	if err != nil {
		return err
	}

	l.Info().
		Int("records", len(saved)).
		Bool("direct", flagDirect).
		Dur("took", time.Since(start)).
		Msg("import complete")
	return nil
}

// importDirect opens the configured store and inserts through the records module
func importDirect(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	root := config.New()
	l := logger.Get()

	budget := root.Prefix("CORE_API_").MayDuration("FETCH_BUDGET", modkit.DefaultFetchBudget)
	backend, cfg := store.FromEnv(root, appName, budget)
	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	m := recsmod.New(modkit.Deps{
		Log:         *l,
		Cfg:         root,
		Backend:     backend,
		PG:          st.PG,
		CH:          st.CH,
		FetchBudget: budget,
	}, recsmod.Options{EnsureSchema: true})
	if err := m.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return module.MustPortsOf[recsdom.RecordsPort](m).InsertMany(ctx, recs)
}
