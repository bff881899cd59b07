package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/bookstore/internal/cart/app"
	catalogapp "github.com/dwikikusuma/bookstore/internal/catalog/app"
	"github.com/dwikikusuma/bookstore/internal/catalog/infra/manifest"
	storeapp "github.com/dwikikusuma/bookstore/internal/storefront/app"
	"github.com/dwikikusuma/bookstore/internal/storefront/view"
	"github.com/dwikikusuma/bookstore/pkg/config"
	"github.com/dwikikusuma/bookstore/pkg/logger"
	"github.com/dwikikusuma/bookstore/pkg/shutdown"
)

var (
	manifestPath string
	logLevel     string
)

func Execute() error {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "bookstore",
		Short:         "Browse the Book6All catalog, filter by category and fill a cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifestPath != "" {
				cfg.CatalogManifest = manifestPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return run(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&manifestPath, "manifest", "", "catalog manifest YAML (default: built-in catalog)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("bookstore failed", slog.Any("err", err))
		return err
	}
	return nil
}

func run(parent context.Context, cfg config.Config) error {
	log := logger.New(logger.Options{Service: "bookstore", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(parent, log)
	defer cancel()

	catalog, err := manifest.Load(cfg.CatalogManifest, cfg.CurrencySymbol)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		slog.Int("books", len(catalog.Books)),
		slog.Int("categories", len(catalog.Categories)),
	)

	catalogSvc := catalogapp.NewService(catalog.Books, catalog.Categories)
	filter := catalogapp.NewFilter(log, catalog.Books)
	cart := cartapp.NewStore(log)
	term := view.NewTerminal(os.Stdout, catalog.Books)
	store := storeapp.NewService(log, catalogSvc, filter, cart, term)

	sh := NewShell(store, catalogSvc, filter, os.Stdout)
	if err := sh.Run(ctx, os.Stdin); err != nil {
		return err
	}
	log.Info("bye")
	return nil
}
