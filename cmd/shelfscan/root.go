package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"

	"github.com/vmunix/shelfscan/internal/catalog"
	"github.com/vmunix/shelfscan/internal/collection"
	"github.com/vmunix/shelfscan/internal/config"
)

var version = "dev"

var (
	configPath string
	userID     string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "shelfscan",
	Short: "Board game shelf scanner and catalog matcher",
	Long: `shelfscan - match photographed game shelves against a canonical catalog

Import a catalog from CSV, scan shelf photos through a vision service,
and reconcile detected titles against the catalog with fuzzy matching.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User ID for collection membership")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("shelfscan {{.Version}}\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig resolves the config file from the --config flag or the standard
// search paths, falling back to built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// env bundles the stores and services a command needs. Commands call setup
// once and defer close.
type env struct {
	cfg        *config.Config
	log        *slog.Logger
	db         *sql.DB
	store      *catalog.Store
	index      *catalog.Index
	searcher   *catalog.Searcher
	collection *collection.Store
}

func setup() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := catalog.NewStore(db)
	if err := store.Init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init catalog: %w", err)
	}

	collStore := collection.NewStore(db)
	if err := collStore.Init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init collection: %w", err)
	}

	index, err := catalog.NewIndex(cfg.Index.Path, logger.With("component", "index"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &env{
		cfg:        cfg,
		log:        logger,
		db:         db,
		store:      store,
		index:      index,
		searcher:   catalog.NewSearcher(store, index, logger.With("component", "search")),
		collection: collStore,
	}, nil
}

func (e *env) close() {
	if e.index != nil {
		_ = e.index.Close()
	}
	if e.db != nil {
		_ = e.db.Close()
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
