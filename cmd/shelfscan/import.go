package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfscan/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import a game catalog from CSV",
	Long: `Import a game catalog from CSV.

The CSV must carry 'id' and 'name' columns; rank, year, ratings, player
counts, playing time, weight, and image URL columns are picked up when
present. Rows are upserted, so re-importing a newer export refreshes
existing games in place.

Examples:
  shelfscan import boardgames_ranks.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	importer := catalog.NewImporter(e.store, e.index, e.log.With("component", "import"))

	start := time.Now()
	n, err := importer.ImportCSV(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]any{"imported": n, "duration": time.Since(start).String()})
		return nil
	}

	fmt.Printf("Imported %d games in %s\n", n, time.Since(start).Round(time.Millisecond))
	return nil
}
