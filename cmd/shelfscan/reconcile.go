package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfscan/internal/reconcile"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [flags] <title>...",
	Short: "Match detected titles against the catalog",
	Long: `Match detected titles against the catalog.

Each title is searched and scored with fuzzy matching; the best
candidate above the confidence floor wins. With --user, matched games
are also checked against that user's collection.

Examples:
  shelfscan reconcile "Catan" "Wingspan"
  shelfscan reconcile --file titles.txt
  shelfscan reconcile --user alice "Gloomhaven"`,
	RunE: runReconcileCmd,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().String("file", "", "Read titles from file, one per line")
}

func runReconcileCmd(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	titles := make([]reconcile.DetectedTitle, 0, len(args))
	for _, a := range args {
		titles = append(titles, reconcile.DetectedTitle{Title: a})
	}
	if file != "" {
		fromFile, err := readTitles(file)
		if err != nil {
			return err
		}
		titles = append(titles, fromFile...)
	}
	if len(titles) == 0 {
		return fmt.Errorf("no titles given: pass them as arguments or via --file")
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	results, err := newReconciler(e).Reconcile(cmd.Context(), userID, titles)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	printResults(results)
	return nil
}

func newReconciler(e *env) *reconcile.Reconciler {
	return reconcile.New(e.searcher, e.collection, reconcile.Options{
		SearchLimit: e.cfg.Matching.SearchLimit,
		Concurrency: e.cfg.Matching.Concurrency,
		ItemTimeout: e.cfg.Matching.ItemTimeout,
	}, e.log.With("component", "reconcile"))
}

func readTitles(path string) ([]reconcile.DetectedTitle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open titles file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var titles []reconcile.DetectedTitle
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		titles = append(titles, reconcile.DetectedTitle{Title: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read titles file: %w", err)
	}
	return titles, nil
}

func printResults(results []reconcile.MatchResult) {
	if jsonOutput {
		printJSON(results)
		return
	}

	matched := 0
	for _, r := range results {
		if r.Matched {
			matched++
		}
	}
	fmt.Printf("Matched %d of %d titles:\n\n", matched, len(results))

	for _, r := range results {
		switch {
		case r.Matched:
			g := r.Best.Game
			owned := ""
			if r.InCollection {
				owned = "  (owned)"
			}
			rank := "-"
			if g.Rank != nil {
				rank = fmt.Sprintf("#%d", *g.Rank)
			}
			fmt.Printf("  ✓ %-30s → %s [%d] %s  sim %.2f%s\n",
				r.Detected.Title, g.Name, g.ID, rank, r.Best.Similarity, owned)
		case r.Reason == reconcile.ReasonSearchFailed:
			fmt.Printf("  ! %-30s → search failed\n", r.Detected.Title)
		default:
			fmt.Printf("  ✗ %-30s → no match\n", r.Detected.Title)
		}
	}
}
