package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the catalog by name",
	Long: `Search the catalog by name.

Runs the same coarse full-text search that reconcile uses to gather
candidates, ordered by popularity rank. Useful for checking what a
detected title would be matched against.

Examples:
  shelfscan search catan
  shelfscan search --limit 5 "ticket to ride"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("limit", 10, "Maximum results")
}

// truncateName shortens a game name to max visible characters. Counts runes,
// not bytes, so accented names never get split mid-character.
func truncateName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max-3]) + "..."
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	games, err := e.searcher.SearchGames(cmd.Context(), query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(games)
		return nil
	}

	if len(games) == 0 {
		fmt.Println("No games found")
		return nil
	}

	fmt.Printf("Found %d games for %q:\n\n", len(games), query)
	fmt.Printf("  %8s │ %-40s │ %6s │ %4s\n", "ID", "NAME", "RANK", "YEAR")
	fmt.Println("───────────┼──────────────────────────────────────────┼────────┼──────")
	for _, g := range games {
		name := truncateName(g.Name, 40)
		rank := "-"
		if g.Rank != nil {
			rank = fmt.Sprintf("%d", *g.Rank)
		}
		year := "-"
		if g.YearPublished != nil {
			year = fmt.Sprintf("%d", *g.YearPublished)
		}
		fmt.Printf("  %8d │ %-40s │ %6s │ %4s\n", g.ID, name, rank, year)
	}
	return nil
}
