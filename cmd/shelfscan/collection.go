package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfscan/internal/catalog"
	"github.com/vmunix/shelfscan/internal/collection"
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage a user's game collection",
	Long: `Manage a user's game collection.

All subcommands require --user.

Examples:
  shelfscan collection list --user alice
  shelfscan collection add 13 --user alice
  shelfscan collection remove 13 --user alice`,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the user's collection, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCollectionListCmd,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <game-id>",
	Short: "Add a catalog game to the user's collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionAddCmd,
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove <game-id>",
	Short: "Remove a game from the user's collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionRemoveCmd,
}

func init() {
	rootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
}

func requireUser() error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}

func parseGameID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q", s)
	}
	return id, nil
}

func runCollectionListCmd(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	items, err := e.collection.List(userID)
	if err != nil {
		return fmt.Errorf("list collection: %w", err)
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items) == 0 {
		fmt.Printf("Collection for %s is empty\n", userID)
		return nil
	}

	fmt.Printf("Collection for %s (%d games):\n\n", userID, len(items))
	for _, item := range items {
		fmt.Printf("  %8d │ %-40s │ added %s\n",
			item.GameID, item.Name, item.AddedAt.Format("2006-01-02"))
	}
	return nil
}

func runCollectionAddCmd(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	gameID, err := parseGameID(args[0])
	if err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	game, err := e.store.Get(gameID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("game %d not in catalog", gameID)
		}
		return fmt.Errorf("lookup game: %w", err)
	}

	item := &collection.Item{
		UserID:    userID,
		GameID:    game.ID,
		Name:      game.Name,
		Thumbnail: game.ImageURL,
	}
	if err := e.collection.Add(item); err != nil {
		return fmt.Errorf("add to collection: %w", err)
	}

	fmt.Printf("Added %s [%d] to %s's collection\n", game.Name, game.ID, userID)
	return nil
}

func runCollectionRemoveCmd(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	gameID, err := parseGameID(args[0])
	if err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.collection.Remove(userID, gameID); err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			return fmt.Errorf("game %d not in %s's collection", gameID, userID)
		}
		return fmt.Errorf("remove from collection: %w", err)
	}

	fmt.Printf("Removed game %d from %s's collection\n", gameID, userID)
	return nil
}
