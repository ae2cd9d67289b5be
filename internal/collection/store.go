package collection

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"
)

//go:embed schema.sql
var schema string

// Store provides access to user collections.
type Store struct {
	db *sql.DB
}

// NewStore creates a new collection store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the collection schema. Safe to call on an existing database.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("apply collection schema: %w", err)
	}
	return nil
}

func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}

// Add inserts a game into a user's collection. Re-adding an owned game
// refreshes its name and thumbnail instead of failing.
func (s *Store) Add(item *Item) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO collections (user_id, game_id, name, thumbnail, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, game_id) DO UPDATE SET
			name = excluded.name,
			thumbnail = excluded.thumbnail`,
		item.UserID, item.GameID, item.Name, item.Thumbnail, now,
	)
	if err != nil {
		return fmt.Errorf("add collection item: %w", mapSQLiteError(err))
	}
	if id, err := result.LastInsertId(); err == nil {
		item.ID = id
	}
	item.AddedAt = now
	return nil
}

// Exists reports whether the user owns the given game.
// Absence of a row is false, not an error.
func (s *Store) Exists(ctx context.Context, userID string, gameID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM collections WHERE user_id = ? AND game_id = ?`,
		userID, gameID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check collection membership: %w", err)
	}
	return true, nil
}

// List returns all items in a user's collection, newest first.
func (s *Store) List(userID string) ([]*Item, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, game_id, name, thumbnail, added_at
		FROM collections WHERE user_id = ?
		ORDER BY added_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.GameID, &item.Name, &item.Thumbnail, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan collection item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection: %w", err)
	}
	return items, nil
}

// Remove deletes a game from a user's collection.
// Returns ErrNotFound if the user does not own the game.
func (s *Store) Remove(userID string, gameID int64) error {
	result, err := s.db.Exec(
		`DELETE FROM collections WHERE user_id = ? AND game_id = ?`,
		userID, gameID,
	)
	if err != nil {
		return fmt.Errorf("remove collection item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
