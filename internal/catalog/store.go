package catalog

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"
)

//go:embed schema.sql
var schema string

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Store provides access to catalog rows.
type Store struct {
	db *sql.DB
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the catalog schema. Safe to call on an existing database.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("apply catalog schema: %w", err)
	}
	return nil
}

// mapSQLiteError converts SQLite errors to sentinel error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

func upsertGame(q querier, g *Game) error {
	now := time.Now()
	_, err := q.Exec(`
		INSERT INTO games (id, name, year_published, rank, average, min_players, max_players, playing_time, complexity, image_url, description, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			year_published = excluded.year_published,
			rank = excluded.rank,
			average = excluded.average,
			min_players = excluded.min_players,
			max_players = excluded.max_players,
			playing_time = excluded.playing_time,
			complexity = excluded.complexity,
			image_url = excluded.image_url,
			description = excluded.description,
			updated_at = excluded.updated_at`,
		g.ID, g.Name, g.YearPublished, g.Rank, g.Average, g.MinPlayers, g.MaxPlayers,
		g.PlayingTime, g.Complexity, g.ImageURL, g.Description, now,
	)
	if err != nil {
		return fmt.Errorf("upsert game %d: %w", g.ID, mapSQLiteError(err))
	}
	g.UpdatedAt = now
	return nil
}

// Upsert inserts or replaces a catalog row by ID.
func (s *Store) Upsert(g *Game) error { return upsertGame(s.db, g) }

// UpsertBatch writes a batch of rows in one transaction.
func (s *Store) UpsertBatch(games []*Game) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	for _, g := range games {
		if err := upsertGame(tx, g); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

const gameColumns = `id, name, year_published, rank, average, min_players, max_players, playing_time, complexity, image_url, description, updated_at`

func scanGame(row interface{ Scan(...any) error }) (*Game, error) {
	g := &Game{}
	err := row.Scan(&g.ID, &g.Name, &g.YearPublished, &g.Rank, &g.Average,
		&g.MinPlayers, &g.MaxPlayers, &g.PlayingTime, &g.Complexity,
		&g.ImageURL, &g.Description, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Get retrieves a catalog row by ID.
// Returns ErrNotFound if the game does not exist.
func (s *Store) Get(id int64) (*Game, error) {
	g, err := scanGame(s.db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get game %d: %w", id, mapSQLiteError(err))
	}
	return g, nil
}

// GetByIDs retrieves catalog rows for the given IDs, preserving the input
// order. IDs with no matching row are silently skipped.
func (s *Store) GetByIDs(ids []int64) ([]*Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(`SELECT `+gameColumns+` FROM games WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("get games by ids: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	byID := make(map[int64]*Game, len(ids))
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		byID[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}

	games := make([]*Game, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			games = append(games, g)
		}
	}
	return games, nil
}

// Count returns the number of catalog rows.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}
