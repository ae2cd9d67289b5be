// Package catalog manages the reference board game catalog: a sqlite store
// of canonical game rows plus a bleve full-text index over their names used
// for coarse candidate search.
package catalog

import (
	"time"
)

// Game is one row of the reference catalog. Read-only to consumers.
type Game struct {
	ID            int64
	Name          string
	YearPublished *int // nil = unknown
	Rank          *int // BGG popularity rank, lower = more popular, nil = unranked
	Average       float64
	MinPlayers    int
	MaxPlayers    int
	PlayingTime   int
	Complexity    float64
	ImageURL      string
	Description   string
	UpdatedAt     time.Time
}

// Ranked reports whether the game has a popularity rank.
func (g *Game) Ranked() bool {
	return g.Rank != nil
}
