// Package collection manages per-user game collections.
package collection

import "time"

// Item is one game in a user's collection.
type Item struct {
	ID        int64
	UserID    string
	GameID    int64
	Name      string
	Thumbnail string
	AddedAt   time.Time
}
