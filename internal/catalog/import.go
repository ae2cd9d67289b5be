package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"
)

// importBatchSize bounds transaction size and index batch size during import.
const importBatchSize = 500

// Importer ingests the BGG ranks CSV dump into the store and the name index.
type Importer struct {
	store *Store
	index *Index
	log   *slog.Logger
}

// NewImporter creates an importer writing to the given store and index.
func NewImporter(store *Store, index *Index, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, index: index, log: logger}
}

// ImportCSV reads a boardgames_ranks.csv dump and upserts every row.
// Expected header: id,name,yearpublished,rank,bayesaverage,average,usersrated,...
// A zero in rank or yearpublished means "unknown" and is stored as NULL.
// Returns the number of games imported.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	start := time.Now()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("csv missing required column %q", required)
		}
	}

	total := 0
	batch := make([]*Game, 0, importBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := im.store.UpsertBatch(batch); err != nil {
			return fmt.Errorf("store batch: %w", err)
		}
		if err := im.index.IndexBatch(batch); err != nil {
			return fmt.Errorf("index batch: %w", err)
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read csv record: %w", err)
		}

		g, err := gameFromRecord(col, record)
		if err != nil {
			im.log.Warn("skipping malformed csv row", "error", err)
			continue
		}

		batch = append(batch, g)
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}

	im.log.Info("catalog import complete",
		"games", total,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return total, nil
}

func gameFromRecord(col map[string]int, record []string) (*Game, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", field("id"), err)
	}
	name := field("name")
	if name == "" {
		return nil, fmt.Errorf("game %d has empty name", id)
	}

	g := &Game{
		ID:            id,
		Name:          name,
		YearPublished: optionalInt(field("yearpublished")),
		Rank:          optionalInt(field("rank")),
		ImageURL:      field("thumbnail"),
	}
	if avg, err := strconv.ParseFloat(field("average"), 64); err == nil {
		g.Average = avg
	}
	// Stats columns appear only in enriched exports; the plain ranks dump
	// leaves them zero.
	if n, err := strconv.Atoi(field("minplayers")); err == nil {
		g.MinPlayers = n
	}
	if n, err := strconv.Atoi(field("maxplayers")); err == nil {
		g.MaxPlayers = n
	}
	if n, err := strconv.Atoi(field("playingtime")); err == nil {
		g.PlayingTime = n
	}
	if w, err := strconv.ParseFloat(field("averageweight"), 64); err == nil {
		g.Complexity = w
	}
	return g, nil
}

// optionalInt parses a CSV integer where "0", empty, and garbage all mean
// "unknown" (the dump uses 0 for unranked and unknown years).
func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}
