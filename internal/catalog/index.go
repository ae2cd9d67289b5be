package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/vmunix/shelfscan/pkg/match"
)

// mappingVersion is bumped whenever the index mapping changes; a mismatch
// triggers a rebuild-on-import instead of a migration.
const mappingVersion = "1"

// document is the indexed shape of a catalog row. Only names are indexed;
// the sqlite store remains the source of truth for row data.
type document struct {
	Name       string `json:"name"`
	NameFolded string `json:"name_folded"`
}

// Index wraps a bleve index over catalog game names.
//
// Thread safety: bleve indexes are safe for concurrent reads; writes happen
// only during import, which callers must not run concurrently with itself.
type Index struct {
	index bleve.Index
	path  string
	log   *slog.Logger
}

// NewIndex creates or opens the name index at dir.
// A corrupted or version-mismatched index is removed and recreated.
func NewIndex(dir string, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.Default()
	}

	indexPath := filepath.Join(dir, "names.bleve")
	versionPath := filepath.Join(dir, "names.version")

	needsRebuild := false
	if _, err := os.Stat(indexPath); err == nil {
		existing, readErr := os.ReadFile(versionPath)
		if readErr != nil || string(existing) != mappingVersion {
			logger.Info("search index mapping changed, rebuilding", "path", indexPath)
			needsRebuild = true
		}
	}

	var index bleve.Index
	var err error
	if !needsRebuild {
		index, err = bleve.Open(indexPath)
		if err == bleve.ErrorIndexPathDoesNotExist {
			index = nil
		} else if err != nil {
			logger.Warn("failed to open existing index, recreating", "path", indexPath, "error", err)
			needsRebuild = true
		}
	}

	if needsRebuild {
		if err := os.RemoveAll(indexPath); err != nil {
			return nil, fmt.Errorf("remove old index: %w", err)
		}
		index = nil
	}

	if index == nil {
		index, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
		if err := os.WriteFile(versionPath, []byte(mappingVersion), 0644); err != nil {
			logger.Warn("failed to write index version file", "error", err)
		}
	}

	return &Index{index: index, path: indexPath, log: logger}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = en.AnalyzerName
	nameField.Store = true
	docMapping.AddFieldMappingsAt("name", nameField)

	// Accent-folded form catches queries like "orleans" for "Orléans".
	foldedField := bleve.NewTextFieldMapping()
	foldedField.Analyzer = simple.Name
	foldedField.Store = false
	docMapping.AddFieldMappingsAt("name_folded", foldedField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Close closes the underlying bleve index.
func (ix *Index) Close() error {
	return ix.index.Close()
}

// IndexBatch indexes the names of a batch of games.
func (ix *Index) IndexBatch(games []*Game) error {
	batch := ix.index.NewBatch()
	for _, g := range games {
		doc := document{
			Name:       g.Name,
			NameFolded: match.Normalize(g.Name),
		}
		if err := batch.Index(strconv.FormatInt(g.ID, 10), doc); err != nil {
			return fmt.Errorf("index game %d: %w", g.ID, err)
		}
	}
	if err := ix.index.Batch(batch); err != nil {
		return fmt.Errorf("apply index batch: %w", err)
	}
	return nil
}

// Search returns the IDs of up to limit games whose names match the query,
// ordered by text relevance.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]int64, error) {
	nameMatch := bleve.NewMatchQuery(query)
	nameMatch.SetField("name")

	foldedMatch := bleve.NewMatchQuery(match.Normalize(query))
	foldedMatch.SetField("name_folded")

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(nameMatch, foldedMatch), limit, 0, false)

	result, err := ix.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	ids := make([]int64, 0, len(result.Hits))
	for _, hit := range result.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			ix.log.Warn("skipping non-numeric index hit", "id", hit.ID)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Count returns the number of indexed documents.
func (ix *Index) Count() (uint64, error) {
	return ix.index.DocCount()
}
