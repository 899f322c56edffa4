package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Open loads a catalog from path, choosing the format by extension:
// .csv, .jsonl, or .db / .sqlite.
func Open(ctx context.Context, path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSVFile(path)
	case ".jsonl", ".ndjson":
		return LoadJSONLFile(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
}
