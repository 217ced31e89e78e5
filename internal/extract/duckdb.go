// Package extract provides document collaborators for the parser: table
// grids read from CSV exports and first-page text read from a text dump.
package extract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ta1al/timetable-parser/pkg/models"
)

// DuckDBGrids reads one grid per CSV file matching a glob, in file name
// order. Files are expected to be per-table exports of the document (one
// per page or detected table) with no header handling applied.
type DuckDBGrids struct {
	db      *sql.DB
	pattern string
}

// NewDuckDBGrids creates a grid extractor over pattern
func NewDuckDBGrids(db *sql.DB, pattern string) *DuckDBGrids {
	return &DuckDBGrids{db: db, pattern: pattern}
}

// Files returns the table exports the pattern matches, sorted
func (g *DuckDBGrids) Files() ([]string, error) {
	paths, err := filepath.Glob(g.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid table pattern %q: %w", g.pattern, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtractGrids reads every matching file. Unreadable files are skipped;
// an error is returned only when no grid could be read at all.
func (g *DuckDBGrids) ExtractGrids(ctx context.Context) ([]models.Grid, error) {
	paths, err := g.Files()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no table exports match %q", g.pattern)
	}

	var grids []models.Grid
	var errs []error
	for _, path := range paths {
		grid, err := g.ReadTable(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			errs = append(errs, err)
			continue
		}
		grids = append(grids, grid)
	}

	if len(grids) == 0 {
		return nil, errors.Join(errs...)
	}
	return grids, nil
}

// ReadTable loads a single CSV export as a grid of strings. NULL cells
// become empty strings.
func (g *DuckDBGrids) ReadTable(ctx context.Context, path string) (models.Grid, error) {
	query := fmt.Sprintf(`
		SELECT *
		FROM read_csv('%s',
			header = false,
			all_varchar = true,
			delim = ',',
			quote = '"',
			escape = '"'
		)
	`, strings.ReplaceAll(path, "'", "''"))

	rows, err := g.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", path, err)
	}

	var grid models.Grid
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", path, err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		grid = append(grid, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", path, err)
	}

	return grid, nil
}
