// Package parser reconstructs class sessions from the raw cells of an
// extracted timetable.
package parser

import (
	"context"
	"sync/atomic"

	"github.com/Ta1al/timetable-parser/pkg/models"
	"golang.org/x/sync/errgroup"
)

// GridExtractor yields the tables of a document, one grid per table
type GridExtractor interface {
	ExtractGrids(ctx context.Context) ([]models.Grid, error)
}

// TextExtractor yields the plain text of a document's first page
type TextExtractor interface {
	FirstPageText(ctx context.Context) (string, error)
}

// GridFunc adapts a function to GridExtractor
type GridFunc func(ctx context.Context) ([]models.Grid, error)

// ExtractGrids calls f
func (f GridFunc) ExtractGrids(ctx context.Context) ([]models.Grid, error) { return f(ctx) }

// TextFunc adapts a function to TextExtractor
type TextFunc func(ctx context.Context) (string, error)

// FirstPageText calls f
func (f TextFunc) FirstPageText(ctx context.Context) (string, error) { return f(ctx) }

// Parser turns one document into a Timetable
type Parser struct {
	grids GridExtractor
	text  TextExtractor
	opts  Options
}

// New creates a parser. text may be nil, leaving the reference pool empty.
func New(grids GridExtractor, text TextExtractor, opts Options) *Parser {
	return &Parser{grids: grids, text: text, opts: opts}
}

// Parse runs the whole pipeline. Extraction failures are logged and treated
// as empty input; the only error returned is ctx's.
func (p *Parser) Parse(ctx context.Context) (*models.Timetable, error) {
	log := p.opts.logger()

	pool := p.referencePool(ctx)
	log.Debug("reference pool harvested", "lines", len(pool))

	grids, err := p.grids.ExtractGrids(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("table extraction failed, continuing with no tables", "error", err)
		grids = nil
	}

	fragments, err := p.parseTables(ctx, grids, pool)
	if err != nil {
		return nil, err
	}

	tt := models.NewTimetable()
	for i, fragment := range fragments {
		log.Debug("table parsed", "table", i, "sessions", len(fragment.Sessions()))
		tt.Merge(fragment)
	}

	filled := InferSemesters(tt)
	log.Debug("semesters inferred", "filled", filled)

	tt.Timestamp = p.opts.now()
	return tt, nil
}

func (p *Parser) referencePool(ctx context.Context) []string {
	if !p.opts.ResolveTruncated || p.text == nil {
		return nil
	}
	text, err := p.text.FirstPageText(ctx)
	if err != nil {
		p.opts.logger().Warn("first page extraction failed, resolving without reference lines", "error", err)
		return nil
	}
	return ReferencePrograms(text)
}

// parseTables walks every grid, up to Workers at a time. Fragments keep
// table order regardless of completion order; the pool is only read.
func (p *Parser) parseTables(ctx context.Context, grids []models.Grid, pool []string) ([]*models.Timetable, error) {
	fragments := make([]*models.Timetable, len(grids))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.workers())
	for i, grid := range grids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fragments[i] = WalkGrid(grid, pool, p.opts)
			n := done.Add(1)
			if p.opts.OnTable != nil {
				p.opts.OnTable(int(n), len(grids))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}
