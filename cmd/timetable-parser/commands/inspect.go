package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Ta1al/timetable-parser/internal/db"
	"github.com/Ta1al/timetable-parser/internal/extract"
	"github.com/Ta1al/timetable-parser/internal/parser"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	var firstPage string
	cmd := &cobra.Command{
		Use:   "inspect <tables>",
		Short: "Show how table exports are read before parsing",
		Long: `Show, for every table export, its size, the detected header row and the
column to day mapping. With --first-page, also list the reference program lines
harvested for truncation repair.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], firstPage)
		},
	}

	cmd.Flags().StringVar(&firstPage, "first-page", "", "Plain text of the document's first page")
	return cmd
}

func runInspect(ctx context.Context, w io.Writer, tables, firstPage string) error {
	database, err := db.GetDB()
	if err != nil {
		return err
	}

	grids := extract.NewDuckDBGrids(database, tables)
	paths, err := grids.Files()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(w, "No table exports match '%s'\n", tables)
		return nil
	}

	for i, path := range paths {
		fmt.Fprintf(w, "%d. Table: %s\n", i+1, path)

		grid, err := grids.ReadTable(ctx, path)
		if err != nil {
			fmt.Fprintf(w, "   Error reading table: %v\n\n", err)
			continue
		}

		columns := 0
		for _, row := range grid {
			columns = max(columns, len(row))
		}
		fmt.Fprintf(w, "   Rows: %d, Columns: %d\n", len(grid), columns)
		if len(grid) == 0 {
			fmt.Fprintln(w)
			continue
		}

		header := parser.DetectHeader(grid)
		fmt.Fprintf(w, "   Header row: %d\n", header)

		dayColumns := parser.MapDayColumns(grid[header])
		if len(dayColumns) == 0 {
			fmt.Fprintln(w, "   Day columns: none (table will be skipped)")
		} else {
			parts := make([]string, 0, len(dayColumns))
			for _, col := range dayColumns {
				parts = append(parts, fmt.Sprintf("%d=%s", col.Index, col.Day))
			}
			fmt.Fprintf(w, "   Day columns: %s\n", strings.Join(parts, " "))
		}
		fmt.Fprintln(w)
	}

	if firstPage == "" {
		return nil
	}

	text, err := extract.TextFile{Path: firstPage}.FirstPageText(ctx)
	if err != nil {
		return err
	}
	pool := parser.ReferencePrograms(text)
	fmt.Fprintf(w, "Reference program lines: %d\n", len(pool))
	for i, line := range pool {
		fmt.Fprintf(w, "  %d. %s\n", i+1, line)
	}
	return nil
}
