package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ta1al/timetable-parser/internal/db"
	"github.com/Ta1al/timetable-parser/internal/extract"
	"github.com/Ta1al/timetable-parser/internal/parser"
	"github.com/Ta1al/timetable-parser/internal/tui"
	"github.com/Ta1al/timetable-parser/pkg/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type parseFlags struct {
	firstPage     string
	output        string
	keepTruncated bool
	noResolve     bool
	workers       int
	quiet         bool
}

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	flags := &parseFlags{}
	cmd := &cobra.Command{
		Use:   "parse <tables>",
		Short: "Parse table exports of a timetable into JSON",
		Long: `Parse the CSV exports of a timetable document into a day -> room -> sessions JSON file.
<tables> is a CSV file or a glob matching one CSV per extracted table; files are
read in name order. Pass the first page text with --first-page to repair
truncated program lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.firstPage, "first-page", "", "Plain text of the document's first page")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Path to write JSON output, - for stdout (default: next to the tables)")
	cmd.Flags().BoolVar(&flags.keepTruncated, "keep-truncated", false, "Keep truncated program lines even if a full match is found")
	cmd.Flags().BoolVar(&flags.noResolve, "no-resolve-truncated", false, "Disable resolving truncated program lines from the first page")
	cmd.Flags().IntVar(&flags.workers, "workers", 1, "Number of tables parsed concurrently")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Do not show the progress indicator")

	return cmd
}

func runParse(ctx context.Context, tables string, flags *parseFlags) error {
	logger := newLogger().With("run", uuid.New().String())

	database, err := db.GetDB()
	if err != nil {
		return err
	}

	grids := extract.NewDuckDBGrids(database, tables)
	var text parser.TextExtractor
	if flags.firstPage != "" {
		text = extract.TextFile{Path: flags.firstPage}
	} else if !flags.noResolve {
		logger.Debug("no first page given, truncated lines stay unresolved")
	}

	var timetable *models.Timetable
	job := func(ctx context.Context, r tui.Reporter) error {
		opts := parser.DefaultOptions()
		opts.ResolveTruncated = !flags.noResolve
		opts.KeepTruncated = flags.keepTruncated
		opts.Workers = flags.workers
		opts.Logger = logger
		opts.OnTable = r.Tables

		r.Stage("Parsing tables")
		var err error
		timetable, err = parser.New(grids, text, opts).Parse(ctx)
		return err
	}

	if flags.quiet || !tui.Interactive(os.Stderr) {
		err = tui.RunQuiet(ctx, job)
	} else {
		err = tui.RunWithProgress(ctx, os.Stderr, "Extracting tables", job)
	}
	if err != nil {
		return fmt.Errorf("failed to parse timetable: %w", err)
	}

	output := flags.output
	if output == "" {
		output = defaultOutputPath(tables)
	}
	if err := writeTimetable(timetable, output); err != nil {
		return err
	}

	logger.Info("timetable written",
		"output", output,
		"days", len(timetable.Days),
		"sessions", len(timetable.Sessions()))
	return nil
}

func writeTimetable(timetable *models.Timetable, output string) error {
	if output == "-" {
		if err := timetable.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("failed to encode timetable: %w", err)
		}
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := timetable.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode timetable: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

// defaultOutputPath puts the JSON next to the tables: <name>.json for a
// single file, timetable.json in the pattern's directory for a glob.
func defaultOutputPath(tables string) string {
	if strings.ContainsAny(tables, "*?[") {
		return filepath.Join(filepath.Dir(tables), "timetable.json")
	}
	return strings.TrimSuffix(tables, filepath.Ext(tables)) + ".json"
}
