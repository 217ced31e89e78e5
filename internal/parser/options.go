package parser

import (
	"io"
	"log/slog"
	"time"
)

// Options controls truncation handling and table-level concurrency
type Options struct {
	// ResolveTruncated repairs ellipsis-truncated program lines from the
	// reference pool.
	ResolveTruncated bool
	// KeepTruncated keeps the truncated text in the output even when a
	// resolution was found.
	KeepTruncated bool
	// Workers bounds how many tables are parsed at once. Values below 1
	// mean one.
	Workers int
	// OnTable is called after each table is walked with the number of
	// finished tables and the total. It may be called from several
	// goroutines when Workers > 1.
	OnTable func(done, total int)
	Logger  *slog.Logger
	// Now stamps the timetable; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions resolves truncated lines and replaces them with the
// resolved text.
func DefaultOptions() Options {
	return Options{
		ResolveTruncated: true,
		Workers:          1,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
