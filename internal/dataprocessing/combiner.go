package dataprocessing

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "afilcli/internal/errors"
	"afilcli/internal/files"
)

// Combiner loads every source workbook, stamps each row with the (year,
// month) key from its filename and concatenates the results into the
// combined table.
type Combiner struct {
	logger *slog.Logger
}

// NewCombiner creates a combiner logging through the given logger.
func NewCombiner(logger *slog.Logger) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{logger: logger}
}

// CombineFiles runs each file's normalize/sanitize pipeline independently
// and merges the per-file results only after all of them complete. Files
// whose name carries no parsable date, or whose workbook cannot be read, are
// reported and skipped; the run continues with the remaining files. If no
// rows survive at all the run fails with ErrNoValidInput so stale output is
// never overwritten with an empty table.
func (c *Combiner) CombineFiles(ctx context.Context, sources []files.FileInfo) ([]Record, error) {
	results := make([][]Record, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			year, month, err := ParseFileDate(src.Name)
			if err != nil {
				c.logger.WarnContext(ctx, "skipping file without a parsable date",
					slog.String("filename", src.Name),
					slog.String("error", err.Error()))
				return nil
			}

			records, err := ParseFile(src.Path)
			if err != nil {
				c.logger.ErrorContext(ctx, "skipping file that failed to parse",
					slog.String("filename", src.Name),
					slog.String("error", err.Error()))
				return nil
			}

			for j := range records {
				records[j].Year = year
				records[j].Month = month
			}

			c.logger.InfoContext(ctx, "processed file",
				slog.String("filename", src.Name),
				slog.Int("year", year),
				slog.Int("month", month),
				slog.Int("rows", len(records)))

			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []Record
	for _, part := range results {
		combined = append(combined, part...)
	}
	if len(combined) == 0 {
		return nil, apperrors.ErrNoValidInput
	}

	c.logger.InfoContext(ctx, "combined source files",
		slog.Int("files", len(sources)),
		slog.Int("rows", len(combined)))

	return combined, nil
}
