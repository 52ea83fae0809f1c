// Package pipeline implements the sequential cleaning pipeline for
// Telegram channel exports: load, deduplicate, fill missing values,
// standardize formats, validate, and persist.
package pipeline

import (
	"io"
	"log/slog"

	"github.com/masresha/tgclean/internal/table"
)

// Pipeline runs the cleaning stages over one export file. Stages are
// pure functions over the table; the pipeline owns the table for the
// duration of a run and executes strictly in sequence.
type Pipeline struct {
	log              *slog.Logger
	maxMessageLength int
}

// New creates a Pipeline. A nil logger is replaced with a discarding
// one so stage methods can log unconditionally.
func New(log *slog.Logger, maxMessageLength int) *Pipeline {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		log:              log.With("component", "pipeline"),
		maxMessageLength: maxMessageLength,
	}
}

// Run executes the cleaning stages in order against the export at
// csvPath, using mediaDir to remove side-files of dropped duplicates.
// Every failure is terminal for the run but never propagated: Run logs
// it and returns an empty table. The cleaned table is also written to
// a "_cleaned" file next to the input.
func (p *Pipeline) Run(csvPath, mediaDir string) table.Table {
	data := p.Load(csvPath)
	if len(data) == 0 {
		p.log.Error("No data loaded, cleaning aborted", "path", csvPath)
		return nil
	}

	data = p.Deduplicate(data, mediaDir)
	data = p.FillMissing(data)
	data = p.Standardize(data)
	data = p.Validate(data)

	if err := p.Save(data, csvPath); err != nil {
		p.log.Error("Failed to save cleaned data", "error", err)
		return nil
	}

	p.log.Info("Data cleaning completed", "rows", len(data))
	return data
}
