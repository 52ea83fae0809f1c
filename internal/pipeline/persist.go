package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/masresha/tgclean/internal/table"
)

// OutputColumns is the fixed output header, SQL-friendly names in the
// fixed output order. "Message" keeps the source system's original
// casing.
var OutputColumns = []string{
	"message_id",
	"channel_id",
	"channel_title",
	"channel_username",
	"Message",
	"date",
	"media_path",
}

// OutputDateLayout is the serialization format for standardized dates.
const OutputDateLayout = "2006-01-02 15:04:05"

// CleanedPath derives the output path for a source export path by
// inserting "_cleaned" before the extension.
func CleanedPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + "_cleaned" + ext
}

// Save writes the table to the cleaned path next to srcPath, with
// columns renamed per OutputColumns. The source file is never touched.
func (p *Pipeline) Save(data table.Table, srcPath string) error {
	outPath := CleanedPath(srcPath)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(OutputColumns); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, rec := range data {
		var date string
		if rec.ParsedDate.Valid {
			date = rec.ParsedDate.Time.Format(OutputDateLayout)
		}
		row := []string{
			rec.ID,
			rec.ChannelID,
			rec.ChannelTitle,
			rec.ChannelUsername,
			rec.Message,
			date,
			rec.MediaPath,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	p.log.Info("Cleaned data saved", "path", outPath, "rows", len(data))
	return nil
}
