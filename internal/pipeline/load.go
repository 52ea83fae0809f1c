package pipeline

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/masresha/tgclean/internal/table"
)

// Load parses the export at path into a table. A missing or
// unparseable file is not an error to the caller: Load logs it and
// returns an empty table, the sentinel for "nothing to do".
func (p *Pipeline) Load(path string) table.Table {
	f, err := os.Open(path)
	if err != nil {
		p.log.Error("Failed to open export file", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		p.log.Error("Failed to read export header", "path", path, "error", err)
		return nil
	}

	idx, err := table.ResolveColumns(header)
	if err != nil {
		p.log.Error("Export header is missing required columns", "path", path, "error", err)
		return nil
	}

	var data table.Table
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			p.log.Error("Failed to parse export file", "path", path, "error", err)
			return nil
		}

		data = append(data, table.Record{
			ID:              rec[idx.ID],
			ChannelID:       rec[idx.ChannelID],
			ChannelTitle:    rec[idx.ChannelTitle],
			ChannelUsername: rec[idx.ChannelUsername],
			Message:         rec[idx.Message],
			Date:            rec[idx.Date],
			MediaPath:       rec[idx.MediaPath],
		})
	}

	p.log.Info("Data loaded", "path", path, "rows", len(data), "columns", len(header))
	return data
}
