package pipeline

import (
	"github.com/masresha/tgclean/internal/table"
)

// Placeholders for absent values. The date placeholder is a raw string
// on purpose: it is parsed like any other date during standardization.
const (
	PlaceholderUsername = "Unknown"
	PlaceholderMessage  = "N/A"
	PlaceholderDate     = "1970-01-01 00:00:00"
)

// FillMissing replaces absent channel usernames, messages, and dates
// with fixed placeholders. Other columns are left untouched.
func (p *Pipeline) FillMissing(data table.Table) table.Table {
	out := make(table.Table, len(data))
	for i, rec := range data {
		if rec.ChannelUsername == "" {
			rec.ChannelUsername = PlaceholderUsername
		}
		if rec.Message == "" {
			rec.Message = PlaceholderMessage
		}
		if rec.Date == "" {
			rec.Date = PlaceholderDate
		}
		out[i] = rec
	}

	p.log.Info("Missing values handled", "rows", len(out))
	return out
}
