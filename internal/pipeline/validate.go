package pipeline

import (
	"unicode/utf8"

	"github.com/masresha/tgclean/internal/table"
)

// Validate drops records that failed date parsing, exceed the message
// length limit, or ended standardization with an empty channel
// username. The three filters are independent; a record survives only
// if it passes all of them.
func (p *Pipeline) Validate(data table.Table) table.Table {
	kept := make(table.Table, 0, len(data))
	for _, rec := range data {
		switch {
		case !rec.ParsedDate.Valid:
		case utf8.RuneCountInString(rec.Message) > p.maxMessageLength:
		case rec.ChannelUsername == "":
		default:
			kept = append(kept, rec)
		}
	}

	p.log.Info("Data validation completed", "rows", len(kept), "dropped", len(data)-len(kept))
	return kept
}
