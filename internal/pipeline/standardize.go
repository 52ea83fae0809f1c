package pipeline

import (
	"database/sql"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/masresha/tgclean/internal/table"
	"github.com/masresha/tgclean/internal/textclean"
)

// Timestamp layouts accepted in the export's Date column.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var usernameDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Standardize normalizes formats across the table: dates are parsed
// into ParsedDate (invalid on failure, marking the row for removal),
// messages go through the content-cleaning predicate and are
// lower-cased, and channel usernames are reduced to letters, digits,
// and whitespace, then title-cased.
func (p *Pipeline) Standardize(data table.Table) table.Table {
	titleCaser := cases.Title(language.English)

	out := make(table.Table, len(data))
	for i, rec := range data {
		rec.ParsedDate = parseDate(rec.Date)
		rec.Message = strings.TrimSpace(strings.ToLower(textclean.Clean(rec.Message)))

		username := usernameDisallowed.ReplaceAllString(rec.ChannelUsername, "")
		rec.ChannelUsername = titleCaser.String(strings.TrimSpace(username))

		out[i] = rec
	}

	p.log.Info("Formats standardized", "rows", len(out))
	return out
}

func parseDate(raw string) sql.NullTime {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}
