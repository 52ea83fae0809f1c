// Package table defines the in-memory representation of a Telegram
// channel export: one Record per exported message, ordered as read
// from the source file.
package table

import (
	"database/sql"
	"fmt"
	"strings"
)

// Source column names as they appear in the export header. Names and
// order are fixed by the export convention.
const (
	ColID              = "ID"
	ColChannelID       = "channel_id"
	ColChannelTitle    = "Channel Title"
	ColChannelUsername = "Channel Username"
	ColMessage         = "Message"
	ColDate            = "Date"
	ColMediaPath       = "Media Path"
)

// Columns lists the source columns in their conventional order.
var Columns = []string{
	ColID,
	ColChannelID,
	ColChannelTitle,
	ColChannelUsername,
	ColMessage,
	ColDate,
	ColMediaPath,
}

// Record is one row of the export. Date holds the raw value as read
// from the file; ParsedDate is populated during standardization, with
// Valid=false marking an unparseable date for later removal.
type Record struct {
	ID              string
	ChannelID       string
	ChannelTitle    string
	ChannelUsername string
	Message         string
	Date            string
	ParsedDate      sql.NullTime
	MediaPath       string
}

// Table is the ordered collection of records sharing the export schema.
type Table []Record

// ColumnIndex maps each required export column to its position in a
// concrete file's header.
type ColumnIndex struct {
	ID              int
	ChannelID       int
	ChannelTitle    int
	ChannelUsername int
	Message         int
	Date            int
	MediaPath       int
}

// ResolveColumns locates every required column in the given header.
// Header names are matched after trimming surrounding whitespace.
func ResolveColumns(header []string) (ColumnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	var idx ColumnIndex
	required := []struct {
		name string
		dst  *int
	}{
		{ColID, &idx.ID},
		{ColChannelID, &idx.ChannelID},
		{ColChannelTitle, &idx.ChannelTitle},
		{ColChannelUsername, &idx.ChannelUsername},
		{ColMessage, &idx.Message},
		{ColDate, &idx.Date},
		{ColMediaPath, &idx.MediaPath},
	}
	for _, col := range required {
		i, ok := pos[col.name]
		if !ok {
			return ColumnIndex{}, fmt.Errorf("required column %q not found in header", col.name)
		}
		*col.dst = i
	}

	return idx, nil
}
