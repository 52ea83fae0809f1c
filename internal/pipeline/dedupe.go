package pipeline

import (
	"github.com/masresha/tgclean/internal/sidefile"
	"github.com/masresha/tgclean/internal/table"
)

// Deduplicate keeps the first record per message ID, preserving the
// original order. For every dropped duplicate it removes the media
// side-file derived from (channel username, ID) under mediaDir;
// removal failures are logged and swallowed.
func (p *Pipeline) Deduplicate(data table.Table, mediaDir string) table.Table {
	seen := make(map[string]struct{}, len(data))
	kept := make(table.Table, 0, len(data))

	for _, rec := range data {
		if _, dup := seen[rec.ID]; dup {
			sidefile.Remove(mediaDir, rec.ChannelUsername, rec.ID, p.log)
			continue
		}
		seen[rec.ID] = struct{}{}
		kept = append(kept, rec)
	}

	p.log.Info("Duplicates removed", "rows", len(kept), "dropped", len(data)-len(kept))
	return kept
}
