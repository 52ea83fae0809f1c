// Package sidefile maps export records to their media files on disk.
//
// The only link between a record and its media file is the naming
// convention implemented by Name; there is no foreign key. Callers
// must not assume a file exists for every record.
package sidefile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Name returns the conventional media file name for a record,
// built from its channel username and message ID.
func Name(channelUsername, id string) string {
	return fmt.Sprintf("%s_%s.jpg", channelUsername, id)
}

// Remove deletes the media file for (channelUsername, id) under dir if
// it exists. Failures are logged and swallowed; removal is best-effort
// and must never abort the surrounding run.
func Remove(dir, channelUsername, id string, log *slog.Logger) {
	path := filepath.Join(dir, Name(channelUsername, id))

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			log.Error("Failed to stat media file", "path", path, "error", err)
		}
		return
	}

	if err := os.Remove(path); err != nil {
		log.Error("Failed to remove duplicate media file", "path", path, "error", err)
		return
	}

	log.Info("Removed duplicate media file", "path", path)
}
