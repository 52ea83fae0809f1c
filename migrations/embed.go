// Package migrations embeds the SQL migration files for the cleaned
// messages database.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
