// Package migrations embeds the SQL schema for every supported database dialect.
package migrations

import "embed"

// FS holds one directory of sql-migrate files per dialect
//
//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
