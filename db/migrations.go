// Package db embeds the SQL migrations for both supported dialects.
package db

import "embed"

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var MigrationsFS embed.FS
