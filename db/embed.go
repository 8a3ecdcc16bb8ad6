package db

import "embed"

// MigrationsFS embeds the goose SQL migrations so the binaries carry
// their own schema.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
