// Package database holds the SQL schema migrations, embedded into the binaries
// that apply them.
package database

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the .sql files.
const MigrationsDir = "migrations"
