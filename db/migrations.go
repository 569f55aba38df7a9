// Package db carries the embedded SQL schema migrations.
package db

import "embed"

// Migrations holds the schema migration files applied by devregctl.
//
//go:embed migrations
var Migrations embed.FS
