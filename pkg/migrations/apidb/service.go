// Package apidb holds all the migrations for the API database
package apidb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the API database.
// File names are zero-padded because migrations are ordered by name.
var Migrations = migrate.NewMigrations()
