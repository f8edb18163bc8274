package migrations

import "github.com/uptrace/bun/migrate"

// DbMigrations -
var DbMigrations = migrate.NewMigrations()
