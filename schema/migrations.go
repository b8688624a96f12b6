// Package schema contains embedded migration files and request schemas.
package schema

import "embed"

// MigrationsFS contains all SQL migration files from pgmigrations directory.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS holding the .sql files.
const MigrationsDir = "pgmigrations"

// TodoJSONSchema validates todo request bodies for create and update.
//
//go:embed jsonschemas/todo.schema.json
var TodoJSONSchema []byte
