// Package migrations встраивает SQL-миграции для goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
