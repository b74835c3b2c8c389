// Package migrations embeds the goose SQL migrations applied by
// postgres.EnsureSchema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
