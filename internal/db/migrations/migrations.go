// Package migrations embeds the goose SQL migrations of the build store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
