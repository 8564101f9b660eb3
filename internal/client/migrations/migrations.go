// Package migrations embeds the goose migrations for the client-local
// sqlite store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
