// Package migrations embeds the SQL schema migrations applied by goose at
// store construction.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
