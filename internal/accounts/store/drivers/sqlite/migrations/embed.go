// Package migrations embeds the sqlite schema migration files so they compile
// into the binary and can be applied with golang-migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
