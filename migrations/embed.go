// Package migrations holds the goose SQL migrations applied at startup and in tests.
package migrations

import "embed"

// FS contains every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
