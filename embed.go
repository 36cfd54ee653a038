// Package subenum holds assets embedded into the binary, currently the
// database migrations applied by the migrate command and the integration
// tests.
package subenum

import "embed"

// Migrations contains the goose SQL migrations for the enumerations schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
