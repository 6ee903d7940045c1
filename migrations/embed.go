// Package migrations embeds the goose SQL migrations so the migrate command
// and integration tests apply exactly the files shipped with the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
