// Package migrations embeds the SQL schema migrations so the server can
// apply them at startup when the postgres backend is selected.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
