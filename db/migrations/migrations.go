package migrations

import "embed"

// FS holds the SQL migration files in this directory, served to
// golang-migrate through its iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the current binary expects.
const Version = 1
