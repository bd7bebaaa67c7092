package db

import _ "embed"

// Schema is the SQL that creates the finance tables and seeds the shared
// categories. Statements are idempotent.
//
//go:embed schema.sql
var Schema string
