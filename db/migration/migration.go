// Package migration embeds the database schema.
package migration

import _ "embed"

// Up creates the ledger schema.
//
//go:embed 000001_init.up.sql
var Up string

// Down drops the ledger schema.
//
//go:embed 000001_init.down.sql
var Down string
