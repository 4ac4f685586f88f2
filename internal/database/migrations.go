package database

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist. Bill records are immutable
// documents: items and participants are stored as JSON, never updated.
const schema = `
CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    tax_rate NUMERIC(5,2) NOT NULL,
    is_equally BOOLEAN NOT NULL,
    items JSONB NOT NULL,
    participants JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills(created_at DESC);
`

// Migrate applies the schema
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
