package db

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'worker',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// InitDB opens the accounts database and bootstraps the schema.
func InitDB(dsn string) *sql.DB {
	database, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err = database.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err = database.Exec(schema); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("Database initialized")
	return database
}
