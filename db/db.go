package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// DB is the global database connection pool.
var DB *sql.DB

// Init opens the SQLite database at path and creates tables if they don't
// exist. The parent directory is created when missing.
func Init(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create database directory: %w", err)
		}
	}

	var err error
	DB, err = sql.Open(dbDriver, path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// createTables is defined in migrate.go
	if err := createTables(); err != nil {
		return err
	}

	log.Println("Database connection initialized successfully.")
	return nil
}

// Close closes the connection pool. Safe to call when Init never ran.
func Close() {
	if DB != nil {
		DB.Close()
	}
}
