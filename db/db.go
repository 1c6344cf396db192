package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"gfg-scraper/models"

	_ "github.com/lib/pq"
)

// DB wraps the database connection used for scrape-run history
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection
func NewDB() (*DB, error) {
	// Get connection string from environment variable
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		// Try to build from individual components
		host := getEnvOrDefault("DB_HOST", "localhost")
		port := getEnvOrDefault("DB_PORT", "5432")
		user := getEnvOrDefault("DB_USER", "gfg_scraper")
		password := getEnvOrDefault("DB_PASSWORD", "")
		dbname := getEnvOrDefault("DB_NAME", "gfg_scraper")
		sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables if they don't exist
func (db *DB) initSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS scrape_runs (
			id SERIAL PRIMARY KEY,
			started_at TIMESTAMP NOT NULL DEFAULT NOW(),
			finished_at TIMESTAMP,
			topics_count INT NOT NULL DEFAULT 0,
			failed_count INT NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create scrape_runs table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS scrape_topics (
			id SERIAL PRIMARY KEY,
			run_id INT NOT NULL REFERENCES scrape_runs(id),
			url TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			sections_count INT NOT NULL DEFAULT 0,
			articles_count INT NOT NULL DEFAULT 0,
			failed_fetches INT NOT NULL DEFAULT 0,
			output_file TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create scrape_topics table: %w", err)
	}

	return nil
}

// CreateRun inserts a new scrape run and returns its ID
func (db *DB) CreateRun() (int, error) {
	var id int
	err := db.conn.QueryRow(`
		INSERT INTO scrape_runs (started_at) VALUES ($1) RETURNING id
	`, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// FinishRun records the final counters for a run
func (db *DB) FinishRun(runID, topics, failed int) error {
	_, err := db.conn.Exec(`
		UPDATE scrape_runs
		SET finished_at = $1, topics_count = $2, failed_count = $3
		WHERE id = $4
	`, time.Now(), topics, failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// RecordTopic stores the outcome of one topic scrape
func (db *DB) RecordTopic(runID int, r models.TopicResult) error {
	_, err := db.conn.Exec(`
		INSERT INTO scrape_topics (run_id, url, title, status, sections_count, articles_count, failed_fetches, output_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, runID, r.URL, r.Title, r.Status, r.Sections, r.Articles, r.FailedFetches, r.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to record topic: %w", err)
	}
	return nil
}
