package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

// PostgresStore persists the state blob in a single-row table, for users who
// keep their data on a shared Postgres instance. Same slot contract as the
// SQLite store.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Credentials belong in the environment, .pgpass, or the OS
// keyring.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.Scheme == "" {
		// Keyword/value format: host=... password=... dbname=...
		return strings.Contains(connStr, "password=")
	}
	if u.User != nil {
		if _, set := u.User.Password(); set {
			return true
		}
	}
	return strings.Contains(u.RawQuery, "password=")
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data BYTEA NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create app_state table: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Load() ([]byte, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRow(`SELECT data FROM app_state WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	return data, nil
}

func (s *PostgresStore) Save(data []byte) error {
	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(`INSERT INTO app_state (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`, data)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
