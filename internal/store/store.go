// Package store implements the embedded relation store for the LATAM
// trade catalogue.
//
// It uses SQLite with FTS5 full-text search. The database is opened at
// startup, migrated, seeded from the built-in catalogue when empty, and
// from then on only read. The single *sql.DB handle is owned by the
// Store and released by Close.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ─── Types ───────────────────────────────────────────────────────────────────

// Country is one entry in the country reference table.
type Country struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Agreement is a trade agreement in the catalogue.
type Agreement struct {
	ID       int64    `json:"-"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Parties  []string `json:"parties"`
	Status   string   `json:"status"`
	Signed   string   `json:"signed,omitempty"`
	InForce  string   `json:"in_force,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	FullText string   `json:"full_text,omitempty"`
}

// TransferRule is a bilateral data-transfer rule between two entities.
// Stored keyed by the ordered pair (source, dest); the relation itself
// is unordered.
type TransferRule struct {
	ID             int64    `json:"-"`
	Source         string   `json:"source"`
	Dest           string   `json:"dest"`
	AdequacyStatus string   `json:"adequacy_status"`
	Mechanisms     []string `json:"mechanisms,omitempty"`
	Framework      string   `json:"framework,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// Recognition is one mutual-recognition arrangement between two
// entities in a specific domain. A pair may hold several arrangements,
// one per domain.
type Recognition struct {
	ID            int64  `json:"-"`
	CountryA      string `json:"country_a"`
	CountryB      string `json:"country_b"`
	Domain        string `json:"domain"`
	Description   string `json:"description"`
	AgreementCode string `json:"agreement_code,omitempty"`
	AgreementName string `json:"agreement_name,omitempty"`
}

// DigitalObligation is one digital-trade obligation from a
// multi-party agreement.
type DigitalObligation struct {
	ID            int64    `json:"-"`
	AgreementCode string   `json:"agreement_code"`
	AgreementName string   `json:"agreement_name,omitempty"`
	Category      string   `json:"category"`
	Obligation    string   `json:"obligation"`
	Countries     []string `json:"countries"`
	Binding       bool     `json:"binding"`
}

// SearchHit is an agreement matched by full-text search, with the
// engine's BM25 rank and an extracted snippet.
type SearchHit struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Snippet string  `json:"snippet"`
	Rank    float64 `json:"rank"`
}

// ListOptions filters ListAgreements. Zero values mean no filter.
type ListOptions struct {
	Country string
	Status  string
	Topic   string
}

// Stats holds aggregate catalogue counts.
type Stats struct {
	Agreements         int `json:"agreements"`
	Countries          int `json:"countries"`
	TransferRules      int `json:"transfer_rules"`
	Recognitions       int `json:"mutual_recognition"`
	DigitalObligations int `json:"digital_obligations"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".latam-trade-mcp"),
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the read-only relation store backed by SQLite + FTS5.
type Store struct {
	db  *sql.DB
	cfg Config
}

// Open creates the data directory if needed, opens SQLite with WAL
// mode, runs migrations, and seeds the catalogue when the database is
// empty.
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "trade.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	if err := s.seedIfEmpty(); err != nil {
		return nil, fmt.Errorf("store: seed: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS countries (
			code   TEXT PRIMARY KEY,
			name   TEXT NOT NULL,
			region TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS agreements (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			code      TEXT NOT NULL UNIQUE,
			name      TEXT NOT NULL,
			parties   TEXT NOT NULL,
			status    TEXT NOT NULL,
			signed    TEXT NOT NULL DEFAULT '',
			in_force  TEXT NOT NULL DEFAULT '',
			topics    TEXT NOT NULL DEFAULT '',
			summary   TEXT NOT NULL DEFAULT '',
			full_text TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_agreements_status ON agreements(status);

		CREATE VIRTUAL TABLE IF NOT EXISTS agreements_fts USING fts5(
			name,
			summary,
			full_text,
			content='agreements',
			content_rowid='id'
		);

		CREATE TABLE IF NOT EXISTS transfer_rules (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			source          TEXT NOT NULL,
			dest            TEXT NOT NULL,
			adequacy_status TEXT NOT NULL,
			mechanisms      TEXT NOT NULL DEFAULT '',
			framework       TEXT NOT NULL DEFAULT '',
			notes           TEXT NOT NULL DEFAULT '',
			UNIQUE (source, dest)
		);

		CREATE INDEX IF NOT EXISTS idx_transfer_dest ON transfer_rules(dest, source);

		CREATE TABLE IF NOT EXISTS mutual_recognition (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			country_a      TEXT NOT NULL,
			country_b      TEXT NOT NULL,
			domain         TEXT NOT NULL,
			description    TEXT NOT NULL,
			agreement_code TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_recognition_a ON mutual_recognition(country_a, country_b);
		CREATE INDEX IF NOT EXISTS idx_recognition_b ON mutual_recognition(country_b, country_a);

		CREATE TABLE IF NOT EXISTS digital_obligations (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			agreement_code TEXT NOT NULL,
			category       TEXT NOT NULL,
			obligation     TEXT NOT NULL,
			countries      TEXT NOT NULL,
			binding        INTEGER NOT NULL DEFAULT 1
		);

		CREATE INDEX IF NOT EXISTS idx_digital_agreement ON digital_obligations(agreement_code, category);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS triggers (idempotent). The catalogue is only written during
	// seeding, but the triggers keep the index in sync regardless.
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='agreements_fts_insert'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		triggers := `
			CREATE TRIGGER agreements_fts_insert AFTER INSERT ON agreements BEGIN
				INSERT INTO agreements_fts(rowid, name, summary, full_text)
				VALUES (new.id, new.name, new.summary, new.full_text);
			END;

			CREATE TRIGGER agreements_fts_delete AFTER DELETE ON agreements BEGIN
				INSERT INTO agreements_fts(agreements_fts, rowid, name, summary, full_text)
				VALUES ('delete', old.id, old.name, old.summary, old.full_text);
			END;

			CREATE TRIGGER agreements_fts_update AFTER UPDATE ON agreements BEGIN
				INSERT INTO agreements_fts(agreements_fts, rowid, name, summary, full_text)
				VALUES ('delete', old.id, old.name, old.summary, old.full_text);
				INSERT INTO agreements_fts(rowid, name, summary, full_text)
				VALUES (new.id, new.name, new.summary, new.full_text);
			END;
		`
		if _, err := s.db.Exec(triggers); err != nil {
			return err
		}
	}

	return nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// joinList serializes a code list for the denormalized comma-joined columns.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

// splitList parses a comma-joined column back into a slice. Empty
// column yields nil, not [""].
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// likeEscaper neutralizes LIKE metacharacters in caller-supplied tokens
// so patterns built from them match literally under ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// sanitizeFTS wraps each word in quotes for safe FTS5 queries.
// "data flows" → `"data" "flows"`
func sanitizeFTS(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		w = strings.Trim(w, `"`)
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " ")
}
