// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evidence persists fetched interaction and pathway results in a
// local SQLite database with run provenance. The store is explicit: the
// fetchers never consult it, and rows enter it only when a command saves
// them.
package evidence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pathway-engine/pkg/types"
)

const dbFile = "evidence.db"

// Run kinds stored in the runs table.
const (
	KindInteractions = "interactions"
	KindMappings     = "mappings"
	KindParticipants = "participants"
)

// Store manages the evidence SQLite database.
type Store struct {
	db          *sql.DB
	evidenceDir string
	maxResults  int
}

// NewStore opens or creates the evidence database at
// evidenceDir/evidence.db, creating the schema if it does not exist.
func NewStore(cfg types.EvidenceConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.EvidenceDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating evidence directory: %w", err)
	}

	dbPath := filepath.Join(cfg.EvidenceDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{
		db:          db,
		evidenceDir: cfg.EvidenceDir,
		maxResults:  maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			run_id TEXT NOT NULL REFERENCES runs(id),
			protein TEXT NOT NULL,
			partner TEXT NOT NULL,
			source TEXT NOT NULL,
			UNIQUE(protein, partner, source)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_protein ON interactions(protein)`,
		`CREATE TABLE IF NOT EXISTS pathway_mappings (
			run_id TEXT NOT NULL REFERENCES runs(id),
			identifier TEXT NOT NULL,
			pathway TEXT NOT NULL,
			pathway_id TEXT NOT NULL,
			source TEXT NOT NULL,
			UNIQUE(identifier, pathway_id, source)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_mappings_identifier ON pathway_mappings(identifier)`,
		`CREATE TABLE IF NOT EXISTS participants (
			run_id TEXT NOT NULL REFERENCES runs(id),
			pathway_id TEXT NOT NULL,
			member TEXT NOT NULL,
			source TEXT NOT NULL,
			UNIQUE(pathway_id, member, source)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_participants_pathway ON participants(pathway_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// RecordInteractions stores a fetched partner list under a new run and
// returns the run ID. A row already present under its natural key keeps a
// single copy; its run_id moves to the new run.
func (s *Store) RecordInteractions(ctx context.Context, protein string, partners []types.Partner) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRun(ctx, tx, runID, KindInteractions, protein); err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO interactions (run_id, protein, partner, source)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(protein, partner, source) DO UPDATE SET run_id=excluded.run_id`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range partners {
		if _, err := stmt.ExecContext(ctx, runID, protein, p.Symbol, p.Source); err != nil {
			return "", fmt.Errorf("inserting partner %s: %w", p.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RecordPathwayMappings stores pathway search results under a new run and
// returns the run ID. The query string records what the user asked for,
// typically the identifier list.
func (s *Store) RecordPathwayMappings(ctx context.Context, query, source string, mappings []types.PathwayMapping) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRun(ctx, tx, runID, KindMappings, query); err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pathway_mappings (run_id, identifier, pathway, pathway_id, source)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(identifier, pathway_id, source) DO UPDATE SET
			run_id=excluded.run_id, pathway=excluded.pathway`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range mappings {
		if _, err := stmt.ExecContext(ctx, runID, m.Identifier, m.Pathway, m.PathwayID, source); err != nil {
			return "", fmt.Errorf("inserting mapping %s/%s: %w", m.Identifier, m.PathwayID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RecordParticipants stores pathway member results under a new run and
// returns the run ID.
func (s *Store) RecordParticipants(ctx context.Context, query, source string, participants []types.Participant) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRun(ctx, tx, runID, KindParticipants, query); err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO participants (run_id, pathway_id, member, source)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(pathway_id, member, source) DO UPDATE SET run_id=excluded.run_id`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range participants {
		if _, err := stmt.ExecContext(ctx, runID, p.PathwayID, p.Member, source); err != nil {
			return "", fmt.Errorf("inserting participant %s/%s: %w", p.PathwayID, p.Member, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

func insertRun(ctx context.Context, tx *sql.Tx, runID, kind, query string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, kind, query, created_at) VALUES (?, ?, ?, ?)`,
		runID, kind, query, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}
