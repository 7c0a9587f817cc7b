// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lbptrace/lbp"
	"github.com/katalvlaran/lbptrace/similarity"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS signatures (
		id         TEXT PRIMARY KEY,
		label      TEXT NOT NULL,
		points     INTEGER NOT NULL,
		cells      INTEGER NOT NULL,
		histogram  TEXT NOT NULL,
		created_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS signatures_label_idx ON signatures (label)`,
}

// Signature is a stored histogram with its provenance.
type Signature struct {
	ID        uuid.UUID
	Label     string
	Points    int
	Cells     int
	Histogram lbp.Histogram
	CreatedAt time.Time
}

// signatureRow mirrors the table layout.
type signatureRow struct {
	ID        string `db:"id"`
	Label     string `db:"label"`
	Points    int    `db:"points"`
	Cells     int    `db:"cells"`
	Histogram string `db:"histogram"`
	CreatedAt int64  `db:"created_at"`
}

// Store is a signature repository. It is safe for concurrent use.
type Store struct {
	db *sqlx.DB
}

// Open prepares a store for driver and dsn without connecting.
// Call Migrate before first use.
func Open(driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One writer at a time; also keeps ":memory:" on a single connection.
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying handle.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate connects and creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("store: ping: %w", err)
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

// Save inserts sig. A nil ID is replaced by a fresh UUID and a zero
// CreatedAt by the current time; both are written back into sig.
func (s *Store) Save(ctx context.Context, sig *Signature) error {
	if sig.ID == uuid.Nil {
		sig.ID = uuid.New()
	}
	if sig.CreatedAt.IsZero() {
		sig.CreatedAt = time.Now()
	}
	sig.CreatedAt = time.Unix(0, sig.CreatedAt.UnixNano()).UTC()

	payload, err := json.Marshal(sig.Histogram.Slice())
	if err != nil {
		return fmt.Errorf("store: encode histogram: %w", err)
	}
	q := s.db.Rebind(`INSERT INTO signatures (id, label, points, cells, histogram, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q,
		sig.ID.String(), sig.Label, sig.Points, sig.Cells, string(payload), sig.CreatedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("store: insert %s: %w", sig.ID, err)
	}
	lbp.Logger().Info("store: signature saved", "id", sig.ID, "label", sig.Label, "cells", sig.Cells)

	return nil
}

// Get loads the signature with the given ID or returns ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Signature, error) {
	var row signatureRow
	q := s.db.Rebind(`SELECT id, label, points, cells, histogram, created_at
		FROM signatures WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, q, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return row.signature()
}

// List returns every signature ordered by creation time, then ID.
func (s *Store) List(ctx context.Context) ([]Signature, error) {
	var rows []signatureRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, label, points, cells, histogram, created_at
		FROM signatures ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	out := make([]Signature, 0, len(rows))
	for _, r := range rows {
		sig, err := r.signature()
		if err != nil {
			return nil, err
		}
		out = append(out, *sig)
	}
	return out, nil
}

// References returns every stored signature as a classification reference.
func (s *Store) References(ctx context.Context) ([]similarity.Reference, error) {
	sigs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]similarity.Reference, len(sigs))
	for i, sig := range sigs {
		refs[i] = similarity.Reference{Label: sig.Label, Histogram: sig.Histogram}
	}
	return refs, nil
}

// Delete removes the signature with the given ID or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM signatures WHERE id = ?`), id.String())
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (r signatureRow) signature() (*Signature, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("store: row id %q: %w", r.ID, err)
	}
	var counts []int
	if err := json.Unmarshal([]byte(r.Histogram), &counts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptHistogram, id, err)
	}
	if len(counts) != lbp.Buckets {
		return nil, fmt.Errorf("%w: %s has %d buckets", ErrCorruptHistogram, id, len(counts))
	}
	sig := &Signature{
		ID:        id,
		Label:     r.Label,
		Points:    r.Points,
		Cells:     r.Cells,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: %s bucket %d is negative", ErrCorruptHistogram, id, i)
		}
		sig.Histogram[i] = c
	}
	return sig, nil
}
