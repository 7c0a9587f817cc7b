// Package store persists computed LBP signatures in a SQL database.
//
// Two drivers are wired: "sqlite" (modernc.org/sqlite, pure Go, file or
// in-memory) and "postgres" (github.com/lib/pq). Queries are written with
// '?' placeholders and rebound per driver by sqlx.
//
// Schema (created by Migrate):
//
//	signatures(id TEXT PK, label TEXT, points INTEGER, cells INTEGER,
//	           histogram TEXT, created_at BIGINT)
//
// The histogram column holds a JSON array of exactly 512 counts;
// created_at is Unix nanoseconds (UTC).
package store
