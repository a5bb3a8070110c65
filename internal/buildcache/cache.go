// Package buildcache persists compiled modules keyed by a hash of
// their source text, in a single-table SQLite database. Since the
// compile pipeline is a pure, deterministic, single-shot transform
// (spec.md §5), identical source never needs recompiling.
package buildcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"

	_ "modernc.org/sqlite" // sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS cache (
	source_hash TEXT PRIMARY KEY,
	build_id    TEXT NOT NULL,
	module      BLOB NOT NULL,
	compiled_at TEXT NOT NULL
)`

// Cache wraps a SQLite-backed table of compiled module bytes.
type Cache struct {
	db *sql.DB
}

// Open creates or attaches to the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening build cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing build cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Entry is one cached compilation result.
type Entry struct {
	SourceHash string
	BuildID    string
	Module     []byte
	CompiledAt string
}

// HashSource derives the cache key for a piece of source text.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached module for a source hash, or ok=false if
// nothing has been cached for it yet.
func (c *Cache) Lookup(sourceHash string) (Entry, bool, error) {
	var e Entry
	e.SourceHash = sourceHash
	row := c.db.QueryRow(
		`SELECT build_id, module, compiled_at FROM cache WHERE source_hash = ?`, sourceHash)
	err := row.Scan(&e.BuildID, &e.Module, &e.CompiledAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("looking up build cache entry: %w", err)
	}
	return e, true, nil
}

// Store records a freshly compiled module under sourceHash, stamping
// it with a new build id and the current time, and returns the id
// stamped (for the debug dump's "; build <uuid>" header line).
func (c *Cache) Store(sourceHash string, module []byte) (string, error) {
	buildID := uuid.NewString()
	compiledAt := strftime.Format("%Y-%m-%dT%H:%M:%S", time.Now())

	_, err := c.db.Exec(
		`INSERT INTO cache (source_hash, build_id, module, compiled_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET build_id=excluded.build_id, module=excluded.module, compiled_at=excluded.compiled_at`,
		sourceHash, buildID, module, compiledAt)
	if err != nil {
		return "", fmt.Errorf("storing build cache entry: %w", err)
	}
	return buildID, nil
}
