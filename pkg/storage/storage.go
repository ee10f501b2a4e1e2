package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sw33tLie/catalogo/pkg/catalog"

	_ "modernc.org/sqlite"
)

// DefaultDBTimeout is how long SQLite waits on a locked database.
const DefaultDBTimeout = 5 * time.Second

type DB struct {
	sql *sql.DB
}

func Open(path string, busyTimeout ...time.Duration) (*DB, error) {
	timeout := DefaultDBTimeout
	if len(busyTimeout) > 0 && busyTimeout[0] > 0 {
		timeout = busyTimeout[0]
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, timeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS items (
  id            INTEGER PRIMARY KEY,
  position      INTEGER NOT NULL UNIQUE,
  name          TEXT NOT NULL,
  description   TEXT,
  creation_year TEXT,
  link          TEXT,
  tags          TEXT NOT NULL DEFAULT '[]',
  primary_tag   TEXT NOT NULL,
  imported_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_primary_tag ON items(primary_tag);
    `); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// ReplaceItems swaps the stored snapshot for items in one transaction.
// Input order is kept in the position column.
func (d *DB) ReplaceItems(ctx context.Context, items []catalog.Item) (n int, err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items(position, name, description, creation_year, link, tags, primary_tag) VALUES(?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, it := range items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, jerr := json.Marshal(tags)
		if jerr != nil {
			err = jerr
			return 0, err
		}
		if _, err = stmt.ExecContext(ctx, i, it.Name, nullIfEmpty(it.Description), nullIfEmpty(it.CreationYear), nullIfEmpty(it.Link), string(tagsJSON), it.PrimaryTag()); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return len(items), nil
}

// ListItems returns the stored snapshot in its original order.
func (d *DB) ListItems(ctx context.Context) ([]catalog.Item, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT name, description, creation_year, link, tags FROM items ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Item, 0)
	for rows.Next() {
		var (
			it                     catalog.Item
			descNS, yearNS, linkNS sql.NullString
			tagsJSON               string
		)
		if err := rows.Scan(&it.Name, &descNS, &yearNS, &linkNS, &tagsJSON); err != nil {
			return nil, err
		}
		it.Description = descNS.String
		it.CreationYear = yearNS.String
		it.Link = linkNS.String

		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return nil, fmt.Errorf("item %q: bad tags column: %w", it.Name, err)
		}
		if len(tags) > 0 {
			it.Tags = tags
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryStats counts the stored items of one primary-tag bucket.
type CategoryStats struct {
	Category  string
	ItemCount int
}

// GetStats returns per-bucket counts in first-seen order.
func (d *DB) GetStats(ctx context.Context) ([]CategoryStats, error) {
	query := `
		SELECT
			primary_tag,
			COUNT(*)
		FROM
			items
		GROUP BY
			primary_tag
		ORDER BY
			MIN(position);
	`
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []CategoryStats
	for rows.Next() {
		var s CategoryStats
		if err := rows.Scan(&s.Category, &s.ItemCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
