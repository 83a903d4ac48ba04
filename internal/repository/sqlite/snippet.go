package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/snipdesk/internal/model"
	"github.com/sakif/snipdesk/internal/repository"
)

// Compile-time check that *DB implements repository.SnippetRepository.
var _ repository.SnippetRepository = (*DB)(nil)

// Create inserts a new snippet row from the five non-id fields.
//
// The auto-assigned id is deliberately not written back into the caller's
// struct: every mutation is followed by a full ListAll reload, which is where
// the fresh id becomes visible. Each insert commits immediately (SQLite
// autocommit), so there is nothing to flush on success.
func (db *DB) Create(ctx context.Context, snippet *model.Snippet) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO snippets (title, code, language, tags, description)
		 VALUES (?, ?, ?, ?, ?)`,
		snippet.Title,
		snippet.Code,
		snippet.Language,
		snippet.Tags,
		snippet.Description,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating snippet: %w", err)
	}
	return nil
}

// ListAll retrieves every snippet as a fully materialized slice.
//
// There is intentionally no ORDER BY: row order is whatever the engine
// returns (insertion order in practice, but not guaranteed), matching the
// list view's storage-defined ordering.
func (db *DB) ListAll(ctx context.Context) ([]model.Snippet, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, code, language, tags, description FROM snippets`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing snippets: %w", err)
	}
	defer rows.Close()

	var snippets []model.Snippet
	for rows.Next() {
		var (
			id          int64
			title, code string
			// language, tags and description have no NOT NULL constraint,
			// so rows written by other tools may carry NULLs.
			language, tags, description sql.NullString
		)
		if err := rows.Scan(&id, &title, &code, &language, &tags, &description); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snippet row: %w", err)
		}
		snippets = append(snippets, model.FromRow(
			id, title, code,
			language.String, tags.String, description.String,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating snippets: %w", err)
	}

	return snippets, nil
}

// Delete removes the row with the matching id and commits immediately.
//
// Deleting an id that does not exist is a silent no-op — unlike a lookup,
// "already gone" is indistinguishable from "just deleted" and the caller
// treats both the same, so RowsAffected is not checked.
func (db *DB) Delete(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM snippets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting snippet %d: %w", id, err)
	}
	return nil
}
