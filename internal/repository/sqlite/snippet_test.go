package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sakif/snipdesk/internal/model"
)

// Tests use ":memory:" for a fresh, isolated database per test, except where
// a real file is needed to prove the create-table step is idempotent across
// reopens.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestSnippet(t *testing.T, db *DB, title, code string) {
	t.Helper()
	s := model.New(title, code, "python", "", "")
	if err := db.Create(context.Background(), &s); err != nil {
		t.Fatalf("failed to create test snippet: %v", err)
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	s := model.New("Hello", "print('hi')", "python", "demo", "greeting")
	if err := db.Create(context.Background(), &s); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The assigned id is not fed back on insert; it is observed by reloading.
	if s.Saved() {
		t.Error("Create() should not write the id back into the caller's snippet")
	}

	all, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListAll() returned %d snippets, want 1", len(all))
	}

	got := all[0]
	if !got.Saved() {
		t.Error("listed snippet should carry an assigned id")
	}
	if got.Title != "Hello" || got.Code != "print('hi')" ||
		got.Language != "python" || got.Tags != "demo" || got.Description != "greeting" {
		t.Errorf("listed snippet = %+v, want original fields back", got)
	}
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	db := newTestDB(t)

	createTestSnippet(t, db, "first", "a = 1")
	createTestSnippet(t, db, "second", "b = 2")

	all, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll() returned %d snippets, want 2", len(all))
	}
	if all[0].ID == all[1].ID {
		t.Errorf("both snippets share id %d, want unique ids", all[0].ID)
	}
}

func TestListAll_Empty(t *testing.T) {
	db := newTestDB(t)

	snippets, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("ListAll() returned %d snippets, want 0", len(snippets))
	}
}

func TestListAll_ReturnsAll(t *testing.T) {
	db := newTestDB(t)

	createTestSnippet(t, db, "first", "a = 1")
	createTestSnippet(t, db, "second", "b = 2")
	createTestSnippet(t, db, "third", "c = 3")

	snippets, err := db.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(snippets) != 3 {
		t.Errorf("ListAll() returned %d snippets, want 3", len(snippets))
	}
}

func TestDelete_RemovesRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestSnippet(t, db, "first", "a = 1")
	createTestSnippet(t, db, "second", "b = 2")

	all, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}

	// Delete the first snippet by its assigned id.
	var firstID int64
	for _, s := range all {
		if s.Title == "first" {
			firstID = s.ID
		}
	}
	if firstID == 0 {
		t.Fatal("setup: could not find snippet titled 'first'")
	}

	if err := db.Delete(ctx, firstID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	remaining, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() after delete error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("ListAll() after delete returned %d, want 1", len(remaining))
	}
	if remaining[0].Title != "second" || remaining[0].Code != "b = 2" {
		t.Errorf("remaining snippet = %+v, want the second snippet", remaining[0])
	}
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestSnippet(t, db, "keep me", "x = 42")

	if err := db.Delete(ctx, 9999); err != nil {
		t.Fatalf("Delete() of missing id should be a no-op, got error = %v", err)
	}

	all, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll() after no-op delete returned %d, want 1", len(all))
	}
}

// TestNew_IdempotentOnExistingFile proves that reopening the same database
// file recreates nothing and loses nothing.
func TestNew_IdempotentOnExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.db")
	ctx := context.Background()

	db1, err := New(path)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	createTestSnippet(t, db1, "survivor", "still here")
	if err := db1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db2, err := New(path)
	if err != nil {
		t.Fatalf("second New() on existing file error = %v", err)
	}
	t.Cleanup(func() { db2.Close() })

	all, err := db2.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() after reopen error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListAll() after reopen returned %d, want 1", len(all))
	}
	if all[0].Title != "survivor" {
		t.Errorf("Title after reopen = %q, want %q", all[0].Title, "survivor")
	}
}
