package repository

import (
	"context"

	"github.com/sakif/snipdesk/internal/model"
)

// SnippetRepository is the storage contract for snippets.
//
// Create does not report the assigned id back to the caller; the UI always
// reloads the full list after a mutation, so the fresh id is observed through
// ListAll. Delete of an id that does not exist is a silent no-op.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	ListAll(ctx context.Context) ([]model.Snippet, error)
	Delete(ctx context.Context, id int64) error
}
