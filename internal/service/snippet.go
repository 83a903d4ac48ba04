// Package service contains the business logic layer of the application.
//
// The layering mirrors the usual three-tier split, with the GUI controller
// standing in for the transport layer:
//
//	UI controller (presentation)  → gestures, dialogs, view refresh
//	Service (business layer)      → validates, enforces rules, orchestrates
//	Repository (data layer)       → reads/writes the SQLite file
//
// The service takes a repository.SnippetRepository interface, not the
// concrete sqlite.DB, so tests inject an in-memory mock and the UI never
// touches SQL.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/snipdesk/internal/apperror"
	"github.com/sakif/snipdesk/internal/model"
	"github.com/sakif/snipdesk/internal/repository"
)

const (
	MaxTitleLength = 100
	MaxCodeLength  = 100000 // ~100KB of code
)

// SnippetService handles business logic for code snippets.
type SnippetService struct {
	repo   repository.SnippetRepository
	logger *slog.Logger
}

// NewSnippetService creates a new SnippetService. The caller decides which
// repository implementation to inject (SQLite, or a mock in tests).
func NewSnippetService(repo repository.SnippetRepository, logger *slog.Logger) *SnippetService {
	return &SnippetService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and saves a new snippet.
//
// Title and code are required; a blank language falls back to the "text"
// sentinel inside model.New. The assigned id is not returned — the UI reloads
// the full list after every mutation and sees it there.
func (s *SnippetService) Create(ctx context.Context, title, code, language, tags, description string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return apperror.ValidationFailed("title", "snippet title is required")
	}
	if len(title) > MaxTitleLength {
		return apperror.ValidationFailed("title",
			fmt.Sprintf("snippet title must be %d characters or less", MaxTitleLength))
	}
	if strings.TrimSpace(code) == "" {
		return apperror.ValidationFailed("code", "snippet code is required")
	}
	if len(code) > MaxCodeLength {
		return apperror.ValidationFailed("code",
			fmt.Sprintf("code must be %d characters or less", MaxCodeLength))
	}

	snippet := model.New(title, code, strings.TrimSpace(language), tags, strings.TrimSpace(description))

	if err := s.repo.Create(ctx, &snippet); err != nil {
		s.logger.Error("failed to create snippet",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("creating snippet: %w", err)
	}

	s.logger.Info("snippet created",
		slog.String("title", snippet.Title),
		slog.String("language", snippet.Language),
	)

	return nil
}

// ListAll retrieves every stored snippet, freshly constructed from the
// database. The caller replaces any previous in-memory list wholesale.
func (s *SnippetService) ListAll(ctx context.Context) ([]model.Snippet, error) {
	snippets, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list snippets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	return snippets, nil
}

// Delete removes a snippet by its assigned id. A missing id is a no-op, not
// an error.
func (s *SnippetService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.ValidationFailed("id", "snippet id must be positive")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete snippet",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting snippet: %w", err)
	}

	s.logger.Info("snippet deleted", slog.Int64("id", id))
	return nil
}
