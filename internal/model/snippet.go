// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain records with no behaviour
// beyond construction and projection.
package model

import (
	"fmt"
	"strings"
)

// DefaultLanguage is the sentinel language tag used when the user leaves
// the language field blank.
const DefaultLanguage = "text"

// Snippet represents a saved code snippet.
//
// ID is zero for a transient (not-yet-saved) snippet; SQLite assigns it on
// insert via INTEGER PRIMARY KEY auto-increment, and it only becomes visible
// here when the row is read back through ListAll.
type Snippet struct {
	ID          int64
	Title       string
	Code        string
	Language    string
	Tags        string
	Description string
}

// New constructs a transient snippet (ID zero, not yet persisted).
// A blank language falls back to DefaultLanguage.
func New(title, code, language, tags, description string) Snippet {
	if language == "" {
		language = DefaultLanguage
	}
	return Snippet{
		Title:       title,
		Code:        code,
		Language:    language,
		Tags:        tags,
		Description: description,
	}
}

// FromRow constructs a persisted snippet from stored column values.
// Only the storage layer should call this; it is the one place an ID
// enters the program.
func FromRow(id int64, title, code, language, tags, description string) Snippet {
	return Snippet{
		ID:          id,
		Title:       title,
		Code:        code,
		Language:    language,
		Tags:        tags,
		Description: description,
	}
}

// Saved reports whether the snippet has been persisted (has an assigned ID).
func (s Snippet) Saved() bool {
	return s.ID != 0
}

// Label renders the one-line list entry for the snippet: "[PYTHON] Hello".
// The language is upper-cased; the title is shown as stored.
func (s Snippet) Label() string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(s.Language), s.Title)
}

// Detail renders the full plain-text block shown in the detail pane:
// title, language, tags, description, then the code verbatim.
func (s Snippet) Detail() string {
	return fmt.Sprintf(
		"Title: %s\nLanguage: %s\nTags: %s\nDescription:\n%s\n\n--- CODE ---\n%s",
		s.Title, s.Language, s.Tags, s.Description, s.Code,
	)
}
