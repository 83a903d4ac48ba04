package ui

import (
	"context"
	"fmt"

	"github.com/sakif/snipdesk/internal/apperror"
	"github.com/sakif/snipdesk/internal/model"
	"github.com/sakif/snipdesk/internal/service"
)

// Controller owns the presentation state and translates the four user
// gestures (select, add, delete, refresh) into service calls.
//
// Its in-memory snippet slice is rebuilt wholesale from ListAll on every
// refresh and stays index-aligned with the visible list — Select(i) must
// always land on the snippet whose label sits at row i. There is no
// incremental patching: every mutation is followed by a full reload.
type Controller struct {
	svc      *service.SnippetService
	view     View
	dialogs  Dialogs
	prompter Prompter

	snippets []model.Snippet
	selected int // index into snippets; -1 when nothing is selected
}

// NewController wires the controller to its window surfaces. The Fyne App
// passes itself for all three interfaces.
func NewController(svc *service.SnippetService, view View, dialogs Dialogs, prompter Prompter) *Controller {
	return &Controller{
		svc:      svc,
		view:     view,
		dialogs:  dialogs,
		prompter: prompter,
		selected: -1,
	}
}

// Refresh reloads every snippet from the store, replaces the in-memory
// collection, clears the selection, and rebuilds the list labels.
func (c *Controller) Refresh(ctx context.Context) {
	snippets, err := c.svc.ListAll(ctx)
	if err != nil {
		c.dialogs.Error(err.Error())
		return
	}

	c.snippets = snippets
	c.selected = -1

	labels := make([]string, len(snippets))
	for i, s := range snippets {
		labels[i] = s.Label()
	}
	c.view.SetList(labels)
}

// Select shows the snippet at the given list position in the detail pane.
// Out-of-range indices are ignored.
func (c *Controller) Select(index int) {
	if index < 0 || index >= len(c.snippets) {
		return
	}
	c.selected = index
	c.view.SetDetail(c.snippets[index].Detail())
}

// AddNew runs the add-snippet prompt sequence. A cancelled form has no side
// effects at all; a completed one is saved, followed by a full list reload
// and a confirmation dialog.
func (c *Controller) AddNew(ctx context.Context) {
	CollectForm(c.prompter, func(f Form, ok bool) {
		if !ok {
			return
		}
		if err := c.svc.Create(ctx, f.Title, f.Code, f.Language, f.Tags, f.Description); err != nil {
			c.dialogs.Error(err.Error())
			return
		}
		c.Refresh(ctx)
		c.dialogs.Info("Success", fmt.Sprintf("Snippet '%s' added successfully!", f.Title))
	})
}

// Delete removes the selected snippet after confirmation. Without a
// selection it shows an error dialog and mutates nothing; a declined
// confirmation also changes nothing.
func (c *Controller) Delete(ctx context.Context) {
	if c.selected < 0 || c.selected >= len(c.snippets) {
		c.dialogs.Error(apperror.NoSelection("delete").Error())
		return
	}

	snippet := c.snippets[c.selected]
	message := fmt.Sprintf("Are you sure you want to delete '%s'?", snippet.Title)

	c.dialogs.Confirm("Confirm Delete", message, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := c.svc.Delete(ctx, snippet.ID); err != nil {
			c.dialogs.Error(err.Error())
			return
		}
		c.Refresh(ctx)
		c.view.SetDetail("")
	})
}
