package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sakif/snipdesk/internal/service"
)

// App is the Fyne shell: it owns the window and implements View, Dialogs and
// Prompter for the controller. All store access happens synchronously inside
// event callbacks on the one interface thread.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	list    *widget.List
	detail  *widget.Label
	labels  []string
	ctrl    *Controller
}

// NewApp builds the two-pane window: snippet list with Add New / Delete
// buttons on the left, scrollable plain-text detail pane on the right.
func NewApp(svc *service.SnippetService) *App {
	a := &App{fyneApp: app.New()}

	a.window = a.fyneApp.NewWindow("Code Snippet Manager")
	a.window.Resize(fyne.NewSize(800, 600))

	a.detail = widget.NewLabel("")
	a.detail.Wrapping = fyne.TextWrapWord
	a.detail.TextStyle = fyne.TextStyle{Monospace: true}

	a.list = widget.NewList(
		func() int { return len(a.labels) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(a.labels[id])
		},
	)

	a.ctrl = NewController(svc, a, a, a)

	ctx := context.Background()
	a.list.OnSelected = func(id widget.ListItemID) {
		a.ctrl.Select(id)
	}

	buttons := container.NewHBox(
		widget.NewButton("Add New", func() { a.ctrl.AddNew(ctx) }),
		widget.NewButton("Delete", func() { a.ctrl.Delete(ctx) }),
	)

	left := container.NewBorder(
		widget.NewLabelWithStyle("Saved Snippets", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		buttons, nil, nil,
		a.list,
	)
	right := container.NewBorder(
		widget.NewLabelWithStyle("Snippet Details", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewScroll(a.detail),
	)

	split := container.NewHSplit(left, right)
	split.SetOffset(0.35)
	a.window.SetContent(split)

	return a
}

// Run performs the initial list load and enters the event loop. It blocks
// until the window is closed.
func (a *App) Run(ctx context.Context) {
	a.ctrl.Refresh(ctx)
	a.window.ShowAndRun()
}

// SetList replaces the visible labels and clears any selection, keeping the
// rows aligned with the controller's rebuilt snippet slice.
func (a *App) SetList(labels []string) {
	a.labels = labels
	a.list.UnselectAll()
	a.list.Refresh()
}

// SetDetail replaces the detail pane text.
func (a *App) SetDetail(text string) {
	a.detail.SetText(text)
}

// Info shows a modal information dialog.
func (a *App) Info(title, message string) {
	dialog.ShowInformation(title, message, a.window)
}

// Error shows a modal error dialog.
func (a *App) Error(message string) {
	dialog.ShowError(errors.New(message), a.window)
}

// Confirm shows a modal yes/no dialog and reports the answer through respond.
func (a *App) Confirm(title, message string, respond func(confirmed bool)) {
	dialog.ShowConfirm(title, message, respond, a.window)
}

// Prompt shows a modal entry dialog for one field. Cancel reports ok=false.
func (a *App) Prompt(title, message, initial string, multiline bool, respond func(value string, ok bool)) {
	var entry *widget.Entry
	height := float32(60)
	if multiline {
		entry = widget.NewMultiLineEntry()
		height = 220
	} else {
		entry = widget.NewEntry()
	}
	entry.SetText(initial)

	content := container.NewBorder(widget.NewLabel(message), nil, nil, nil, entry)
	d := dialog.NewCustomConfirm(title, "OK", "Cancel", content, func(ok bool) {
		respond(entry.Text, ok)
	}, a.window)
	d.Resize(fyne.NewSize(420, height+100))
	d.Show()
}
