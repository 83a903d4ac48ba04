// Package ui contains the presentation layer: a controller that translates
// user gestures into service calls and view refreshes, plus the Fyne shell
// that hosts it.
//
// The controller talks to the window through three small interfaces (View,
// Dialogs, Prompter) instead of the toolkit directly. The Fyne App implements
// all three; tests substitute synchronous fakes and drive the controller as
// plain function calls.
package ui

// View is the part of the window the controller repaints: the list of
// snippet labels and the plain-text detail pane.
type View interface {
	SetList(labels []string)
	SetDetail(text string)
}

// Dialogs shows modal notifications. Confirm takes a callback because GUI
// toolkits deliver the answer asynchronously; a test fake answers inline.
type Dialogs interface {
	Info(title, message string)
	Error(message string)
	Confirm(title, message string, respond func(confirmed bool))
}

// Prompter collects one text field from the user. ok is false when the
// prompt was dismissed rather than confirmed.
type Prompter interface {
	Prompt(title, message, initial string, multiline bool, respond func(value string, ok bool))
}
