package ui

import (
	"strings"

	"github.com/sakif/snipdesk/internal/model"
)

// Form is the validated input bundle produced by the add-snippet flow.
type Form struct {
	Title       string
	Language    string
	Code        string
	Tags        string
	Description string
}

// CollectForm walks the fixed prompt sequence — title, language, code, tags,
// description — and calls done exactly once.
//
// A dismissed or blank title or code cancels the whole flow (done receives
// ok=false and the zero Form; no partial record escapes). The language prompt
// suggests "python"; dismissing it or leaving it blank falls back to the
// "text" sentinel, and the flow continues. Tags and description accept any
// answer, including none.
func CollectForm(p Prompter, done func(f Form, ok bool)) {
	p.Prompt("Input", "Enter Snippet Title:", "", false, func(title string, ok bool) {
		if !ok || strings.TrimSpace(title) == "" {
			done(Form{}, false)
			return
		}
		p.Prompt("Input", "Enter Language (e.g., python, html):", "python", false, func(language string, ok bool) {
			if !ok || strings.TrimSpace(language) == "" {
				language = model.DefaultLanguage
			}
			p.Prompt("Input", "Paste Code Snippet here:", "", true, func(code string, ok bool) {
				if !ok || strings.TrimSpace(code) == "" {
					done(Form{}, false)
					return
				}
				p.Prompt("Input", "Enter Tags (comma separated):", "", false, func(tags string, _ bool) {
					p.Prompt("Input", "Enter Description:", "", false, func(description string, _ bool) {
						done(Form{
							Title:       title,
							Language:    language,
							Code:        code,
							Tags:        tags,
							Description: description,
						}, true)
					})
				})
			})
		})
	})
}
