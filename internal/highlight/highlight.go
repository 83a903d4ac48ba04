// Package highlight renders code as syntax-highlighted HTML using chroma.
//
// The default detail view shows snippets as plain text and does not call
// this package; it exists for presentation layers (a web view, an export)
// that can render HTML.
package highlight

import (
	stdhtml "html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	htmlfmt "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HTML highlights code and returns HTML markup. It never fails: lexer
// resolution falls back from the named language, to a content-based guess,
// to the plain-text lexer, and any rendering error degrades to escaped
// plain text inside a <pre> block.
func HTML(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	// Coalesce merges runs of same-type tokens, shrinking the output.
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainHTML(code)
	}

	var buf strings.Builder
	if err := htmlfmt.New().Format(&buf, style, iterator); err != nil {
		return plainHTML(code)
	}
	return buf.String()
}

// plainHTML is the last-resort rendering: the code escaped verbatim.
func plainHTML(code string) string {
	return "<pre>" + stdhtml.EscapeString(code) + "</pre>"
}
