package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Previewer renders Markdown documents to HTML. It is stateless and safe for
// concurrent use.
type Previewer struct {
	engine goldmark.Markdown
}

// NewPreviewer builds a Previewer with GitHub flavoured Markdown, autolinks
// and task lists enabled. The output is embedded into pages that hold user
// credentials, so raw HTML is dropped and dangerous link schemes are blanked.
func NewPreviewer() *Previewer {
	return &Previewer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// HTML converts a Markdown document to an HTML fragment.
func (p *Previewer) HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown preview: %w", err)
	}
	return buf.String(), nil
}
