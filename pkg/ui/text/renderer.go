// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/wikiws/pkg/style"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *types.CommandResult:
		out = style.PlainWiki(v)
	case *types.SubWikiList:
		out = style.PlainSubWikis(v)
	default:
		out = fmt.Sprintf("%+v", result)
	}
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, style.PlainError(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
