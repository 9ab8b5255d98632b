// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/wikiws/pkg/style"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case *types.CommandResult:
		out = style.RenderWiki(v)
	case *types.SubWikiList:
		out = style.RenderSubWikis(v)
	default:
		// For unknown types, just print them
		out = fmt.Sprintf("%+v", result)
	}
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.RenderError(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.output).Println(msg)
	return nil
}
