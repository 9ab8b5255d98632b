// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON and YAML output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/progress"
	"github.com/arthur-debert/wikiws/pkg/ui/json"
	"github.com/arthur-debert/wikiws/pkg/ui/terminal"
	"github.com/arthur-debert/wikiws/pkg/ui/text"
	"github.com/arthur-debert/wikiws/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a *types.CommandResult or *types.SubWikiList
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// NewProgressSink returns the sink matching a renderer of the same format.
// Machine formats keep progress out of their output and only log it.
func NewProgressSink(format Format, output io.Writer) progress.Sink {
	switch Resolve(format, output) {
	case FormatTerminal:
		return progress.TermPrinter{Out: output}
	case FormatText:
		return progress.TextPrinter{Out: output}
	default:
		return progress.LogSink{Logger: logging.GetLogger("progress")}
	}
}
