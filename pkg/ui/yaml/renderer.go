// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wikiws/pkg/errors"
)

// Renderer writes one YAML document per call. Documents after the first
// are preceded by a "---" separator, so several calls form a valid stream.
type Renderer struct {
	output  io.Writer
	encoder *yaml.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

func (r *Renderer) encode(v interface{}) error {
	return r.encoder.Encode(v)
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as YAML, with its code and details
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
