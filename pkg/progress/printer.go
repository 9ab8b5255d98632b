package progress

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// TextPrinter writes one plain line per message, for pipes and logs
type TextPrinter struct {
	Out io.Writer
}

func (p TextPrinter) Notify(msg Message) {
	_, _ = fmt.Fprintf(p.Out, "[%s] %s\n", msg.Phase, msg.Message)
}

// TermPrinter renders messages with pterm prefixes
type TermPrinter struct {
	Out io.Writer
}

func (p TermPrinter) Notify(msg Message) {
	printer := p.printerFor(msg.Phase)
	if p.Out != nil {
		printer = *printer.WithWriter(p.Out)
	}
	printer.Println(msg.Message)
}

func (p TermPrinter) printerFor(phase Phase) pterm.PrefixPrinter {
	switch phase {
	case PhaseCompleted:
		return pterm.Success
	case PhaseWarning:
		return pterm.Warning
	default:
		return pterm.Info
	}
}
