// Package style renders wikiws results for humans, with lipgloss styles for
// terminals and a plain variant for pipes.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// RenderError renders an error with its code, if it has one
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	if code != errors.ErrUnknown {
		return fmt.Sprintf("%s [%s] %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			errors.UserMessage(err))
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderWiki renders the outcome of a create or clone
func RenderWiki(result *types.CommandResult) string {
	var b strings.Builder
	if result.Message != "" {
		b.WriteString(SuccessIndicator + " " + result.Message)
	}
	if result.Wiki != nil {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s %s", WikiNameStyle.Render(result.Wiki.Name()), MutedStyle.Render("("+string(result.Wiki.Role)+")"))
		b.WriteString(Indent(line, 1) + "\n")
		b.WriteString(Indent(PathStyle.Render(result.Wiki.Path), 2))
		if result.Wiki.TagName != "" {
			b.WriteString("\n" + Indent("tag "+TagStyle.Render(result.Wiki.TagName), 2))
		}
	}
	return b.String()
}

// RenderSubWikis renders the link folder of a main wiki
func RenderSubWikis(list *types.SubWikiList) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Sub-wikis of "+list.MainWikiPath) + "\n")

	if len(list.SubWikis) == 0 {
		b.WriteString(Indent(MutedStyle.Render("No sub-wikis linked"), 1))
		return b.String()
	}

	width := 0
	for _, e := range list.SubWikis {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	for _, e := range list.SubWikis {
		indicator := SuccessIndicator
		target := LinkStyle.Render(e.Target)
		if e.Dangling {
			indicator = ErrorIndicator
			target = ErrorStyle.Render(e.Target + " (missing)")
		}
		name := WikiNameStyle.Render(fmt.Sprintf("%-*s", width, e.Name))
		line := fmt.Sprintf("%s %s → %s", indicator, name, target)
		if e.TagName != "" {
			line += " " + TagStyle.Render("#"+e.TagName)
		}
		b.WriteString(Indent(line, 1) + "\n")
	}

	if n := list.Dangling(); n > 0 {
		b.WriteString(WarningIndicator + " " + WarningStyle.Render(fmt.Sprintf("%d dangling link(s)", n)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PlainWiki renders a create or clone outcome without styling
func PlainWiki(result *types.CommandResult) string {
	var lines []string
	if result.Message != "" {
		lines = append(lines, result.Message)
	}
	if result.Wiki != nil {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", result.Wiki.Role, result.Wiki.Path, result.Wiki.TagName))
	}
	return strings.Join(lines, "\n")
}

// PlainSubWikis renders one tab separated line per link:
// name, target, tag, and "dangling" when the target is gone
func PlainSubWikis(list *types.SubWikiList) string {
	var lines []string
	for _, e := range list.SubWikis {
		state := "ok"
		if e.Dangling {
			state = "dangling"
		}
		lines = append(lines, strings.Join([]string{e.Name, e.Target, e.TagName, state}, "\t"))
	}
	return strings.Join(lines, "\n")
}

// PlainError renders an error without styling
func PlainError(err error) string {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("Error [%s]: %s", code, errors.UserMessage(err))
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
