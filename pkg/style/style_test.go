package style

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/types"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.Equal(t, "  Hello", Indent("Hello", 1))
	assert.Equal(t, "    Hello", Indent("Hello", 2))
}

func TestRenderError(t *testing.T) {
	assert.Empty(t, RenderError(nil))

	coded := errors.Wrap(stderrors.New("EEXIST"), errors.ErrAlreadyExists, "/ws/notes already exists")
	out := RenderError(coded)
	assert.Contains(t, out, "ALREADY_EXISTS")
	assert.Contains(t, out, "/ws/notes already exists")
	assert.NotContains(t, out, "EEXIST")

	plain := RenderError(stderrors.New("remote hung up"))
	assert.Contains(t, plain, "remote hung up")
}

func TestPlainError(t *testing.T) {
	assert.Equal(t, "Error [PATH_NOT_FOUND]: folder /x does not exist",
		PlainError(errors.New(errors.ErrPathNotFound, "folder /x does not exist")))
	assert.Equal(t, "Error: boom", PlainError(stderrors.New("boom")))
	assert.Empty(t, PlainError(nil))
}

func TestRenderWiki(t *testing.T) {
	result := &types.CommandResult{
		Command: "create-sub",
		Message: "Sub-wiki created",
		Wiki:    &types.WikiFolder{Path: "/ws/notes", Role: types.RoleSub, TagName: "Notes"},
	}

	out := RenderWiki(result)
	assert.Contains(t, out, "Sub-wiki created")
	assert.Contains(t, out, "notes")
	assert.Contains(t, out, "/ws/notes")
	assert.Contains(t, out, "Notes")

	assert.Equal(t, "Sub-wiki created\nsub\t/ws/notes\tNotes", PlainWiki(result))
}

func TestRenderSubWikis(t *testing.T) {
	list := &types.SubWikiList{
		MainWikiPath: "/ws/main",
		SubWikis: []types.SymlinkEntry{
			{Name: "alpha", Target: "/ws/alpha", TagName: "A"},
			{Name: "beta", Target: "/ws/beta", Dangling: true},
		},
	}

	out := RenderSubWikis(list)
	assert.Contains(t, out, "/ws/main")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "/ws/beta (missing)")
	assert.Contains(t, out, "#A")
	assert.Contains(t, out, "1 dangling")

	empty := RenderSubWikis(&types.SubWikiList{MainWikiPath: "/ws/main"})
	assert.Contains(t, empty, "No sub-wikis linked")
}

func TestPlainSubWikis(t *testing.T) {
	list := &types.SubWikiList{
		SubWikis: []types.SymlinkEntry{
			{Name: "alpha", Target: "/ws/alpha", TagName: "A"},
			{Name: "beta", Target: "/ws/beta", Dangling: true},
		},
	}
	lines := strings.Split(PlainSubWikis(list), "\n")
	assert.Equal(t, []string{"alpha\t/ws/alpha\tA\tok", "beta\t/ws/beta\t\tdangling"}, lines)
}
