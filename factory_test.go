package promptset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryBase_RenderPrompt(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePromptFile(t, dir, "a.yaml", `
lang: en
prompts:
  greet: "Hello {{ .name }}"
  tips: ["Be kind", "Be brief"]
`)
	base, err := NewFactoryBase(dir, "en", FallbackException)
	require.NoError(t, err)
	assert.Equal(t, "en", base.LangCode())

	out, err := base.RenderPrompt("greet", map[string]any{"name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Bob", out)

	// A factory render must match a direct collection render.
	direct, err := base.Collection().Render("greet", "en", map[string]any{"name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, direct, out)

	list, err := base.PromptList("tips")
	require.NoError(t, err)
	assert.Equal(t, " * Be kind\n * Be brief", list.String())
}

func TestFactoryBase_DefaultsLangCode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePromptFile(t, dir, "a.yaml", `
prompts:
  greet: "Hi {{ .name }}"
`)
	base, err := NewFactoryBase(dir, "", FallbackException)
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, base.LangCode())

	out, err := base.RenderPrompt("greet", map[string]any{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Ann", out)
}

func TestFactoryBase_LoadErrorPropagates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writePromptFile(t, dir, "bad.yaml", "lang: en\n")
	_, err := NewFactoryBase(dir, "en", FallbackException)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFile)
}
