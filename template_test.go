package promptset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate_Parameters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"no params", "Hello world", nil},
		{"single param", "Hello {{ .name }}", []string{"name"}},
		{"appearance order", "{{ .greeting }}, {{ .name }}!", []string{"greeting", "name"}},
		{"deduplicated", "{{ .name }} and again {{ .name }}", []string{"name"}},
		{"nested field uses first segment", "{{ .user.name }}", []string{"user"}},
		{"inside if", "{{ if .flag }}{{ .value }}{{ end }}", []string{"flag", "value"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tpl, err := NewTemplate("test", tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tpl.Parameters())
		})
	}
}

func TestNewTemplate_ParseError(t *testing.T) {
	t.Parallel()
	_, err := NewTemplate("broken", "Hello {{ .name")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateParse)
}

func TestTemplate_Render(t *testing.T) {
	t.Parallel()
	tpl, err := NewTemplate("greet", "Hello {{ .name }}, you are {{ .age }}.")
	require.NoError(t, err)
	out, err := tpl.Render(map[string]any{"name": "Alice", "age": 30})
	require.NoError(t, err)
	assert.Equal(t, "Hello Alice, you are 30.", out)
	assert.NotContains(t, out, "{{")
}

func TestTemplate_Render_MissingVariable(t *testing.T) {
	t.Parallel()
	tpl, err := NewTemplate("greet", "Hello {{ .name }}, you are {{ .age }}.")
	require.NoError(t, err)
	_, err = tpl.Render(map[string]any{"name": "Alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVariable)
	var ve *VariableError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "age", ve.Variable)
	assert.Equal(t, "greet", ve.Template)
}

func TestTemplate_Render_ExtraVariablesIgnored(t *testing.T) {
	t.Parallel()
	tpl, err := NewTemplate("greet", "Hello {{ .name }}")
	require.NoError(t, err)
	out, err := tpl.Render(map[string]any{"name": "Bob", "unused": true})
	require.NoError(t, err)
	assert.Equal(t, "Hello Bob", out)
}

func TestNewTemplate_TrimsBody(t *testing.T) {
	t.Parallel()
	tpl, err := NewTemplate("t", "\n  plain text  \n")
	require.NoError(t, err)
	out, err := tpl.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}
