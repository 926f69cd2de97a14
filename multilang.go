package promptset

import (
	"fmt"
	"slices"
)

// reservedParams are parameter names a template body may not declare because
// they collide with the control arguments of render calls on generated factories.
var reservedParams = map[string]bool{
	"lang_code":     true,
	"fallback_mode": true,
}

// MultiLangTemplate is a named bundle of Template variants, one per language.
// All variants must declare the same parameter set; the first variant added
// establishes the canonical set.
type MultiLangTemplate struct {
	container *MultiLangContainer[*Template]
}

// NewMultiLangTemplate creates an empty multi-language template with the given name.
func NewMultiLangTemplate(name string) *MultiLangTemplate {
	return &MultiLangTemplate{container: NewMultiLangContainer[*Template](name)}
}

// Name returns the template name.
func (m *MultiLangTemplate) Name() string { return m.container.Name() }

// Len returns the number of registered language variants.
func (m *MultiLangTemplate) Len() int { return m.container.Len() }

// LanguageCodes returns the registered language codes in insertion order.
func (m *MultiLangTemplate) LanguageCodes() []string { return m.container.LanguageCodes() }

// AddTemplate registers tpl as the variant for langCode. Returns
// ErrReservedParameter if the body declares a reserved parameter name and
// ErrParameterMismatch if its parameter set differs from the canonical one
// established by the first variant.
func (m *MultiLangTemplate) AddTemplate(tpl *Template, langCode string, overwrite bool) error {
	incoming := tpl.Parameters()
	for _, name := range incoming {
		if reservedParams[name] {
			return fmt.Errorf("%w: parameter %q in template %q for language %q",
				ErrReservedParameter, name, m.Name(), langCode)
		}
	}
	if m.Len() > 0 {
		canonical, err := m.Parameters()
		if err != nil {
			return err
		}
		if !equalParamSets(canonical, incoming) {
			return fmt.Errorf("%w: template %q language %q declares %v, canonical set is %v",
				ErrParameterMismatch, m.Name(), langCode, incoming, canonical)
		}
	}
	return m.container.Add(tpl, langCode, overwrite)
}

// Template resolves the variant for langCode according to mode.
func (m *MultiLangTemplate) Template(langCode string, mode FallbackMode) (*Template, error) {
	return m.container.Get(langCode, mode)
}

// Parameters returns the canonical parameter set. Returns ErrNotInitialized
// when no variant has been registered yet.
func (m *MultiLangTemplate) Parameters() ([]string, error) {
	codes := m.container.LanguageCodes()
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: template %q", ErrNotInitialized, m.Name())
	}
	first, err := m.container.Get(codes[0], FallbackException)
	if err != nil {
		return nil, err
	}
	return first.Parameters(), nil
}

// Render resolves a variant via the fallback policy and renders it with vars.
func (m *MultiLangTemplate) Render(langCode string, mode FallbackMode, vars map[string]any) (string, error) {
	tpl, err := m.Template(langCode, mode)
	if err != nil {
		return "", err
	}
	return tpl.Render(vars)
}

// equalParamSets compares parameter name sets ignoring order.
func equalParamSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
