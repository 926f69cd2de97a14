package promptset

import (
	"fmt"
	"slices"
)

// DefaultLanguage is the distinguished language code for single-language
// use cases and for the FallbackDefaultLang anchor.
const DefaultLanguage = "default"

// FallbackMode defines what to do when no entry exists for the requested language.
type FallbackMode int

const (
	// FallbackException requires an exact language match; anything else is ErrLanguageNotFound.
	FallbackException FallbackMode = iota
	// FallbackAny returns the first-inserted entry when the requested language is absent.
	FallbackAny
	// FallbackDefaultLang falls back to the DefaultLanguage entry when the requested language is absent.
	FallbackDefaultLang
)

// String implements fmt.Stringer for diagnostics.
func (m FallbackMode) String() string {
	switch m {
	case FallbackException:
		return "exception"
	case FallbackAny:
		return "any"
	case FallbackDefaultLang:
		return "use_default_lang"
	default:
		return fmt.Sprintf("FallbackMode(%d)", int(m))
	}
}

// MultiLangContainer stores one item per language code under a shared name.
// Items usually carry the same semantic meaning in different languages; the
// container can also serve single-language use cases via DefaultLanguage.
// Mutated only by Add; entries are never removed.
type MultiLangContainer[T any] struct {
	name  string
	codes []string // insertion order
	items map[string]T
}

// NewMultiLangContainer creates an empty container for the given name.
func NewMultiLangContainer[T any](name string) *MultiLangContainer[T] {
	return &MultiLangContainer[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Name returns the container name.
func (c *MultiLangContainer[T]) Name() string { return c.name }

// Len returns the number of registered language entries.
func (c *MultiLangContainer[T]) Len() int { return len(c.items) }

// LanguageCodes returns the registered language codes in insertion order.
func (c *MultiLangContainer[T]) LanguageCodes() []string { return slices.Clone(c.codes) }

// Add registers item under langCode. Returns ErrDuplicateLanguage if an
// entry already exists for that code and overwrite is false.
func (c *MultiLangContainer[T]) Add(item T, langCode string, overwrite bool) error {
	if _, ok := c.items[langCode]; ok {
		if !overwrite {
			return fmt.Errorf("%w: language %q for name %q", ErrDuplicateLanguage, langCode, c.name)
		}
	} else {
		c.codes = append(c.codes, langCode)
	}
	c.items[langCode] = item
	return nil
}

// Get resolves the item for langCode according to mode. An exact match
// always wins; otherwise FallbackAny returns the first-inserted entry and
// FallbackDefaultLang returns the DefaultLanguage entry. All remaining
// cases are ErrLanguageNotFound.
func (c *MultiLangContainer[T]) Get(langCode string, mode FallbackMode) (T, error) {
	if item, ok := c.items[langCode]; ok {
		return item, nil
	}
	var zero T
	switch mode {
	case FallbackAny:
		if len(c.codes) == 0 {
			return zero, fmt.Errorf("%w: no languages registered for name %q", ErrLanguageNotFound, c.name)
		}
		return c.items[c.codes[0]], nil
	case FallbackDefaultLang:
		if item, ok := c.items[DefaultLanguage]; ok {
			return item, nil
		}
		return zero, fmt.Errorf("%w: neither %q nor %q registered for name %q",
			ErrLanguageNotFound, langCode, DefaultLanguage, c.name)
	default:
		return zero, fmt.Errorf("%w: language %q for name %q", ErrLanguageNotFound, langCode, c.name)
	}
}
