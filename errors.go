package promptset

import (
	"errors"
	"fmt"
)

// Sentinel errors for collection, container and template operations.
// All use prefix "promptset:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrDuplicateLanguage = errors.New("promptset: language already registered")
	ErrParameterMismatch = errors.New("promptset: template parameters differ between language variants")
	ErrReservedParameter = errors.New("promptset: template uses a reserved parameter name")
	ErrPromptNotFound    = errors.New("promptset: prompt not found in collection")
	ErrLanguageNotFound  = errors.New("promptset: no entry for requested language")
	ErrNotInitialized    = errors.New("promptset: no language variants registered")
	ErrMalformedFile     = errors.New("promptset: prompt file is malformed")
	ErrTemplateParse     = errors.New("promptset: template parsing failed")
	ErrTemplateRender    = errors.New("promptset: template rendering failed")
	ErrMissingVariable   = errors.New("promptset: required template variable not provided")
)

// VariableError wraps a sentinel error with variable and template context.
// Use errors.Is(err, ErrMissingVariable) and errors.As(err, &variableErr) to inspect.
type VariableError struct {
	Variable string
	Template string
	Err      error
}

// Error implements error.
func (e *VariableError) Error() string {
	return fmt.Sprintf("promptset: variable %q in template %q: %v", e.Variable, e.Template, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *VariableError) Unwrap() error { return e.Err }

// Compile-time check that VariableError implements error.
var _ error = (*VariableError)(nil)
