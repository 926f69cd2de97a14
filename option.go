package promptset

// Option configures a Collection (functional options pattern).
type Option func(*Collection)

// WithFallbackMode sets the collection-wide language fallback policy.
// Default is FallbackException.
func WithFallbackMode(mode FallbackMode) Option {
	return func(c *Collection) {
		c.fallbackMode = mode
	}
}

// WithOverwrite allows a later file to replace an existing (name, language)
// entry instead of failing the load with ErrDuplicateLanguage.
func WithOverwrite(allow bool) Option {
	return func(c *Collection) {
		c.overwrite = allow
	}
}
