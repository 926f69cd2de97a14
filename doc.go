// Package promptset manages directories of multi-language prompt templates
// and string lists for LLM applications. It loads YAML prompt files into a
// validated in-memory collection, resolves language variants with a
// configurable fallback policy, and renders templates via text/template.
// The factorygen package generates a statically typed accessor on top of a
// loaded collection.
package promptset
