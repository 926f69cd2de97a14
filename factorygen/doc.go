// Package factorygen generates a statically typed PromptFactory from a
// loaded promptset.Collection: one Create method per template name (taking
// the template's canonical parameters) and one GetList method per list name.
// The output is a derived artifact and is overwritten unconditionally;
// regenerate it whenever the prompt files change.
package factorygen
