package promptset

import (
	"slices"
	"strings"
)

// StringList holds an ordered list of strings for a single language variant.
// Items are trimmed at construction and not mutated afterwards.
type StringList struct {
	items []string
}

// NewStringList builds a StringList from items, trimming surrounding whitespace.
func NewStringList(items []string) *StringList {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		trimmed = append(trimmed, strings.TrimSpace(item))
	}
	return &StringList{items: trimmed}
}

// Items returns a copy of the list entries.
func (l *StringList) Items() []string { return slices.Clone(l.items) }

// Len returns the number of entries.
func (l *StringList) Len() int { return len(l.items) }

// String renders the list as bullet points, one per line. Multi-line items
// are indented so continuation lines align under the bullet.
func (l *StringList) String() string {
	const bullet = " * "
	indent := strings.Repeat(" ", len(bullet))
	parts := make([]string, 0, len(l.items))
	for _, item := range l.items {
		parts = append(parts, bullet+strings.ReplaceAll(item, "\n", "\n"+indent))
	}
	return strings.Join(parts, "\n")
}
