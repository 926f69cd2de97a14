package promptset

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"text/template"
	"text/template/parse"
)

// Template wraps one parsed text/template body for a single language variant.
// The parameter set is extracted from the parse tree at construction.
// Fields must not be mutated after construction.
type Template struct {
	name   string
	tpl    *template.Template
	params []string
}

// NewTemplate parses body (trimmed) and extracts its parameter names.
// Returns ErrTemplateParse if the body fails to parse.
func NewTemplate(name, body string) (*Template, error) {
	tpl, err := template.New(name).Parse(strings.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %w", ErrTemplateParse, name, err)
	}
	return &Template{
		name:   name,
		tpl:    tpl,
		params: extractVarsFromTree(tpl.Tree),
	}, nil
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Parameters returns the names of the variables referenced by the template
// body, in order of first appearance.
func (t *Template) Parameters() []string { return slices.Clone(t.params) }

// Render executes the template with the given variable bindings.
// Every declared parameter must be bound; a missing binding returns a
// *VariableError wrapping ErrMissingVariable. Extra bindings are ignored.
func (t *Template) Render(vars map[string]any) (string, error) {
	for _, name := range t.params {
		if _, ok := vars[name]; !ok {
			return "", &VariableError{Variable: name, Template: t.name, Err: ErrMissingVariable}
		}
	}
	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("%w: template %q: %w", ErrTemplateRender, t.name, err)
	}
	return buf.String(), nil
}

// isNilNode returns true if node is nil or an interface holding a nil pointer (e.g. *parse.ListNode).
func isNilNode(node parse.Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func walkParseNodes(node parse.Node, visit func(parse.Node)) {
	if isNilNode(node) {
		return
	}
	visit(node)
	switch n := node.(type) {
	case *parse.ListNode:
		for _, c := range n.Nodes {
			walkParseNodes(c, visit)
		}
	case *parse.ActionNode:
		if n.Pipe != nil {
			walkParseNodes(n.Pipe, visit)
		}
	case *parse.PipeNode:
		for _, c := range n.Cmds {
			walkParseNodes(c, visit)
		}
	case *parse.CommandNode:
		for _, a := range n.Args {
			walkParseNodes(a, visit)
		}
	case *parse.IfNode:
		walkParseNodes(n.Pipe, visit)
		walkParseNodes(n.List, visit)
		walkParseNodes(n.ElseList, visit)
	case *parse.RangeNode:
		walkParseNodes(n.Pipe, visit)
		walkParseNodes(n.List, visit)
		walkParseNodes(n.ElseList, visit)
	case *parse.WithNode:
		walkParseNodes(n.Pipe, visit)
		walkParseNodes(n.List, visit)
		walkParseNodes(n.ElseList, visit)
	}
}

// extractVarsFromTree collects top-level variable names from the template parse tree
// (e.g. .user_name -> "user_name"), deduplicated in order of first appearance.
func extractVarsFromTree(tree *parse.Tree) []string {
	if tree == nil || tree.Root == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	walkParseNodes(tree.Root, func(n parse.Node) {
		if fn, ok := n.(*parse.FieldNode); ok && len(fn.Ident) > 0 {
			name := fn.Ident[0]
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	})
	return out
}
