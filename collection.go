package promptset

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okirillov/promptset/internal/cast"
)

// sourceFile is the YAML shape of one prompt file: an optional language code
// applying to every entry, plus the prompts mapping. Prompts is kept as a
// yaml.Node so entry order follows the document.
type sourceFile struct {
	Lang    string    `yaml:"lang"`
	Prompts yaml.Node `yaml:"prompts"`
}

// Collection is a directory-scoped index of multi-language prompt templates
// and prompt lists. It is built once at construction and read-only
// afterwards, except for the fallback mode. Template names and list names
// live in independent namespaces.
type Collection struct {
	templates     map[string]*MultiLangTemplate
	lists         map[string]*MultiLangContainer[*StringList]
	templateNames []string // insertion order
	listNames     []string
	fallbackMode  FallbackMode
	overwrite     bool
}

// New loads every .yaml/.yml file directly contained in dir into a Collection.
// Loading is all-or-nothing: any malformed file, duplicate (name, language)
// pair or parameter-set mismatch fails the whole construction.
func New(dir string, opts ...Option) (*Collection, error) {
	return NewFS(os.DirFS(dir), ".", opts...)
}

// NewFS is like New but reads from an fs.FS (e.g. an embed.FS), loading the
// files directly contained in dir within fsys.
func NewFS(fsys fs.FS, dir string, opts ...Option) (*Collection, error) {
	c := &Collection{
		templates: make(map[string]*MultiLangTemplate),
		lists:     make(map[string]*MultiLangContainer[*StringList]),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.load(fsys, dir); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection) load(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("promptset: read dir: %w", err)
	}
	// fs.ReadDir returns entries sorted by name, so insertion order (and
	// with it FallbackAny resolution) is stable across platforms.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := c.loadFile(fsys, path.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) loadFile(fsys fs.FS, filePath string) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("promptset: read file %s: %w", filePath, err)
	}
	var file sourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedFile, filePath, err)
	}
	if file.Prompts.Kind == 0 {
		return fmt.Errorf("%w: %s: missing %q key", ErrMalformedFile, filePath, "prompts")
	}
	if file.Prompts.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s: %q must be a mapping", ErrMalformedFile, filePath, "prompts")
	}
	langCode := file.Lang
	if langCode == "" {
		langCode = DefaultLanguage
	}
	// Mapping nodes hold alternating key/value children in document order.
	content := file.Prompts.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value
		var body any
		if err := content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("%w: %s: entry %q: %w", ErrMalformedFile, filePath, name, err)
		}
		switch {
		case isString(body):
			if err := c.addTemplate(name, body.(string), langCode); err != nil {
				return fmt.Errorf("%s: %w", filePath, err)
			}
		default:
			items, ok := cast.ToStringSlice(body)
			if !ok {
				return fmt.Errorf("%w: %s: entry %q must be a string or a list of strings",
					ErrMalformedFile, filePath, name)
			}
			if err := c.addList(name, items, langCode); err != nil {
				return fmt.Errorf("%s: %w", filePath, err)
			}
		}
	}
	return nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func (c *Collection) addTemplate(name, body, langCode string) error {
	tpl, err := NewTemplate(name, body)
	if err != nil {
		return err
	}
	mlt, ok := c.templates[name]
	if !ok {
		mlt = NewMultiLangTemplate(name)
		c.templates[name] = mlt
		c.templateNames = append(c.templateNames, name)
	}
	return mlt.AddTemplate(tpl, langCode, c.overwrite)
}

func (c *Collection) addList(name string, items []string, langCode string) error {
	container, ok := c.lists[name]
	if !ok {
		container = NewMultiLangContainer[*StringList](name)
		c.lists[name] = container
		c.listNames = append(c.listNames, name)
	}
	return container.Add(NewStringList(items), langCode, c.overwrite)
}

// Len returns the number of registered template names.
func (c *Collection) Len() int { return len(c.templates) }

// FallbackMode returns the collection-wide fallback policy.
func (c *Collection) FallbackMode() FallbackMode { return c.fallbackMode }

// SetFallbackMode replaces the collection-wide fallback policy.
func (c *Collection) SetFallbackMode(mode FallbackMode) { c.fallbackMode = mode }

// TemplateNames returns the registered template names in insertion order.
func (c *Collection) TemplateNames() []string { return slices.Clone(c.templateNames) }

// ListNames returns the registered list names in insertion order.
func (c *Collection) ListNames() []string { return slices.Clone(c.listNames) }

// MultiLangTemplate returns the multi-language bundle for name.
// Returns ErrPromptNotFound for unregistered names.
func (c *Collection) MultiLangTemplate(name string) (*MultiLangTemplate, error) {
	mlt, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: template %q", ErrPromptNotFound, name)
	}
	return mlt, nil
}

// MultiLangList returns the multi-language list container for name.
// Returns ErrPromptNotFound for unregistered names.
func (c *Collection) MultiLangList(name string) (*MultiLangContainer[*StringList], error) {
	container, ok := c.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: list %q", ErrPromptNotFound, name)
	}
	return container, nil
}

// Template resolves the Template for name and langCode using the
// collection's fallback mode.
func (c *Collection) Template(name, langCode string) (*Template, error) {
	mlt, err := c.MultiLangTemplate(name)
	if err != nil {
		return nil, err
	}
	return mlt.Template(langCode, c.fallbackMode)
}

// Parameters returns the canonical parameter set of the named template.
func (c *Collection) Parameters(name string) ([]string, error) {
	mlt, err := c.MultiLangTemplate(name)
	if err != nil {
		return nil, err
	}
	return mlt.Parameters()
}

// List resolves the StringList for name and langCode using the collection's
// fallback mode.
func (c *Collection) List(name, langCode string) (*StringList, error) {
	container, err := c.MultiLangList(name)
	if err != nil {
		return nil, err
	}
	return container.Get(langCode, c.fallbackMode)
}

// Render resolves the named template for langCode and renders it with vars.
func (c *Collection) Render(name, langCode string, vars map[string]any) (string, error) {
	tpl, err := c.Template(name, langCode)
	if err != nil {
		return "", err
	}
	return tpl.Render(vars)
}
