package promptset

// FactoryBase is the runtime half of a generated prompt factory. It pins a
// collection to one language code so generated accessors only carry the
// template parameters. Generated code embeds *FactoryBase.
type FactoryBase struct {
	collection *Collection
	langCode   string
}

// NewFactoryBase loads the collection from dir with the given fallback mode
// and pins it to langCode. An empty langCode means DefaultLanguage.
func NewFactoryBase(dir, langCode string, mode FallbackMode) (*FactoryBase, error) {
	c, err := New(dir, WithFallbackMode(mode))
	if err != nil {
		return nil, err
	}
	return NewFactoryBaseFromCollection(c, langCode), nil
}

// NewFactoryBaseFromCollection wraps an already loaded collection.
func NewFactoryBaseFromCollection(c *Collection, langCode string) *FactoryBase {
	if langCode == "" {
		langCode = DefaultLanguage
	}
	return &FactoryBase{collection: c, langCode: langCode}
}

// Collection returns the underlying collection.
func (f *FactoryBase) Collection() *Collection { return f.collection }

// LangCode returns the pinned language code.
func (f *FactoryBase) LangCode() string { return f.langCode }

// RenderPrompt renders the named template in the pinned language.
func (f *FactoryBase) RenderPrompt(name string, vars map[string]any) (string, error) {
	return f.collection.Render(name, f.langCode, vars)
}

// PromptList returns the named list in the pinned language.
func (f *FactoryBase) PromptList(name string) (*StringList, error) {
	return f.collection.List(name, f.langCode)
}
