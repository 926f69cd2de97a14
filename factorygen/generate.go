package factorygen

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/okirillov/promptset"
)

const promptsetPath = "github.com/okirillov/promptset"

// Generate emits the source of a prompt factory package for the given
// collection. Each template becomes a Create method taking the template's
// canonical parameters; each list becomes a GetList method. The collection
// has already validated parameter consistency, so generation is pure text
// synthesis. Two names mapping to the same method name is an error.
func Generate(c *promptset.Collection, pkgName string) ([]byte, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by promptset-gen. DO NOT EDIT.")
	f.ImportName(promptsetPath, "promptset")

	f.Comment("PromptFactory retrieves and renders prompt templates and prompt lists.")
	f.Type().Id("PromptFactory").Struct(
		jen.Op("*").Qual(promptsetPath, "FactoryBase"),
	)

	f.Comment("NewPromptFactory loads the prompt directory and pins it to langCode.")
	f.Func().Id("NewPromptFactory").Params(
		jen.Id("dir").String(),
		jen.Id("langCode").String(),
		jen.Id("mode").Qual(promptsetPath, "FallbackMode"),
	).Params(jen.Op("*").Id("PromptFactory"), jen.Error()).Block(
		jen.List(jen.Id("base"), jen.Err()).Op(":=").Qual(promptsetPath, "NewFactoryBase").Call(
			jen.Id("dir"), jen.Id("langCode"), jen.Id("mode"),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Op("&").Id("PromptFactory").Values(jen.Id("base")), jen.Nil()),
	)

	methods := make(map[string]string)
	for _, name := range c.TemplateNames() {
		params, err := c.Parameters(name)
		if err != nil {
			return nil, err
		}
		method := "Create" + exportName(name)
		if prev, ok := methods[method]; ok {
			return nil, fmt.Errorf("factorygen: method %s generated for both %q and %q", method, prev, name)
		}
		methods[method] = name
		args := make([]jen.Code, 0, len(params))
		bindings := jen.Dict{}
		for _, param := range params {
			arg := argIdent(param)
			args = append(args, jen.Id(arg).Any())
			bindings[jen.Lit(param)] = jen.Id(arg)
		}
		f.Func().Params(jen.Id("f").Op("*").Id("PromptFactory")).Id(method).
			Params(args...).
			Params(jen.String(), jen.Error()).Block(
			jen.Return(jen.Id("f").Dot("RenderPrompt").Call(
				jen.Lit(name),
				jen.Map(jen.String()).Any().Values(bindings),
			)),
		)
	}
	for _, name := range c.ListNames() {
		method := "GetList" + exportName(name)
		if prev, ok := methods[method]; ok {
			return nil, fmt.Errorf("factorygen: method %s generated for both %q and %q", method, prev, name)
		}
		methods[method] = name
		f.Func().Params(jen.Id("f").Op("*").Id("PromptFactory")).Id(method).
			Params().
			Params(jen.Op("*").Qual(promptsetPath, "StringList"), jen.Error()).Block(
			jen.Return(jen.Id("f").Dot("PromptList").Call(jen.Lit(name))),
		)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("factorygen: render: %w", err)
	}
	return buf.Bytes(), nil
}

// exportName converts a prompt name (snake_case, kebab-case, dotted) to an
// exported PascalCase identifier fragment.
func exportName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upper {
				b.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	return b.String()
}

// argIdent returns a safe argument identifier for a template parameter.
// Parameters named after Go keywords (e.g. "type") or colliding with the
// receiver get an Arg suffix.
func argIdent(param string) string {
	if param == "f" || !token.IsIdentifier(param) {
		return param + "Arg"
	}
	return param
}
