// Package golang renders operation metadata as a Go source file.
package golang

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/common"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

// DefaultPackage is used when the metadata names no package.
const DefaultPackage = "operations"

const (
	typeMetadata      = "GraphQLInputTypeMetadata"
	fieldMetadata     = "GraphQLInputFieldMetadata"
	validationMeta    = "GraphQLValidationMetadata"
	operationMetadata = "GraphQLOperationMetadata"
	parameterMetadata = "GraphQLOperationParameterMetadata"
	kindType          = "InputKind"
	operationType     = "OperationType"
	jsonPkg           = "encoding/json"
)

var (
	multiLine = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}
	multiCall = jen.Options{Open: "(", Close: ")", Separator: ",", Multi: true}
)

// Generate renders the Go operation metadata file to w. Nothing is written if
// rendering fails.
func Generate(logger *slog.Logger, w io.Writer, md *meta.Metadata) error {
	version := md.Version
	if version == "" {
		v, err := common.GetVersion()
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		version = v
	}
	pkg := md.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	g := &goGen{md: md, names: map[string]string{}}
	f := jen.NewFile(pkg)
	for _, line := range strings.Split(strings.TrimRight(common.FileHeader("//", version), "\n"), "\n") {
		f.HeaderComment(line)
	}

	writeStructuralTypes(f)
	if err := g.writeDeclarations(f); err != nil {
		return err
	}
	if err := g.writeOperations(f); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render go source: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Debug("Generated Go operation metadata",
		"package", pkg,
		"declarations", len(md.Declarations),
		"operations", len(md.Operations))
	return nil
}

type goGen struct {
	md    *meta.Metadata
	names map[string]string // Go identifier -> GraphQL name
}

// ident reserves a Go identifier for a GraphQL name, failing when two
// distinct names map to the same identifier.
func (g *goGen) ident(id, graphqlName string) (string, error) {
	if prev, ok := g.names[id]; ok && prev != graphqlName {
		return "", fmt.Errorf("%w: %s and %s both map to Go identifier %s", metadata.ErrConfiguration, prev, graphqlName, id)
	}
	g.names[id] = graphqlName
	return id, nil
}

func typeVar(name string) string { return "InputType" + common.ExportedName(name) }

func kindConst(k metadata.Kind) jen.Code { return jen.Id(kindType + common.ExportedName(string(k))) }

func writeStructuralTypes(f *jen.File) {
	f.Comment("InputKind classifies input types, fields and parameters.")
	f.Type().Id(kindType).String()
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, k := range []metadata.Kind{metadata.KindScalar, metadata.KindEnum, metadata.KindObject, metadata.KindList} {
			g.Add(kindConst(k)).Id(kindType).Op("=").Lit(string(k))
		}
	})

	f.Type().Id(operationType).String()
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, k := range []meta.OperationKind{meta.Query, meta.Mutation, meta.Subscription} {
			g.Id(operationType + common.ExportedName(string(k))).Id(operationType).Op("=").Lit(string(k))
		}
	})

	f.Comment("GraphQLInputTypeMetadata describes an enum or input object type.")
	f.Type().Id(typeMetadata).Struct(
		jen.Id("Kind").Id(kindType),
		jen.Id("Type").String(),
		jen.Id("Description").String(),
		jen.Id("Values").Index().String(),
		jen.Id("Fields").Index().Id(fieldMetadata),
	)

	f.Comment("GraphQLInputFieldMetadata describes one field of an input object.")
	f.Comment("Type names scalar types; Ref points at enum and object declarations.")
	f.Type().Id(fieldMetadata).Struct(
		jen.Id("Name").String(),
		jen.Id("Kind").Id(kindType),
		jen.Id("ItemKind").Id(kindType),
		jen.Id("Type").String(),
		jen.Id("Ref").Op("*").Id(typeMetadata),
		jen.Id("Required").Bool(),
		jen.Id("AllowsEmpty").Bool(),
		jen.Id("Validation").Index().Id(validationMeta),
	)

	f.Type().Id(validationMeta).Struct(
		jen.Id("Type").String(),
		jen.Id("Constraints").Index().Qual(jsonPkg, "RawMessage"),
		jen.Id("Each").Bool(),
		jen.Id("Context").Qual(jsonPkg, "RawMessage"),
		jen.Id("Options").Qual(jsonPkg, "RawMessage"),
	)

	f.Comment("GraphQLOperationMetadata describes an operation and its parameters.")
	f.Type().Id(operationMetadata).Types(jen.Id("D").Id("any")).Struct(
		jen.Id("Operation").String(),
		jen.Id("OperationType").Id(operationType),
		jen.Id("Document").Id("D"),
		jen.Id("Parameters").Index().Id(parameterMetadata),
	)

	f.Type().Id(parameterMetadata).Struct(
		jen.Id("Parameter").String(),
		jen.Id("Required").Bool(),
		jen.Id("Kind").Id(kindType),
		jen.Id("ItemKind").Id(kindType),
		jen.Id("Type").String(),
		jen.Id("Ref").Op("*").Id(typeMetadata),
		jen.Id("AllowsEmpty").Bool(),
		jen.Id("Directives").Index().String(),
	)

	f.Func().Id("newOperation").Types(jen.Id("D").Id("any")).Params(
		jen.Id("name").String(),
		jen.Id("kind").Id(operationType),
		jen.Id("document").Id("D"),
		jen.Id("params").Op("...").Id(parameterMetadata),
	).Op("*").Id(operationMetadata).Types(jen.Id("D")).Block(
		jen.Return(jen.Op("&").Id(operationMetadata).Types(jen.Id("D")).Custom(multiLine,
			jen.Id("Operation").Op(":").Id("name"),
			jen.Id("OperationType").Op(":").Id("kind"),
			jen.Id("Document").Op(":").Id("document"),
			jen.Id("Parameters").Op(":").Id("params"),
		)),
	)
}

// writeDeclarations declares one pointer per type and fills them in init so
// that types may reference each other in any order, including cyclically.
func (g *goGen) writeDeclarations(f *jen.File) error {
	if len(g.md.Declarations) == 0 {
		return nil
	}

	vars := make([]jen.Code, 0, len(g.md.Declarations))
	assigns := make([]jen.Code, 0, len(g.md.Declarations))
	for _, it := range g.md.Declarations {
		id, err := g.ident(typeVar(it.TypeName()), it.TypeName())
		if err != nil {
			return err
		}
		vars = append(vars, jen.Id(id).Op("=").Op("&").Id(typeMetadata).Values())

		lit, err := declaration(it)
		if err != nil {
			return err
		}
		assigns = append(assigns, jen.Op("*").Id(id).Op("=").Id(typeMetadata).Custom(multiLine, lit...))
	}

	f.Var().Defs(vars...)
	f.Func().Id("init").Params().Block(assigns...)
	return nil
}

func declaration(it metadata.InputType) ([]jen.Code, error) {
	kv := []jen.Code{
		jen.Id("Kind").Op(":").Add(kindConst(it.Kind())),
		jen.Id("Type").Op(":").Lit(it.TypeName()),
	}
	if d := it.Describe(); d != "" {
		kv = append(kv, jen.Id("Description").Op(":").Lit(d))
	}

	switch t := it.(type) {
	case metadata.EnumType:
		values := make([]jen.Code, 0, len(t.Values))
		for _, v := range t.Values {
			values = append(values, jen.Lit(v))
		}
		kv = append(kv, jen.Id("Values").Op(":").Index().String().Values(values...))
	case metadata.ObjectType:
		fields := make([]jen.Code, 0, len(t.Fields))
		for _, fd := range t.Fields {
			lit, err := field(fd)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", t.Name, fd.FieldName(), err)
			}
			fields = append(fields, jen.Custom(multiLine, lit...))
		}
		kv = append(kv, jen.Id("Fields").Op(":").Index().Id(fieldMetadata).Custom(multiLine, fields...))
	default:
		return nil, &metadata.UnsupportedTypeError{Shape: it.TypeName(), Reason: fmt.Sprintf("no declaration for kind %q", it.Kind())}
	}
	return kv, nil
}

func field(fd metadata.Field) ([]jen.Code, error) {
	kv := []jen.Code{
		jen.Id("Name").Op(":").Lit(fd.FieldName()),
		jen.Id("Kind").Op(":").Add(kindConst(fd.Kind())),
	}
	kind := fd.Kind()
	if lf, ok := fd.(metadata.ListField); ok {
		if lf.ItemKind == "" {
			return nil, &metadata.UnsupportedTypeError{Shape: "[" + lf.ItemType + "]", Reason: "unresolved item kind"}
		}
		kind = lf.ItemKind
		kv = append(kv, jen.Id("ItemKind").Op(":").Add(kindConst(kind)))
	}
	kv = append(kv, typeRef(kind, fd.TypeName()))
	if fd.IsRequired() {
		kv = append(kv, jen.Id("Required").Op(":").True())
	}
	if lf, ok := fd.(metadata.ListField); ok && lf.AllowsEmpty {
		kv = append(kv, jen.Id("AllowsEmpty").Op(":").True())
	}

	if rules := fd.Rules(); len(rules) > 0 {
		items := make([]jen.Code, 0, len(rules))
		for _, r := range rules {
			lit, err := validation(r)
			if err != nil {
				return nil, err
			}
			items = append(items, jen.Custom(multiLine, lit...))
		}
		kv = append(kv, jen.Id("Validation").Op(":").Index().Id(validationMeta).Custom(multiLine, items...))
	}
	return kv, nil
}

// typeRef renders Type for scalars and Ref for declared types.
func typeRef(kind metadata.Kind, name string) jen.Code {
	if kind == metadata.KindScalar {
		return jen.Id("Type").Op(":").Lit(name)
	}
	return jen.Id("Ref").Op(":").Id(typeVar(name))
}

func validation(r metadata.ValidationRule) ([]jen.Code, error) {
	kv := []jen.Code{jen.Id("Type").Op(":").Lit(r.Type)}
	if len(r.Constraints) > 0 {
		items := make([]jen.Code, 0, len(r.Constraints))
		for _, c := range r.Constraints {
			raw, err := rawJSON(c)
			if err != nil {
				return nil, fmt.Errorf("validation %s constraint: %w", r.Type, err)
			}
			items = append(items, raw)
		}
		kv = append(kv, jen.Id("Constraints").Op(":").Index().Qual(jsonPkg, "RawMessage").Values(items...))
	}
	if r.Each {
		kv = append(kv, jen.Id("Each").Op(":").True())
	}
	for _, opt := range []struct {
		key string
		val any
	}{{"Context", r.Context}, {"Options", r.Options}} {
		if opt.val == nil {
			continue
		}
		raw, err := rawJSON(opt.val)
		if err != nil {
			return nil, fmt.Errorf("validation %s %s: %w", r.Type, strings.ToLower(opt.key), err)
		}
		kv = append(kv, jen.Id(opt.key).Op(":").Add(raw))
	}
	return kv, nil
}

func rawJSON(v any) (jen.Code, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jen.Qual(jsonPkg, "RawMessage").Call(jen.Lit(string(data))), nil
}

func (g *goGen) writeOperations(f *jen.File) error {
	for _, op := range g.md.Operations {
		id, err := g.ident(common.ExportedName(op.Name)+"Operation", op.Name)
		if err != nil {
			return err
		}

		args := []jen.Code{
			jen.Lit(op.Name),
			jen.Id(operationType + common.ExportedName(string(op.Kind))),
			g.document(op.Document),
		}
		for _, p := range op.Parameters {
			args = append(args, jen.Id(parameterMetadata).Custom(multiLine, parameter(p)...))
		}
		f.Var().Id(id).Op("=").Id("newOperation").Custom(multiCall, args...)
	}
	return nil
}

func (g *goGen) document(name string) jen.Code {
	if g.md.DocumentsImport != "" {
		return jen.Qual(g.md.DocumentsImport, name)
	}
	return jen.Id(name)
}

func parameter(p meta.Parameter) []jen.Code {
	kv := []jen.Code{jen.Id("Parameter").Op(":").Lit(p.ParameterName())}
	if p.IsRequired() {
		kv = append(kv, jen.Id("Required").Op(":").True())
	}
	kv = append(kv, jen.Id("Kind").Op(":").Add(kindConst(p.Kind())))

	kind := p.Kind()
	lp, isList := p.(meta.ListParameter)
	if isList {
		kind = lp.ItemKind
		kv = append(kv, jen.Id("ItemKind").Op(":").Add(kindConst(kind)))
	}
	kv = append(kv, typeRef(kind, p.TypeName()))
	if isList && lp.ListRequiresItems {
		kv = append(kv, jen.Id("AllowsEmpty").Op(":").True())
	}
	if ds := p.DirectiveNames(); len(ds) > 0 {
		items := make([]jen.Code, 0, len(ds))
		for _, d := range ds {
			items = append(items, jen.Lit(d))
		}
		kv = append(kv, jen.Id("Directives").Op(":").Index().String().Values(items...))
	}
	return kv
}
