package typescript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/common"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

// Template views hold ready-to-print TypeScript expressions.

type fileView struct {
	Header       string
	Import       string
	Documents    []string
	Declarations []declarationView
	Operations   []operationView
}

type declarationView struct {
	Name        string
	Interface   string
	Kind        metadata.Kind
	Type        string
	Description string
	Values      []string
	IsObject    bool
	Fields      []fieldView
}

type fieldView struct {
	Name        string
	Kind        metadata.Kind
	ItemKind    metadata.Kind
	Type        string
	Required    bool
	AllowsEmpty string
	Validation  []validationView
}

type validationView struct {
	Type        string
	Constraints []string
	Each        bool
	Context     string
	Options     string
}

type operationView struct {
	Name       string
	Operation  string
	Kind       meta.OperationKind
	Document   string
	Parameters []parameterView
}

type parameterView struct {
	Name        string
	Required    bool
	Kind        metadata.Kind
	ItemKind    metadata.Kind
	Type        string
	AllowsEmpty string
	Directives  []string
}

const namespace = "GraphQLInputTypes"

func buildFileView(md *meta.Metadata, version string) (*fileView, error) {
	v := &fileView{
		Header: strings.TrimRight(common.FileHeader("//", version), "\n"),
	}
	if md.DocumentsImport != "" {
		v.Import = common.QuoteSingle(md.DocumentsImport)
		v.Documents = md.DocumentNames()
	}

	for _, it := range md.Declarations {
		d, err := declaration(it)
		if err != nil {
			return nil, err
		}
		v.Declarations = append(v.Declarations, d)
	}
	for _, op := range md.Operations {
		o, err := operation(op)
		if err != nil {
			return nil, err
		}
		v.Operations = append(v.Operations, o)
	}
	return v, nil
}

func declaration(it metadata.InputType) (declarationView, error) {
	d := declarationView{
		Name: it.TypeName(),
		Kind: it.Kind(),
		Type: common.QuoteSingle(it.TypeName()),
	}
	if desc := it.Describe(); desc != "" {
		d.Description = common.QuoteSingle(desc)
	}

	switch t := it.(type) {
	case metadata.EnumType:
		d.Interface = "GraphQLInputEnumTypeMetadata"
		for _, val := range t.Values {
			d.Values = append(d.Values, common.QuoteSingle(val))
		}
	case metadata.ObjectType:
		d.Interface = "GraphQLInputObjectTypeMetadata"
		d.IsObject = true
		for _, f := range t.Fields {
			fv, err := field(f)
			if err != nil {
				return d, fmt.Errorf("%s.%s: %w", t.Name, f.FieldName(), err)
			}
			d.Fields = append(d.Fields, fv)
		}
	default:
		return d, &metadata.UnsupportedTypeError{Shape: it.TypeName(), Reason: fmt.Sprintf("no declaration for kind %q", it.Kind())}
	}
	return d, nil
}

func field(f metadata.Field) (fieldView, error) {
	fv := fieldView{
		Name:     common.QuoteSingle(f.FieldName()),
		Kind:     f.Kind(),
		Required: f.IsRequired(),
	}
	switch ff := f.(type) {
	case metadata.ScalarField:
		fv.Type = common.QuoteSingle(ff.Type)
	case metadata.EnumField, metadata.ObjectField:
		fv.Type = reference(f.TypeName())
	case metadata.ListField:
		if ff.ItemKind == "" {
			return fv, &metadata.UnsupportedTypeError{Shape: "[" + ff.ItemType + "]", Reason: "unresolved item kind"}
		}
		fv.ItemKind = ff.ItemKind
		fv.Type = typeExpr(ff.ItemKind, ff.ItemType)
		fv.AllowsEmpty = strconv.FormatBool(ff.AllowsEmpty)
	}

	for _, rule := range f.Rules() {
		vv, err := validation(rule)
		if err != nil {
			return fv, err
		}
		fv.Validation = append(fv.Validation, vv)
	}
	return fv, nil
}

func validation(rule metadata.ValidationRule) (validationView, error) {
	vv := validationView{Type: common.QuoteSingle(rule.Type), Each: rule.Each}
	for _, c := range rule.Constraints {
		s, err := jsonLiteral(c)
		if err != nil {
			return vv, fmt.Errorf("validation %s constraint: %w", rule.Type, err)
		}
		vv.Constraints = append(vv.Constraints, s)
	}
	var err error
	if rule.Context != nil {
		if vv.Context, err = jsonLiteral(rule.Context); err != nil {
			return vv, fmt.Errorf("validation %s context: %w", rule.Type, err)
		}
	}
	if rule.Options != nil {
		if vv.Options, err = jsonLiteral(rule.Options); err != nil {
			return vv, fmt.Errorf("validation %s options: %w", rule.Type, err)
		}
	}
	return vv, nil
}

func operation(op meta.OperationDescriptor) (operationView, error) {
	ov := operationView{
		Name:      op.Name,
		Operation: common.QuoteSingle(op.Name),
		Kind:      op.Kind,
		Document:  op.Document,
	}
	for _, p := range op.Parameters {
		pv := parameterView{
			Name:     common.QuoteSingle(p.ParameterName()),
			Required: p.IsRequired(),
			Kind:     p.Kind(),
			Type:     typeExpr(p.Kind(), p.TypeName()),
		}
		if lp, ok := p.(meta.ListParameter); ok {
			pv.ItemKind = lp.ItemKind
			pv.Type = typeExpr(lp.ItemKind, lp.ItemType)
			pv.AllowsEmpty = strconv.FormatBool(lp.ListRequiresItems)
		}
		for _, d := range p.DirectiveNames() {
			pv.Directives = append(pv.Directives, common.QuoteSingle(d))
		}
		ov.Parameters = append(ov.Parameters, pv)
	}
	return ov, nil
}

// typeExpr is a string literal for scalars and a declaration reference otherwise.
func typeExpr(kind metadata.Kind, name string) string {
	if kind == metadata.KindScalar {
		return common.QuoteSingle(name)
	}
	return reference(name)
}

func reference(name string) string { return namespace + "." + name }

func jsonLiteral(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
