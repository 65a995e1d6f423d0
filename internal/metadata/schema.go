package metadata

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/kamsheffield/graphql-code-generator-community/internal/globfs"
)

// LoadSchema parses every SDL file matched by patterns into one schema.
func LoadSchema(fsys fs.FS, patterns []string, logger *slog.Logger) (*ast.Schema, error) {
	files, err := globfs.Expand(fsys, patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: schema patterns %v matched no files", ErrConfiguration, patterns)
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", name, err)
		}
		sources = append(sources, &ast.Source{Name: name, Input: string(data)})
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	if logger != nil {
		logger.Debug("Loaded schema", "files", len(files), "types", len(schema.Types))
	}
	return schema, nil
}

// FromSchema derives input type metadata from a parsed schema. Scalars, enums
// and input objects are included; output types and introspection types are not.
// Directives on input fields other than @deprecated become validation rules
// whose constraints are the directive's argument values in declaration order.
func FromSchema(schema *ast.Schema) (*Table, error) {
	t := NewTable()
	for name, def := range schema.Types {
		if strings.HasPrefix(name, "__") {
			continue
		}
		switch def.Kind {
		case ast.Scalar:
			t.Set(ScalarType{Name: name, Description: def.Description})
		case ast.Enum:
			values := make([]string, 0, len(def.EnumValues))
			for _, v := range def.EnumValues {
				values = append(values, v.Name)
			}
			if len(values) == 0 {
				return nil, fmt.Errorf("%w: enum %s has no values", ErrInvalidMetadata, name)
			}
			t.Set(EnumType{Name: name, Description: def.Description, Values: values})
		case ast.InputObject:
			fields := make([]Field, 0, len(def.Fields))
			for _, fd := range def.Fields {
				f, err := schemaField(schema, fd)
				if err != nil {
					return nil, fmt.Errorf("input %s field %s: %w", name, fd.Name, err)
				}
				fields = append(fields, f)
			}
			t.Set(ObjectType{Name: name, Description: def.Description, Fields: fields})
		}
	}
	return t, nil
}

func schemaField(schema *ast.Schema, fd *ast.FieldDefinition) (Field, error) {
	rules, err := directiveRules(fd.Directives)
	if err != nil {
		return nil, err
	}
	base := FieldBase{Name: fd.Name, Required: fd.Type.NonNull, Validation: rules}

	if elem := fd.Type.Elem; elem != nil {
		if elem.Elem != nil {
			return nil, &UnsupportedTypeError{Shape: fd.Type.String(), Reason: "nested lists"}
		}
		kind, err := schemaKind(schema, elem.NamedType)
		if err != nil {
			return nil, err
		}
		return ListField{
			FieldBase:   base,
			ItemType:    elem.NamedType,
			ItemKind:    kind,
			AllowsEmpty: !elem.NonNull,
		}, nil
	}

	kind, err := schemaKind(schema, fd.Type.NamedType)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindEnum:
		return EnumField{FieldBase: base, Type: fd.Type.NamedType}, nil
	case KindObject:
		return ObjectField{FieldBase: base, Type: fd.Type.NamedType}, nil
	default:
		return ScalarField{FieldBase: base, Type: fd.Type.NamedType}, nil
	}
}

func schemaKind(schema *ast.Schema, name string) (Kind, error) {
	def, ok := schema.Types[name]
	if !ok {
		return "", &TypeNotFoundError{Name: name}
	}
	switch def.Kind {
	case ast.Scalar:
		return KindScalar, nil
	case ast.Enum:
		return KindEnum, nil
	case ast.InputObject:
		return KindObject, nil
	default:
		return "", &UnsupportedTypeError{Shape: name, Reason: fmt.Sprintf("%s is not an input type", def.Kind)}
	}
}

func directiveRules(directives ast.DirectiveList) ([]ValidationRule, error) {
	var rules []ValidationRule
	for _, d := range directives {
		if d.Name == "deprecated" {
			continue
		}
		rule := ValidationRule{Type: d.Name}
		for _, arg := range d.Arguments {
			v, err := arg.Value.Value(nil)
			if err != nil {
				return nil, fmt.Errorf("directive @%s argument %s: %w", d.Name, arg.Name, err)
			}
			rule.Constraints = append(rule.Constraints, v)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
