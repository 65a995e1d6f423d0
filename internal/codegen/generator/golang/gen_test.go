package golang

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

func testMetadata() *meta.Metadata {
	status := metadata.EnumType{Name: "Status", Values: []string{"ACTIVE", "INACTIVE"}}
	node := metadata.ObjectType{Name: "Node", Description: "Tree node", Fields: []metadata.Field{
		metadata.EnumField{FieldBase: metadata.FieldBase{Name: "status", Required: true}, Type: "Status"},
		metadata.ObjectField{FieldBase: metadata.FieldBase{Name: "parent"}, Type: "Node"},
		metadata.ListField{FieldBase: metadata.FieldBase{Name: "labels"}, ItemType: "String", ItemKind: metadata.KindScalar, AllowsEmpty: true},
		metadata.ScalarField{FieldBase: metadata.FieldBase{Name: "title", Validation: []metadata.ValidationRule{
			{Type: "length", Constraints: []any{1, 80}, Options: map[string]any{"message": "bad"}},
		}}, Type: "String"},
	}}

	return &meta.Metadata{
		Version:      "1.0.0",
		Package:      "ops",
		Declarations: []metadata.InputType{status, node},
		Operations: []meta.OperationDescriptor{{
			Name: "Search", Kind: meta.Query, Document: "SearchDocument",
			Parameters: []meta.Parameter{
				meta.ObjectParameter{ParameterBase: meta.ParameterBase{Name: "node", Required: true}, Type: "Node"},
				meta.ListParameter{
					ParameterBase: meta.ParameterBase{Name: "states", Directives: []string{"trim"}},
					ItemType:      "Status", ItemKind: metadata.KindEnum, ListRequiresItems: true,
				},
			},
		}},
	}
}

// squash collapses whitespace so assertions ignore gofmt alignment.
func squash(s string) string { return strings.Join(strings.Fields(s), " ") }

func generate(t *testing.T, md *meta.Metadata) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Generate(slog.Default(), &buf, md))
	return buf.String()
}

func TestGenerateParses(t *testing.T) {
	src := generate(t, testMetadata())

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "ops.go", src, parser.ParseComments)
	require.NoError(t, err, src)
	assert.Equal(t, "ops", file.Name.Name)
	assert.True(t, ast.IsGenerated(file))

	decls := map[string]bool{}
	ast.Inspect(file, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.TypeSpec:
			decls[d.Name.Name] = true
		case *ast.ValueSpec:
			for _, id := range d.Names {
				decls[id.Name] = true
			}
		case *ast.FuncDecl:
			decls[d.Name.Name] = true
		}
		return true
	})
	for _, name := range []string{
		"InputKind", "OperationType", "GraphQLInputTypeMetadata", "GraphQLInputFieldMetadata",
		"GraphQLValidationMetadata", "GraphQLOperationMetadata", "GraphQLOperationParameterMetadata",
		"newOperation", "init", "InputTypeStatus", "InputTypeNode", "SearchOperation",
	} {
		assert.True(t, decls[name], "missing declaration %s", name)
	}
}

func TestGenerateContent(t *testing.T) {
	out := squash(generate(t, testMetadata()))

	for _, want := range []string{
		`// Code generated by opmeta v1.0.0. DO NOT EDIT.`,
		`InputTypeStatus = &GraphQLInputTypeMetadata{}`,
		`*InputTypeStatus = GraphQLInputTypeMetadata{ Kind: InputKindEnum, Type: "Status", Values: []string{"ACTIVE", "INACTIVE"}, }`,
		`Description: "Tree node",`,
		`{ Name: "status", Kind: InputKindEnum, Ref: InputTypeStatus, Required: true, },`,
		`{ Name: "parent", Kind: InputKindObject, Ref: InputTypeNode, },`,
		`{ Name: "labels", Kind: InputKindList, ItemKind: InputKindScalar, Type: "String", AllowsEmpty: true, },`,
		`Constraints: []json.RawMessage{json.RawMessage("1"), json.RawMessage("80")},`,
		`Options: json.RawMessage("{\"message\":\"bad\"}"),`,
		`var SearchOperation = newOperation( "Search", OperationTypeQuery, SearchDocument,`,
		`GraphQLOperationParameterMetadata{ Parameter: "node", Required: true, Kind: InputKindObject, Ref: InputTypeNode, },`,
		`GraphQLOperationParameterMetadata{ Parameter: "states", Kind: InputKindList, ItemKind: InputKindEnum, Ref: InputTypeStatus, AllowsEmpty: true, Directives: []string{"trim"}, },`,
		`type GraphQLOperationMetadata[D any] struct {`,
	} {
		assert.Contains(t, out, squash(want))
	}
}

func TestGenerateQualifiedDocuments(t *testing.T) {
	md := testMetadata()
	md.DocumentsImport = "example.com/app/graphql"
	out := generate(t, md)

	assert.Contains(t, out, `"example.com/app/graphql"`)
	assert.Contains(t, squash(out), `graphql.SearchDocument,`)
}

func TestGenerateDefaultPackage(t *testing.T) {
	md := testMetadata()
	md.Package = ""
	assert.Contains(t, generate(t, md), "package "+DefaultPackage)
}

func TestGenerateIdentifierClash(t *testing.T) {
	md := &meta.Metadata{
		Version: "1.0.0",
		Declarations: []metadata.InputType{
			metadata.EnumType{Name: "user_input", Values: []string{"A"}},
			metadata.EnumType{Name: "UserInput", Values: []string{"B"}},
		},
	}
	var buf bytes.Buffer
	err := Generate(slog.Default(), &buf, md)
	assert.ErrorIs(t, err, metadata.ErrConfiguration)
	assert.Zero(t, buf.Len())
}
