package generator

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/analyzer"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/resolver"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

const scenarioMetadata = `{
  "types": {
    "input": {
      "Status": {"kind": "enum", "type": "Status", "values": ["ACTIVE", "INACTIVE"]},
      "Filter": {"kind": "object", "type": "Filter", "fields": [
        {"name": "status", "kind": "enum", "type": "Status", "required": true}
      ]}
    }
  }
}`

func scenarioFS(documents string) fstest.MapFS {
	return fstest.MapFS{
		"metadata/types.json":      {Data: []byte(scenarioMetadata)},
		"documents/search.graphql": {Data: []byte(documents)},
	}
}

func scenarioOptions() Options {
	return Options{Metadata: []string{"metadata/**/*.json"}, Documents: []string{"documents/*.graphql"}}
}

func TestBuildScenario(t *testing.T) {
	g := New(scenarioFS(`query Search($f: Filter!) { search(f: $f) { id } }`), nil, nil)

	md, err := g.Build(scenarioOptions())
	require.NoError(t, err)

	require.Len(t, md.Declarations, 2)
	assert.Equal(t, "Status", md.Declarations[0].TypeName())
	assert.Equal(t, "Filter", md.Declarations[1].TypeName())

	require.Len(t, md.Operations, 1)
	op := md.Operations[0]
	assert.Equal(t, "Search", op.Name)
	assert.Equal(t, "SearchDocument", op.Document)
	assert.Equal(t, []meta.Parameter{
		meta.ObjectParameter{ParameterBase: meta.ParameterBase{Name: "f", Required: true}, Type: "Filter"},
	}, op.Parameters)
}

func TestGenerateTypeScriptScenario(t *testing.T) {
	g := New(scenarioFS(`
query Search($f: Filter!) { search(f: $f) { id } }
query Again($f: Filter, $s: Status) { search(f: $f) { id } }
query NoVars { ping }
`), nil, nil)

	var buf bytes.Buffer
	require.NoError(t, g.GenerateLang("typescript", &buf, scenarioOptions()))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "export const Status: GraphQLInputEnumTypeMetadata"))
	assert.Equal(t, 1, strings.Count(out, "export const Filter: GraphQLInputObjectTypeMetadata"))
	assert.Less(t, strings.Index(out, "export const Status:"), strings.Index(out, "export const Filter:"))
	assert.Contains(t, out, "export const SearchOperation: GraphQLOperationMetadata<typeof SearchDocument> = {")
	assert.Contains(t, out, "export const AgainOperation")
	assert.NotContains(t, out, "NoVarsOperation")
	assert.Contains(t, out, `      parameter: 'f',
      required: true,
      kind: 'object',
      type: GraphQLInputTypes.Filter,`)
}

func TestGenerateDeterministic(t *testing.T) {
	fsys := scenarioFS(`query Search($f: Filter!, $s: [Status]) { search(f: $f) { id } }`)

	var a, b bytes.Buffer
	require.NoError(t, New(fsys, nil, nil).GenerateLang("go", &a, scenarioOptions()))
	require.NoError(t, New(fsys, nil, nil).GenerateLang("go", &b, scenarioOptions()))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name      string
		documents string
		target    error
	}{
		{name: "list of lists", documents: `query Grid($g: [[Int]]) { a }`, target: metadata.ErrUnsupportedType},
		{name: "missing type", documents: `query Q($x: Missing) { a }`, target: metadata.ErrTypeNotFound},
		{name: "anonymous with variables", documents: `query ($f: Filter) { a }`, target: analyzer.ErrAnonymousOperation},
		{
			name:      "duplicate names",
			documents: "query Q($f: Filter) { a }\nmutation Q($f: Filter) { b }",
			target:    analyzer.ErrDuplicateOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := New(scenarioFS(tt.documents), nil, nil).GenerateLang("typescript", &buf, scenarioOptions())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestGenerateConfigurationErrors(t *testing.T) {
	fsys := scenarioFS(`query Search($f: Filter!) { a }`)

	tests := []struct {
		name string
		lang string
		opts Options
	}{
		{name: "unknown language", lang: "cobol", opts: scenarioOptions()},
		{name: "no metadata or schema", lang: "typescript", opts: Options{Documents: []string{"documents/*.graphql"}}},
		{name: "no documents", lang: "typescript", opts: Options{Metadata: []string{"metadata/*.json"}}},
		{name: "metadata matches nothing", lang: "typescript", opts: Options{Metadata: []string{"nope/*.json"}, Documents: []string{"documents/*.graphql"}}},
		{name: "bad order", lang: "typescript", opts: Options{Metadata: []string{"metadata/*.json"}, Documents: []string{"documents/*.graphql"}, Order: "random"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := New(fsys, nil, nil).GenerateLang(tt.lang, &buf, tt.opts)
			assert.ErrorIs(t, err, metadata.ErrConfiguration)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestBuildFromSchemaWithOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.graphql": {Data: []byte(`
enum Status { ACTIVE INACTIVE }
input Filter { status: Status! tags: [String!] }
type Query { search(f: Filter): [String] }
`)},
		"override.yaml": {Data: []byte("types:\n  input:\n    Status:\n      kind: enum\n      values: [ONLY]\n")},
		"q.graphql":     {Data: []byte(`query Search($f: Filter) { search(f: $f) }`)},
	}

	md, err := New(fsys, nil, nil).Build(Options{
		Schema:    []string{"schema.graphql"},
		Metadata:  []string{"*.yaml"},
		Documents: []string{"q.graphql"},
	})
	require.NoError(t, err)
	require.Len(t, md.Declarations, 2)

	status := md.Declarations[0].(metadata.EnumType)
	assert.Equal(t, []string{"ONLY"}, status.Values, "metadata files override schema types")

	filter := md.Declarations[1].(metadata.ObjectType)
	tags := filter.Fields[1].(metadata.ListField)
	assert.Equal(t, metadata.KindScalar, tags.ItemKind)
	assert.False(t, tags.AllowsEmpty)
}

func TestBuildInsertionOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"m.json": {Data: []byte(`{"types":{"input":{
			"A":{"kind":"object","type":"A","fields":[{"name":"v","kind":"scalar","type":"Int"}]},
			"B":{"kind":"object","type":"B","fields":[{"name":"a","kind":"object","type":"A"}]},
			"X":{"kind":"object","type":"X","fields":[
				{"name":"a","kind":"object","type":"A"},
				{"name":"b","kind":"object","type":"B"}]}}}}`)},
		"q.graphql": {Data: []byte(`query Q($x: X) { a }`)},
	}
	opts := Options{Metadata: []string{"m.json"}, Documents: []string{"q.graphql"}}

	names := func(md *meta.Metadata) []string {
		var out []string
		for _, d := range md.Declarations {
			out = append(out, d.TypeName())
		}
		return out
	}

	md, err := New(fsys, nil, nil).Build(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X"}, names(md))

	opts.Order = resolver.OrderInsertion
	md, err = New(fsys, nil, nil).Build(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "X"}, names(md))
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"go", "typescript"}, Languages())
}
