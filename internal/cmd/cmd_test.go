package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

const testMetadata = `types:
  input:
    ID:
      kind: scalar
      type: ID
    Status:
      kind: enum
      type: Status
      values: [ACTIVE, INACTIVE]
    Filter:
      kind: object
      type: Filter
      fields:
        - name: status
          kind: enum
          type: Status
          required: true
        - name: tags
          kind: list
          type: String
          itemKind: scalar
          allowsEmpty: false
`

const testDocuments = `query Search($f: Filter!, $ids: [ID!]) { search(f: $f, ids: $ids) { id } }
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "graphql"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.yaml"), []byte(testMetadata), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graphql", "search.graphql"), []byte(testDocuments), 0o644))
	return dir
}

func testInputs(dir string) Inputs {
	return Inputs{
		Dir:       dir,
		Documents: []string{"graphql/**/*.graphql"},
		Metadata:  []string{"*.yaml"},
		Order:     "dependency",
	}
}

func TestGenerateWritesOutputFile(t *testing.T) {
	dir := writeProject(t)
	out := filepath.Join(dir, "gen", "operations.ts")

	c := &Generate{Inputs: testInputs(dir), Output: out, Lang: "typescript", Package: "operations", DocumentsImport: "./graphql"}
	require.NoError(t, c.Run(discardLogger(), log.NewDumper(nil)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "import { SearchDocument } from './graphql';")
	assert.Contains(t, string(data), "export const SearchOperation")
}

func TestGenerateGo(t *testing.T) {
	dir := writeProject(t)

	var buf bytes.Buffer
	c := &Generate{Inputs: testInputs(dir), Lang: "go", Package: "ops"}
	require.NoError(t, c.generate(generatorDeps{logger: discardLogger(), dumper: log.NewDumper(nil)}, &buf))

	assert.Contains(t, buf.String(), "package ops")
	assert.Contains(t, buf.String(), "SearchOperation")
}

func TestGenerateDumpsInputsAndOutput(t *testing.T) {
	dir := writeProject(t)

	var dump, out bytes.Buffer
	c := &Generate{Inputs: testInputs(dir), Lang: "typescript"}
	require.NoError(t, c.generate(generatorDeps{logger: discardLogger(), dumper: log.NewDumper(&dump)}, &out))

	assert.Contains(t, dump.String(), "graphql/search.graphql")
	assert.Contains(t, dump.String(), "out typescript")
}

func TestGenerateFailureLeavesOutputUntouched(t *testing.T) {
	dir := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graphql", "bad.graphql"),
		[]byte(`query Bad($x: Missing) { x }`), 0o644))
	out := filepath.Join(dir, "operations.ts")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	c := &Generate{Inputs: testInputs(dir), Output: out, Lang: "typescript"}
	err := c.Run(discardLogger(), log.NewDumper(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrTypeNotFound)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestInspectOperations(t *testing.T) {
	dir := writeProject(t)

	var buf bytes.Buffer
	c := &Inspect{Inputs: testInputs(dir), Format: "json"}
	require.NoError(t, c.write(generatorDeps{logger: discardLogger(), dumper: log.NewDumper(nil)}, &buf))

	var rep report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	require.Len(t, rep.Operations, 1)
	op := rep.Operations[0]
	assert.Equal(t, "Search", op.Name)
	assert.Equal(t, "query", op.Kind)
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, "object", op.Parameters[0].Kind)
	assert.True(t, op.Parameters[0].Required)
	assert.Equal(t, "list", op.Parameters[1].Kind)
	assert.Equal(t, "scalar", op.Parameters[1].ItemKind)
	require.NotNil(t, op.Parameters[1].AllowsEmpty)
	assert.False(t, *op.Parameters[1].AllowsEmpty)

	var names []string
	for _, ty := range rep.Types {
		names = append(names, ty.Name)
	}
	assert.Equal(t, []string{"Status", "Filter"}, names)
}

func TestInspectTableYAML(t *testing.T) {
	dir := writeProject(t)

	var buf bytes.Buffer
	c := &Inspect{Inputs: testInputs(dir), Format: "yaml", Table: true}
	require.NoError(t, c.write(generatorDeps{logger: discardLogger(), dumper: log.NewDumper(nil)}, &buf))

	var rep report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	assert.Empty(t, rep.Operations)
	require.Len(t, rep.Types, 3)
	assert.Equal(t, "Filter", rep.Types[0].Name)
	assert.Equal(t, "ID", rep.Types[1].Name)
	require.Len(t, rep.Types[0].Fields, 2)
	assert.Equal(t, "String", rep.Types[0].Fields[1].Type)
	require.NotNil(t, rep.Types[0].Fields[1].AllowsEmpty)
	assert.False(t, *rep.Types[0].Fields[1].AllowsEmpty)
}

func TestInspectRequiresSources(t *testing.T) {
	c := &Inspect{Inputs: Inputs{Dir: t.TempDir(), Documents: []string{"*.graphql"}}}
	err := c.write(generatorDeps{logger: discardLogger(), dumper: log.NewDumper(nil)}, &bytes.Buffer{})
	assert.ErrorIs(t, err, metadata.ErrConfiguration)
}
