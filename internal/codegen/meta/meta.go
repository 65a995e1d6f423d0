package meta

import "github.com/kamsheffield/graphql-code-generator-community/internal/metadata"

// Metadata holds all analyzed information needed for code generation.
// Shared between generator orchestrator and language-specific generators.
type Metadata struct {
	Operations   []OperationDescriptor
	Declarations []metadata.InputType // resolved input types in emission order
	Package      string               // Go package name of the generated file
	// DocumentsImport is the module that exports the <Name>Document identifiers.
	// Empty means they are expected in scope already.
	DocumentsImport string
	Version         string
}

// DocumentNames returns the document identifiers of all operations in order.
func (m *Metadata) DocumentNames() []string {
	names := make([]string, 0, len(m.Operations))
	for _, op := range m.Operations {
		names = append(names, op.Document)
	}
	return names
}
