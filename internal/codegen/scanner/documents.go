package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/globfs"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

// DocumentExtensions lists the file extensions read as operation documents.
var DocumentExtensions = []string{".graphql", ".gql"}

// DocumentScanner discovers operation documents and extracts their operations.
type DocumentScanner struct {
	fsys   fs.FS
	logger *slog.Logger
	dumper log.Dumper
}

func NewDocumentScanner(fsys fs.FS, logger *slog.Logger, dumper log.Dumper) *DocumentScanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dumper == nil {
		dumper = log.NewDumper(nil)
	}
	return &DocumentScanner{fsys: fsys, logger: logger, dumper: dumper}
}

// Scan parses every document matched by patterns and returns their operations
// in file order, then definition order within a file.
func (s *DocumentScanner) Scan(patterns []string) ([]meta.Operation, error) {
	files, err := globfs.Expand(s.fsys, patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", metadata.ErrConfiguration, err)
	}

	var ops []meta.Operation
	parsed := 0
	for _, name := range files {
		if !isDocument(name) {
			continue
		}
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", name, err)
		}
		s.dumper.Dump(true, name, data)

		fileOps, err := ParseDocument(name, string(data))
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Scanned document", "file", name, "operations", len(fileOps))
		ops = append(ops, fileOps...)
		parsed++
	}
	if parsed == 0 {
		return nil, fmt.Errorf("%w: document patterns %v matched no %s files", metadata.ErrConfiguration, patterns, strings.Join(DocumentExtensions, "/"))
	}
	s.logger.Info("Scanned operation documents", "files", parsed, "operations", len(ops))
	return ops, nil
}

func isDocument(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range DocumentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ParseDocument parses one document. Fragment definitions are ignored.
func ParseDocument(name, src string) ([]meta.Operation, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: src})
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", name, err)
	}

	ops := make([]meta.Operation, 0, len(doc.Operations))
	for _, def := range doc.Operations {
		op := meta.Operation{
			Name:   def.Name,
			Kind:   operationKind(def.Operation),
			Source: name,
		}
		for _, v := range def.VariableDefinitions {
			op.Variables = append(op.Variables, meta.Variable{
				Name:       v.Variable,
				Type:       ConvertType(v.Type),
				Directives: directiveNames(v.Directives),
			})
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func operationKind(op ast.Operation) meta.OperationKind {
	switch op {
	case ast.Mutation:
		return meta.Mutation
	case ast.Subscription:
		return meta.Subscription
	default:
		return meta.Query
	}
}

// ConvertType maps a parser type expression onto meta.TypeRef. A nil
// expression converts to a nil TypeRef.
func ConvertType(t *ast.Type) meta.TypeRef {
	if t == nil {
		return nil
	}
	var ref meta.TypeRef
	if t.Elem != nil {
		ref = meta.ListType{Of: ConvertType(t.Elem)}
	} else {
		ref = meta.NamedType{Name: t.NamedType}
	}
	if t.NonNull {
		ref = meta.NonNullType{Of: ref}
	}
	return ref
}

func directiveNames(list ast.DirectiveList) []string {
	if len(list) == 0 {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, d := range list {
		names = append(names, d.Name)
	}
	return names
}
