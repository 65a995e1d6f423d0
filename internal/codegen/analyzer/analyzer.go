// Package analyzer classifies operation variables into parameter descriptors.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

var (
	ErrAnonymousOperation = errors.New("anonymous operation with variables")
	ErrDuplicateOperation = errors.New("duplicate operation name")
)

// Analyzer turns operations into descriptors, checking names across one run.
type Analyzer struct {
	table *metadata.Table
	seen  map[string]string // operation name -> source
}

func New(table *metadata.Table) *Analyzer {
	return &Analyzer{table: table, seen: map[string]string{}}
}

// Analyze returns nil for an operation without variables. Operations with
// variables must be named, and names must be unique among analyzed operations.
func (a *Analyzer) Analyze(op meta.Operation) (*meta.OperationDescriptor, error) {
	if len(op.Variables) == 0 {
		return nil, nil
	}
	if op.Name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrAnonymousOperation)
	}
	if prev, ok := a.seen[op.Name]; ok {
		return nil, fmt.Errorf("%s: %w, first declared in %s", op, ErrDuplicateOperation, prev)
	}

	desc, err := Analyze(op, a.table)
	if err != nil {
		return nil, err
	}
	a.seen[op.Name] = op.Source
	return desc, nil
}

// Analyze builds the descriptor of a single operation against table. It
// returns nil when the operation declares no variables.
func Analyze(op meta.Operation, table *metadata.Table) (*meta.OperationDescriptor, error) {
	if len(op.Variables) == 0 {
		return nil, nil
	}

	params := make([]meta.Parameter, 0, len(op.Variables))
	for _, v := range op.Variables {
		p, err := AnalyzeVariable(v, table)
		if err != nil {
			return nil, fmt.Errorf("%s variable $%s: %w", op, v.Name, err)
		}
		params = append(params, p)
	}

	return &meta.OperationDescriptor{
		Name:       op.Name,
		Kind:       op.Kind,
		Document:   meta.DocumentName(op.Name),
		Parameters: params,
	}, nil
}

// AnalyzeVariable classifies one variable declaration.
func AnalyzeVariable(v meta.Variable, table *metadata.Table) (meta.Parameter, error) {
	base := meta.ParameterBase{Name: v.Name, Directives: v.Directives}

	t := v.Type
	if nn, ok := t.(meta.NonNullType); ok {
		base.Required = true
		t = nn.Of
	}

	switch tt := t.(type) {
	case meta.NamedType:
		kind, err := table.KindOf(tt.Name)
		if err != nil {
			return nil, err
		}
		return namedParameter(base, kind, tt.Name)

	case meta.ListType:
		itemType, itemNonNull, err := listItem(tt)
		if err != nil {
			return nil, err
		}
		itemKind, err := table.KindOf(itemType)
		if err != nil {
			return nil, err
		}
		return meta.ListParameter{
			ParameterBase:     base,
			ItemType:          itemType,
			ItemKind:          itemKind,
			ListRequiresItems: !itemNonNull,
		}, nil

	default:
		return nil, &metadata.UnsupportedTypeError{Shape: meta.TypeString(v.Type)}
	}
}

func namedParameter(base meta.ParameterBase, kind metadata.Kind, name string) (meta.Parameter, error) {
	switch kind {
	case metadata.KindScalar:
		return meta.ScalarParameter{ParameterBase: base, Type: name}, nil
	case metadata.KindEnum:
		return meta.EnumParameter{ParameterBase: base, Type: name}, nil
	case metadata.KindObject:
		return meta.ObjectParameter{ParameterBase: base, Type: name}, nil
	default:
		return nil, &metadata.UnsupportedTypeError{Shape: name, Reason: fmt.Sprintf("table kind %q", kind)}
	}
}

// listItem accepts [T] and [T!] only.
func listItem(l meta.ListType) (name string, nonNull bool, err error) {
	switch it := l.Of.(type) {
	case meta.NamedType:
		return it.Name, false, nil
	case meta.NonNullType:
		if named, ok := it.Of.(meta.NamedType); ok {
			return named.Name, true, nil
		}
	}
	return "", false, &metadata.UnsupportedTypeError{Shape: l.String(), Reason: "list items must be named types"}
}
