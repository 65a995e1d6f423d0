// Package resolver discovers every input type reachable from operation
// parameters and registers each one exactly once.
package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

type Resolver struct {
	table    *metadata.Table
	registry *Registry
	logger   *slog.Logger
}

func New(table *metadata.Table, registry *Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{table: table, registry: registry, logger: logger}
}

func (r *Resolver) Registry() *Registry { return r.registry }

// ResolveOperation resolves the type of every parameter of op.
func (r *Resolver) ResolveOperation(op *meta.OperationDescriptor) error {
	for _, p := range op.Parameters {
		if err := r.Resolve(p.TypeName()); err != nil {
			return fmt.Errorf("operation %s parameter %s: %w", op.Name, p.ParameterName(), err)
		}
	}
	return nil
}

// Resolve ensures name and every enum or object type it references are
// registered. Scalars are never registered. Objects are registered before
// their fields are visited so reference cycles terminate.
func (r *Resolver) Resolve(name string) error {
	if r.registry.Has(name) {
		return nil
	}
	it, err := r.table.Lookup(name)
	if err != nil {
		return err
	}

	switch t := it.(type) {
	case metadata.ScalarType:
		return nil
	case metadata.EnumType:
		r.registry.Register(t)
		r.registry.complete(name)
		r.logger.Log(context.Background(), log.LevelTrace, "Registered enum", "type", name)
		return nil
	case metadata.ObjectType:
		obj, err := r.withItemKinds(t)
		if err != nil {
			return err
		}
		r.registry.Register(obj)
		r.logger.Log(context.Background(), log.LevelTrace, "Registered object", "type", name, "fields", len(obj.Fields))
		for _, f := range obj.Fields {
			if !references(f) {
				continue
			}
			if err := r.Resolve(f.TypeName()); err != nil {
				return fmt.Errorf("%s.%s: %w", name, f.FieldName(), err)
			}
		}
		r.registry.complete(name)
		return nil
	default:
		return &metadata.UnsupportedTypeError{Shape: name, Reason: fmt.Sprintf("table kind %q", it.Kind())}
	}
}

// references reports whether f points at a type that needs a declaration.
func references(f metadata.Field) bool {
	switch ff := f.(type) {
	case metadata.EnumField, metadata.ObjectField:
		return true
	case metadata.ListField:
		return ff.ItemKind == metadata.KindEnum || ff.ItemKind == metadata.KindObject
	}
	return false
}

// withItemKinds returns a copy of obj whose list fields all carry an item kind.
func (r *Resolver) withItemKinds(obj metadata.ObjectType) (metadata.ObjectType, error) {
	fields := make([]metadata.Field, len(obj.Fields))
	for i, f := range obj.Fields {
		lf, ok := f.(metadata.ListField)
		if ok && lf.ItemKind == "" {
			kind, err := r.table.KindOf(lf.ItemType)
			if err != nil {
				return obj, fmt.Errorf("%s.%s: %w", obj.Name, lf.Name, err)
			}
			lf.ItemKind = kind
			f = lf
		}
		fields[i] = f
	}
	obj.Fields = fields
	return obj, nil
}
