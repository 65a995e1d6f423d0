package cmd

import (
	"os"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/generator"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/resolver"
)

// Inputs are the source flags shared by generate and inspect. Patterns are
// doublestar globs relative to Dir.
type Inputs struct {
	Dir       string   `help:"Base directory all patterns are resolved against" default:"." type:"existingdir" env:"OPMETA_DIR"`
	Schema    []string `help:"Glob patterns of GraphQL schema files to derive input type metadata from" sep:"none" env:"OPMETA_SCHEMA"`
	Documents []string `help:"Glob patterns of GraphQL operation documents" sep:"none" env:"OPMETA_DOCUMENTS"`
	Metadata  []string `help:"Glob patterns of JSON or YAML input type metadata files" sep:"none" env:"OPMETA_METADATA"`
	Order     string   `help:"Order of emitted type declarations: dependency or insertion" default:"dependency" enum:"dependency,insertion" env:"OPMETA_ORDER"`
}

func (in Inputs) options() generator.Options {
	return generator.Options{
		Schema:    in.Schema,
		Documents: in.Documents,
		Metadata:  in.Metadata,
		Order:     resolver.Order(in.Order),
	}
}

func (in Inputs) dir() string {
	if in.Dir == "" {
		return "."
	}
	return in.Dir
}

func (in Inputs) newGenerator(g generatorDeps) *generator.Generator {
	return generator.New(os.DirFS(in.dir()), g.logger, g.dumper)
}
