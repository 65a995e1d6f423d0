package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

// Inspect prints what the generator sees without rendering code.
type Inspect struct {
	Inputs `embed:""`

	Format string `help:"Output format" enum:"json,yaml" default:"json"`
	Table  bool   `help:"Print the merged input type table instead of analyzed operations"`
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger, dumper log.Dumper) error {
	return c.write(generatorDeps{logger: logger, dumper: dumper}, os.Stdout)
}

type report struct {
	Operations []operationReport `json:"operations,omitempty" yaml:"operations,omitempty"`
	Types      []typeReport      `json:"types" yaml:"types"`
}

type operationReport struct {
	Name       string            `json:"operation" yaml:"operation"`
	Kind       string            `json:"operationType" yaml:"operationType"`
	Document   string            `json:"document" yaml:"document"`
	Parameters []parameterReport `json:"parameters" yaml:"parameters"`
}

type parameterReport struct {
	Name        string   `json:"parameter" yaml:"parameter"`
	Required    bool     `json:"required" yaml:"required"`
	Kind        string   `json:"kind" yaml:"kind"`
	ItemKind    string   `json:"itemKind,omitempty" yaml:"itemKind,omitempty"`
	Type        string   `json:"type" yaml:"type"`
	AllowsEmpty *bool    `json:"allowsEmpty,omitempty" yaml:"allowsEmpty,omitempty"`
	Directives  []string `json:"directives,omitempty" yaml:"directives,omitempty"`
}

type typeReport struct {
	Name        string        `json:"type" yaml:"type"`
	Kind        string        `json:"kind" yaml:"kind"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Values      []string      `json:"values,omitempty" yaml:"values,omitempty"`
	Fields      []fieldReport `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type fieldReport struct {
	Name        string                    `json:"name" yaml:"name"`
	Kind        string                    `json:"kind" yaml:"kind"`
	ItemKind    string                    `json:"itemKind,omitempty" yaml:"itemKind,omitempty"`
	Type        string                    `json:"type" yaml:"type"`
	Required    bool                      `json:"required" yaml:"required"`
	AllowsEmpty *bool                     `json:"allowsEmpty,omitempty" yaml:"allowsEmpty,omitempty"`
	Validation  []metadata.ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
}

func (c *Inspect) write(deps generatorDeps, w io.Writer) error {
	gen := c.newGenerator(deps)

	var rep report
	if c.Table {
		table, err := gen.LoadTable(c.options())
		if err != nil {
			return err
		}
		for _, name := range table.Names() {
			it, _ := table.Lookup(name)
			rep.Types = append(rep.Types, describeType(it))
		}
	} else {
		md, err := gen.Build(c.options())
		if err != nil {
			return err
		}
		for _, op := range md.Operations {
			rep.Operations = append(rep.Operations, describeOperation(op))
		}
		for _, it := range md.Declarations {
			rep.Types = append(rep.Types, describeType(it))
		}
	}

	switch c.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
}

func describeOperation(op meta.OperationDescriptor) operationReport {
	r := operationReport{Name: op.Name, Kind: string(op.Kind), Document: op.Document}
	for _, p := range op.Parameters {
		pr := parameterReport{
			Name:       p.ParameterName(),
			Required:   p.IsRequired(),
			Kind:       string(p.Kind()),
			Type:       p.TypeName(),
			Directives: p.DirectiveNames(),
		}
		if lp, ok := p.(meta.ListParameter); ok {
			allowsEmpty := lp.ListRequiresItems
			pr.ItemKind = string(lp.ItemKind)
			pr.AllowsEmpty = &allowsEmpty
		}
		r.Parameters = append(r.Parameters, pr)
	}
	return r
}

func describeType(it metadata.InputType) typeReport {
	r := typeReport{Name: it.TypeName(), Kind: string(it.Kind()), Description: it.Describe()}
	switch t := it.(type) {
	case metadata.EnumType:
		r.Values = t.Values
	case metadata.ObjectType:
		for _, f := range t.Fields {
			fr := fieldReport{
				Name:       f.FieldName(),
				Kind:       string(f.Kind()),
				Type:       f.TypeName(),
				Required:   f.IsRequired(),
				Validation: f.Rules(),
			}
			if lf, ok := f.(metadata.ListField); ok {
				allowsEmpty := lf.AllowsEmpty
				fr.ItemKind = string(lf.ItemKind)
				fr.AllowsEmpty = &allowsEmpty
			}
			r.Fields = append(r.Fields, fr)
		}
	}
	return r
}
