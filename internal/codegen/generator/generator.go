package generator

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/analyzer"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/common"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/generator/golang"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/generator/typescript"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/resolver"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/scanner"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
	"github.com/kamsheffield/graphql-code-generator-community/internal/metadata"
)

type LanguageGenerator func(logger *slog.Logger, w io.Writer, md *meta.Metadata) error

var generators = map[string]LanguageGenerator{
	"go":         golang.Generate,
	"typescript": typescript.Generate,
}

// Languages returns the supported target languages in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// Options selects the inputs of one run. Patterns are doublestar globs
// relative to the generator's file system.
type Options struct {
	Schema          []string
	Documents       []string
	Metadata        []string
	Order           resolver.Order
	Package         string
	DocumentsImport string
}

type Generator struct {
	fsys   fs.FS
	logger *slog.Logger
	dumper log.Dumper
}

func New(fsys fs.FS, logger *slog.Logger, dumper log.Dumper) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dumper == nil {
		dumper = log.NewDumper(nil)
	}
	return &Generator{fsys: fsys, logger: logger, dumper: dumper}
}

// LoadTable builds the type metadata table. Types derived from the schema
// come first and metadata files override them by name.
func (g *Generator) LoadTable(opts Options) (*metadata.Table, error) {
	if len(opts.Metadata) == 0 && len(opts.Schema) == 0 {
		return nil, fmt.Errorf("%w: the metadata option is required unless a schema is given", metadata.ErrConfiguration)
	}

	table := metadata.NewTable()
	if len(opts.Schema) > 0 {
		g.logger.Debug("Loading schema", "patterns", opts.Schema)
		schema, err := metadata.LoadSchema(g.fsys, opts.Schema, g.logger)
		if err != nil {
			return nil, err
		}
		fromSchema, err := metadata.FromSchema(schema)
		if err != nil {
			return nil, fmt.Errorf("derive metadata from schema: %w", err)
		}
		g.logger.Info("Derived metadata from schema", "types", fromSchema.Len())
		table.Merge(fromSchema)
	}
	if len(opts.Metadata) > 0 {
		files, err := metadata.NewLoader(g.fsys, g.logger).Load(opts.Metadata)
		if err != nil {
			return nil, err
		}
		table.Merge(files)
	}
	return table, nil
}

// Build scans documents, analyzes their operations and resolves every
// referenced input type. Any failure aborts the whole run.
func (g *Generator) Build(opts Options) (*meta.Metadata, error) {
	if len(opts.Documents) == 0 {
		return nil, fmt.Errorf("%w: no document patterns given", metadata.ErrConfiguration)
	}
	order, err := resolver.ParseOrder(string(opts.Order))
	if err != nil {
		return nil, err
	}

	table, err := g.LoadTable(opts)
	if err != nil {
		return nil, err
	}

	ops, err := scanner.NewDocumentScanner(g.fsys, g.logger, g.dumper).Scan(opts.Documents)
	if err != nil {
		return nil, err
	}

	an := analyzer.New(table)
	res := resolver.New(table, resolver.NewRegistry(), g.logger)
	md := &meta.Metadata{Package: opts.Package, DocumentsImport: opts.DocumentsImport}

	for _, op := range ops {
		desc, err := an.Analyze(op)
		if err != nil {
			return nil, err
		}
		if desc == nil {
			g.logger.Debug("Skipping operation without variables", "operation", op.String())
			continue
		}
		if err := res.ResolveOperation(desc); err != nil {
			return nil, err
		}
		md.Operations = append(md.Operations, *desc)
	}
	md.Declarations = res.Registry().Declarations(order)

	g.logger.Info("Analyzed operations",
		"operations", len(md.Operations),
		"declarations", len(md.Declarations),
		"order", order)
	return md, nil
}

// GenerateLang builds the metadata for opts and renders it for lang into w.
// w is only written once rendering has fully succeeded.
func (g *Generator) GenerateLang(lang string, w io.Writer, opts Options) error {
	gen, ok := generators[lang]
	if !ok {
		return fmt.Errorf("%w: unsupported language '%s' (supported: %v)", metadata.ErrConfiguration, lang, Languages())
	}

	md, err := g.Build(opts)
	if err != nil {
		return err
	}
	version, err := common.GetVersion()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	md.Version = version

	g.logger.Info("Generating operation metadata", "language", lang)
	var buf bytes.Buffer
	if err := gen(g.logger, &buf, md); err != nil {
		return fmt.Errorf("generate %s: %w", lang, err)
	}
	g.dumper.Dump(false, lang, buf.Bytes())

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
