package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kamsheffield/graphql-code-generator-community/internal/configpaths"
	"github.com/kamsheffield/graphql-code-generator-community/internal/log"
)

type Generate struct {
	Inputs `embed:""`

	Output          string `short:"o" help:"Output file; generated code goes to stdout when empty" type:"path" env:"OPMETA_OUTPUT"`
	Lang            string `help:"Target language: typescript or go" default:"typescript" enum:"typescript,go" env:"OPMETA_LANG"`
	Package         string `help:"Package name of generated Go code" default:"operations" env:"OPMETA_PACKAGE"`
	DocumentsImport string `help:"Module exporting the <Operation>Document identifiers; TypeScript import path or Go package path" env:"OPMETA_DOCUMENTS_IMPORT"`
}

type generatorDeps struct {
	logger *slog.Logger
	dumper log.Dumper
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, dumper log.Dumper) error {
	logger.Info("Starting operation metadata generation", "dir", c.dir(), "lang", c.Lang, "output", c.Output)

	var buf bytes.Buffer
	if err := c.generate(generatorDeps{logger: logger, dumper: dumper}, &buf); err != nil {
		return err
	}

	if c.Output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := configpaths.EnsureDir(c.Output); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	logger.Info("Operation metadata generation complete", "output", c.Output, "bytes", buf.Len())
	return nil
}

func (c *Generate) generate(deps generatorDeps, w io.Writer) error {
	opts := c.options()
	opts.Package = c.Package
	opts.DocumentsImport = c.DocumentsImport
	return c.newGenerator(deps).GenerateLang(c.Lang, w, opts)
}
