package typescript

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/common"
	"github.com/kamsheffield/graphql-code-generator-community/internal/codegen/meta"
)

var fileTmpl = template.Must(template.New("operations.ts").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(fileTemplateTS))

// Generate renders the TypeScript operation metadata module to w. Nothing is
// written if rendering fails.
func Generate(logger *slog.Logger, w io.Writer, md *meta.Metadata) error {
	version := md.Version
	if version == "" {
		v, err := common.GetVersion()
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		version = v
	}

	view, err := buildFileView(md, version)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Debug("Generated TypeScript operation metadata",
		"declarations", len(view.Declarations),
		"operations", len(view.Operations))
	return nil
}
