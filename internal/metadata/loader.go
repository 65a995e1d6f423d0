package metadata

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/kamsheffield/graphql-code-generator-community/internal/globfs"
)

// Loader reads metadata files matched by glob patterns from a file system.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Load merges every file matched by patterns into one table. Files are merged
// in match order and later files override earlier ones by type name.
func (l *Loader) Load(patterns []string) (*Table, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no metadata patterns given", ErrConfiguration)
	}
	files, err := globfs.Expand(l.fsys, patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	table := NewTable()
	loaded := 0
	for _, name := range files {
		part, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		if part == nil {
			continue
		}
		l.logger.Debug("Loaded metadata file", "file", name, "types", part.Len())
		table.Merge(part)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: metadata patterns %v matched no json or yaml files", ErrConfiguration, patterns)
	}
	l.logger.Info("Loaded schema metadata", "files", loaded, "types", table.Len())
	return table, nil
}

// LoadFile decodes one file by extension. Files that are neither JSON nor
// YAML yield a nil table.
func (l *Loader) LoadFile(name string) (*Table, error) {
	var decode func(f fs.File) (*Table, error)
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		decode = func(f fs.File) (*Table, error) { return DecodeJSON(f) }
	case ".yaml", ".yml":
		decode = func(f fs.File) (*Table, error) { return DecodeYAML(f) }
	default:
		l.logger.Warn("Skipping metadata file with unknown extension", "file", name)
		return nil, nil
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open metadata file %s: %w", name, err)
	}
	defer f.Close()

	t, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("metadata file %s: %w", name, err)
	}
	return t, nil
}
