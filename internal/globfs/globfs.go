// Package globfs expands doublestar glob patterns against an fs.FS.
package globfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnore lists patterns skipped by every expansion.
var DefaultIgnore = []string{"node_modules/**", "**/node_modules/**"}

// Clean converts a user supplied pattern into a form accepted by fs.FS,
// which rejects leading "./" and rooted paths.
func Clean(pattern string) string {
	p := strings.TrimSpace(pattern)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return path.Clean(p)
}

// Expand returns every regular file matched by patterns. Matches of a single
// pattern are sorted; the overall order follows pattern order and a path is
// only returned the first time it is seen.
func Expand(fsys fs.FS, patterns []string, ignore ...string) ([]string, error) {
	ignore = append(append([]string{}, DefaultIgnore...), ignore...)

	seen := map[string]struct{}{}
	var out []string
	for _, raw := range patterns {
		pattern := Clean(raw)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", raw, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", raw, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if ignored(m, ignore) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out, nil
}

func ignored(name string, ignore []string) bool {
	for _, p := range ignore {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
