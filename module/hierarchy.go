package module

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Nest computes exclusion sets: every boundary whose directory lies strictly
// inside another boundary's directory is added to that boundary's Excludes.
func Nest(boundaries []*Boundary) []*Boundary {
	for _, inner := range boundaries {
		inner.Excludes = inner.Excludes[:0]
	}
	for _, inner := range boundaries {
		for _, outer := range boundaries {
			if inner == outer {
				continue
			}
			if IsNested(inner.Dir, outer.Dir) {
				outer.Excludes = append(outer.Excludes, inner)
			}
		}
	}
	return boundaries
}

// IsNested reports whether dir lies strictly below ancestor. Paths are compared
// segment by segment, so "src/foo-bar" is not nested in "src/foo".
func IsNested(dir, ancestor string) bool {
	dirSegments := segments(dir)
	ancestorSegments := segments(ancestor)
	if len(dirSegments) <= len(ancestorSegments) {
		return false
	}
	for i, segment := range ancestorSegments {
		if dirSegments[i] != segment {
			return false
		}
	}
	return true
}

func segments(dir string) []string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	if dir == "." || dir == "/" {
		return nil
	}
	return strings.Split(strings.Trim(dir, "/"), "/")
}

// ExcludePattern compiles the exclusion set into a single negative glob
// relative to the workspace root, e.g. {src/app/a/**,src/app/b/**}.
// It returns an empty string when nothing is nested.
func (b *Boundary) ExcludePattern() string {
	if len(b.Excludes) == 0 {
		return ""
	}
	patterns := make([]string, 0, len(b.Excludes))
	for _, excluded := range b.Excludes {
		patterns = append(patterns, escapeMeta(excluded.RelDir)+"/**")
	}
	return "{" + strings.Join(patterns, ",") + "}"
}

// IsExcluded reports whether the workspace relative path falls under a nested boundary
func (b *Boundary) IsExcluded(relPath string) (bool, error) {
	pattern := b.ExcludePattern()
	if pattern == "" {
		return false, nil
	}
	return doublestar.Match(pattern, relPath)
}

func escapeMeta(text string) string {
	var builder strings.Builder
	for _, r := range text {
		switch r {
		case '*', '?', '[', ']', '{', '}', ',', '\\':
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
