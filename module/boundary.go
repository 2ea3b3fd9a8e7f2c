package module

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Boundary represents a module file rooting one generated index file
type Boundary struct {
	Path     string      // Absolute path of the module file
	Dir      string      // Absolute directory owning the module file
	RelDir   string      // Dir relative to the workspace root, slash separated
	Basename string      // Base name of the module file
	Name     string      // Basename up to its first '.'
	Excludes []*Boundary // Boundaries strictly nested inside Dir
}

// NewBoundary creates a boundary for the module file located under root
func NewBoundary(root, filePath string) (*Boundary, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(absPath)
	relDir, err := filepath.Rel(absRoot, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to relate %s to %s: %w", dir, absRoot, err)
	}
	basename := filepath.Base(absPath)
	name := basename
	if index := strings.Index(basename, "."); index != -1 {
		name = basename[:index]
	}
	return &Boundary{
		Path:     absPath,
		Dir:      dir,
		RelDir:   filepath.ToSlash(relDir),
		Basename: basename,
		Name:     name,
	}, nil
}

// GeneratedPath returns the location of the aggregator file generated for the boundary
func (b *Boundary) GeneratedPath(fileName string) string {
	return filepath.Join(b.Dir, fileName)
}

// RelativePath returns path of the file relative to the boundary directory, slash separated
func (b *Boundary) RelativePath(filePath string) (string, error) {
	rel, err := filepath.Rel(b.Dir, filePath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
