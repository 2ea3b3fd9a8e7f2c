package discovery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/module"
)

// Finder locates module boundaries and the index files belonging to them
type Finder struct {
	fs     afs.Service
	config *config.Config
}

// New creates a finder
func New(fs afs.Service, cfg *config.Config) *Finder {
	if fs == nil {
		fs = afs.New()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Finder{fs: fs, config: cfg}
}

// Boundaries returns module files under root, excluding the application's own
// root module and ignored paths, ordered by path. Exclusion sets are not computed.
func (f *Finder) Boundaries(ctx context.Context, root string) ([]*module.Boundary, error) {
	suffix := f.config.BoundarySuffix()
	rootModule := f.config.RootModuleFile()
	var files []string
	skipDir := func(relPath string) (bool, error) {
		return matchDir(f.ignored, relPath)
	}
	err := f.walk(ctx, root, skipDir, func(relPath string, info os.FileInfo) error {
		name := info.Name()
		if !strings.HasSuffix(name, suffix) || name == rootModule {
			return nil
		}
		ignored, err := f.ignored(relPath)
		if err != nil || ignored {
			return err
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(relPath)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	boundaries := make([]*module.Boundary, 0, len(files))
	for _, file := range files {
		boundary, err := module.NewBoundary(root, file)
		if err != nil {
			return nil, err
		}
		boundaries = append(boundaries, boundary)
	}
	return boundaries, nil
}

// IndexFiles returns absolute paths of index files beneath the boundary
// directory, skipping subtrees of nested boundaries and ignored paths.
func (f *Finder) IndexFiles(ctx context.Context, boundary *module.Boundary) ([]string, error) {
	indexName := f.config.IndexFileName()
	skipDir := func(relPath string) (bool, error) {
		workspacePath := path.Join(boundary.RelDir, relPath)
		excluded, err := matchDir(boundary.IsExcluded, workspacePath)
		if err != nil || excluded {
			return excluded, err
		}
		return matchDir(f.ignored, workspacePath)
	}
	var files []string
	err := f.walk(ctx, boundary.Dir, skipDir, func(relPath string, info os.FileInfo) error {
		if info.Name() != indexName {
			return nil
		}
		workspacePath := path.Join(boundary.RelDir, relPath)
		excluded, err := boundary.IsExcluded(workspacePath)
		if err != nil || excluded {
			return err
		}
		ignored, err := f.ignored(workspacePath)
		if err != nil || ignored {
			return err
		}
		files = append(files, filepath.Join(boundary.Dir, filepath.FromSlash(relPath)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (f *Finder) ignored(relPath string) (bool, error) {
	for _, pattern := range f.config.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// matchDir matches a directory path both as is and with a trailing slash,
// so that "a/**" style patterns prune the directory itself
func matchDir(match func(string) (bool, error), dirPath string) (bool, error) {
	matched, err := match(dirPath)
	if err != nil || matched {
		return matched, err
	}
	return match(dirPath + "/")
}

// walk visits every regular file below location with its slash separated path
// relative to location. Directories for which skipDir reports true are not
// entered, so nothing beneath them is listed or opened.
func (f *Finder) walk(ctx context.Context, location string, skipDir func(relPath string) (bool, error), onFile func(relPath string, info os.FileInfo) error) error {
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		relPath := path.Join(parent, info.Name())
		if info.IsDir() {
			skip, err := skipDir(relPath)
			if err != nil {
				return false, err
			}
			return !skip, nil
		}
		if !info.Mode().IsRegular() {
			return true, nil
		}
		if err := onFile(relPath, info); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := f.fs.Walk(ctx, location, visitor); err != nil {
		return fmt.Errorf("failed to walk %s: %w", location, err)
	}
	return nil
}
