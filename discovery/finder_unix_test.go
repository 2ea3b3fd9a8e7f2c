//go:build unix

package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/discovery"
	"github.com/viant/ngtooling/module"
)

// boundariesWithin runs Boundaries failing the test instead of hanging on a blocked open
func boundariesWithin(t *testing.T, finder *discovery.Finder, root string) []*module.Boundary {
	t.Helper()
	type result struct {
		boundaries []*module.Boundary
		err        error
	}
	done := make(chan result, 1)
	go func() {
		boundaries, err := finder.Boundaries(context.Background(), root)
		done <- result{boundaries, err}
	}()
	select {
	case res := <-done:
		require.NoError(t, res.err)
		return res.boundaries
	case <-time.After(5 * time.Second):
		t.Fatal("Boundaries blocked on an entry in an ignored directory")
	}
	return nil
}

func TestFinder_IgnoredDirectoriesArePruned(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/foo/foo.module.ts",
		"src/foo/index.ts",
		"node_modules/pkg/index.js",
	)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", ".cache"), 0o755))
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "node_modules", ".cache", "pipe"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.js"), filepath.Join(root, "node_modules", "pkg", "broken.js")))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "foo", "node_modules"), 0o755))
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "src", "foo", "node_modules", "pipe"), 0o644))

	finder := discovery.New(afs.New(), config.DefaultConfig())
	boundaries := boundariesWithin(t, finder, root)
	require.Equal(t, []string{"src/foo/foo.module.ts"}, relDirs(boundaries))

	files, err := finder.IndexFiles(context.Background(), boundaries[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"src/foo/index.ts"}, relFiles(t, root, files))
}

func TestFinder_NestedSubtreeIsPruned(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/foo/foo.module.ts",
		"src/foo/a/index.ts",
		"src/foo/bar/bar.module.ts",
		"src/foo/bar/index.ts",
	)
	// never opened while scanning foo because bar's subtree is excluded
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.ts"), filepath.Join(root, "src", "foo", "bar", "broken.ts")))

	outer, err := module.NewBoundary(root, filepath.Join(root, "src", "foo", "foo.module.ts"))
	require.NoError(t, err)
	inner, err := module.NewBoundary(root, filepath.Join(root, "src", "foo", "bar", "bar.module.ts"))
	require.NoError(t, err)
	module.Nest([]*module.Boundary{outer, inner})

	files, err := discovery.New(afs.New(), config.DefaultConfig()).IndexFiles(context.Background(), outer)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/foo/a/index.ts"}, relFiles(t, root, files))
}
