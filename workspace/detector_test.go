package workspace_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ngtooling/workspace"
)

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		start      string
		expectRoot string
		expectMark string
		expectName string
	}{
		{
			name: "package json name",
			files: map[string]string{
				"ws/package.json":              `{"name": "demo-app", "version": "1.0.0"}`,
				"ws/src/app/foo/foo.module.ts": "",
			},
			start:      "ws/src/app/foo",
			expectRoot: "ws",
			expectMark: "package.json",
			expectName: "demo-app",
		},
		{
			name: "config marker wins over package json",
			files: map[string]string{
				"ws/package.json":       `{"name": "outer"}`,
				"ws/web/ngtooling.json": `{}`,
				"ws/web/src/main.ts":    "",
			},
			start:      "ws/web/src/main.ts",
			expectRoot: "ws/web",
			expectMark: "ngtooling.json",
			expectName: "web",
		},
		{
			name: "no marker",
			files: map[string]string{
				"plain/src/index.ts": "",
			},
			start:      "plain/src",
			expectRoot: "plain/src",
			expectName: "src",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := t.TempDir()
			for name, content := range tc.files {
				location := filepath.Join(base, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
				require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
			}
			detector := workspace.New(afs.New(), "ngtooling.json", "package.json")
			ws, err := detector.Detect(context.Background(), filepath.Join(base, tc.start))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(base, tc.expectRoot), ws.Root)
			assert.Equal(t, tc.expectMark, ws.Marker)
			assert.Equal(t, tc.expectName, ws.Name)
		})
	}
}

func TestDetector_DetectMissing(t *testing.T) {
	detector := workspace.New(nil)
	_, err := detector.Detect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDetector_Open(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "ws", "web")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "ws", "package.json"), []byte(`{"name": "outer"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name": "web-app"}`), 0o644))
	file := filepath.Join(root, "package.json")

	ws, err := workspace.New(nil).Open(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, root, ws.Root)
	assert.Empty(t, ws.Marker)
	assert.Equal(t, "web-app", ws.Name)

	_, err = workspace.New(nil).Open(context.Background(), file)
	assert.Error(t, err)
}
