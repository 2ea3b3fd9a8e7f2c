package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ngtooling/config"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "  ", cfg.Indent)
	assert.Equal(t, ".module.ts", cfg.BoundarySuffix())
	assert.Equal(t, "app.module.ts", cfg.RootModuleFile())
	assert.Equal(t, "index.ts", cfg.IndexFileName())
	assert.Equal(t, "foo.index.ts", cfg.GeneratedFileName("foo"))
	assert.Equal(t, "metadata.ts", cfg.SourceFileName("metadata"))
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Extension = ""
	cfg.IndexName = " "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extension is required")
	assert.Contains(t, err.Error(), "indexName is required")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		env        map[string]string
		explicit   string
		dotEnv     bool
		expectYaml string
		expectFile string
		wantErr    bool
	}{
		{
			name: "defaults",
			expectYaml: `indent: "  "
extension: ts
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name: "workspace json file",
			files: map[string]string{
				"ngtooling.json": `{"svgsPath": "src/app/svgs", "samplesPath": "src/app/samples", "indent": "    "}`,
			},
			expectFile: "ngtooling.json",
			expectYaml: `indent: "    "
svgsPath: src/app/svgs
samplesPath: src/app/samples
extension: ts
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name: "environment override",
			env:  map[string]string{"NGTOOLING_INDENT": "\t", "NGTOOLING_ROOTMODULE": "main"},
			expectYaml: `indent: "\t"
extension: ts
moduleMarker: module
indexName: index
rootModule: main
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name:   "dot env",
			files:  map[string]string{".env": "NGTOOLING_SAMPLESPATH=demo/samples\n"},
			dotEnv: true,
			expectYaml: `indent: "  "
samplesPath: demo/samples
extension: ts
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name: "explicit yaml file",
			files: map[string]string{
				"custom.yaml": "extension: tsx\nignore:\n  - '**/dist/**'\n",
			},
			explicit:   "custom.yaml",
			expectFile: "custom.yaml",
			expectYaml: `indent: "  "
extension: tsx
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/dist/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name: "legacy extension file",
			files: map[string]string{
				"vscode-ng-tooling.json": `{"svgsPath": "src/svgs", "samplesPath": "src/samples"}`,
			},
			expectFile: "vscode-ng-tooling.json",
			expectYaml: `indent: "  "
svgsPath: src/svgs
samplesPath: src/samples
extension: ts
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name: "workspace file wins over legacy file",
			files: map[string]string{
				"vscode-ng-tooling.json": `{"svgsPath": "src/svgs"}`,
				"ngtooling.yaml":         "samplesPath: demo\n",
			},
			expectFile: "ngtooling.yaml",
			expectYaml: `indent: "  "
samplesPath: demo
extension: ts
moduleMarker: module
indexName: index
rootModule: app
ignore: ["**/node_modules/**"]
sampleSkip: shared
svgPrefix: Svg
svgSkip: icon
`,
		},
		{
			name:     "missing explicit file",
			explicit: "missing.json",
			wantErr:  true,
		},
		{
			name:    "invalid values",
			files:   map[string]string{"ngtooling.yaml": "extension: ''\n"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tc.files {
				require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if tc.dotEnv {
				t.Setenv("NGTOOLING_SAMPLESPATH", "")
				require.NoError(t, os.Unsetenv("NGTOOLING_SAMPLESPATH"))
			}
			opts := config.LoadOptions{Root: root, DotEnv: tc.dotEnv}
			if tc.explicit != "" {
				opts.File = filepath.Join(root, tc.explicit)
			}
			cfg, resolved, err := config.Load(context.Background(), opts)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expect := &config.Config{}
			require.NoError(t, yaml.Unmarshal([]byte(tc.expectYaml), expect))
			assert.EqualValues(t, expect, cfg)
			if tc.expectFile != "" {
				assert.Equal(t, filepath.Join(root, tc.expectFile), resolved)
			} else {
				assert.Empty(t, resolved)
			}
		})
	}
}

func TestIsLegacy(t *testing.T) {
	assert.True(t, config.IsLegacy(filepath.Join("ws", "vscode-ng-tooling.json")))
	assert.False(t, config.IsLegacy(filepath.Join("ws", "ngtooling.json")))
	assert.False(t, config.IsLegacy(""))
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := config.Load(ctx, config.LoadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
