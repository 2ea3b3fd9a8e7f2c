package svg_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ngtooling/collator/svg"
	"github.com/viant/ngtooling/config"
)

func TestCollator_Collate(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"arrows.ts": `import { Component } from '@angular/core';

@Component({ selector: 'svg-arrow-up', template: '' })
export class SvgArrowUp { }

@Component({ selector: 'svg-arrow-down', template: '' })
export class SvgArrowDown { }
`,
		"icon.ts": `import { Component } from '@angular/core';

@Component({ selector: 'svg-icon', template: '' })
export class SvgIcon { }
`,
		"helpers.ts": "export const helper = 1;\n",
		"index.ts":   "export const stale = 1;\n",
		"nested/deep.ts": `@Component({ selector: 'svg-deep' })
export class SvgDeep { }
`,
	}
	for name, content := range files {
		location := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}

	collator := svg.New(afs.New(), config.DefaultConfig())
	outputs, err := collator.Collate(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	require.Equal(t, filepath.Join(dir, "index.ts"), outputs[0].Path)
	expectIndex := `/*
 * This file is generated by ngtooling. Don't edit by hand.
 */

import { SvgArrowDown, SvgArrowUp } from './arrows';
import { SvgIcon } from './icon';

export const SVG_DECLARATIONS: any[] = [
  SvgArrowDown,
  SvgArrowUp,
  SvgIcon,
];
`
	if diff := cmp.Diff(expectIndex, string(outputs[0].Content)); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, filepath.Join(dir, "component-map.ts"), outputs[1].Path)
	expectMap := `/*
 * This file is generated by ngtooling. Don't edit by hand.
 */

import { SvgArrowDown, SvgArrowUp } from './arrows';

export const SVG_NAME_TO_COMPONENT_MAP: { [prop: string]: any } = {
  'arrow-down': SvgArrowDown,
  'arrow-up': SvgArrowUp,
};

export const SVG_NAMES = Object.keys(SVG_NAME_TO_COMPONENT_MAP);
`
	if diff := cmp.Diff(expectMap, string(outputs[1].Content)); diff != "" {
		t.Errorf("component map mismatch (-want +got):\n%s", diff)
	}
}

func TestCollator_MissingDir(t *testing.T) {
	collator := svg.New(afs.New(), config.DefaultConfig())
	_, err := collator.Collate(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
