package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ngtooling/inspector/component"
)

func TestInspector_InspectSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		expect []*component.Component
	}{
		{
			name: "decorated exported classes",
			source: `import { Component } from '@angular/core';

@Component({
  selector: 'svg-arrow',
  template: '<svg></svg>',
})
export class SvgArrowComponent { }

@Component({
  template: '<svg></svg>',
  'selector': "svg-close",
})
export class SvgCloseComponent { }
`,
			expect: []*component.Component{
				{Name: "SvgArrowComponent", Selector: "svg-arrow"},
				{Name: "SvgCloseComponent", Selector: "svg-close"},
			},
		},
		{
			name: "prefix filter and plain classes",
			source: `export class HelperService { }

@Component({ selector: 'svg-check' })
class SvgCheckComponent { }

export class SvgPlain { }
`,
			expect: []*component.Component{
				{Name: "SvgCheckComponent", Selector: "svg-check"},
				{Name: "SvgPlain"},
			},
		},
		{
			name:   "no classes",
			source: `export const SVG = 1;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inspector := component.NewInspector("Svg")
			components, err := inspector.InspectSource(context.Background(), []byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.expect, components)
		})
	}
}
