package svg

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/emitter"
	"github.com/viant/ngtooling/inspector/component"
)

const (
	indexName     = "index"
	mapName       = "component-map"
	selectorTrim  = "svg-"
	declarations  = "SVG_DECLARATIONS"
	componentMap  = "SVG_NAME_TO_COMPONENT_MAP"
	componentKeys = "SVG_NAMES"
)

// File represents one inspected svg component source file
type File struct {
	Name       string // File name without extension
	Components []*component.Component
}

// Collator produces the svg index and selector-to-component map
type Collator struct {
	fs        afs.Service
	config    *config.Config
	emitter   *emitter.Emitter
	inspector *component.Inspector
}

// New creates an svg collator
func New(fs afs.Service, cfg *config.Config) *Collator {
	return &Collator{
		fs:        fs,
		config:    cfg,
		emitter:   emitter.New(cfg.Indent),
		inspector: component.NewInspector(cfg.SvgPrefix),
	}
}

// Inspect reads every source file directly in dir except the index file.
// Files without matching classes are dropped; files and classes are sorted by name.
func (c *Collator) Inspect(ctx context.Context, dir string) ([]*File, error) {
	ext := "." + c.config.Extension
	skip := c.config.SourceFileName(indexName)
	var names []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if parent != "" || info.IsDir() {
			return true, nil
		}
		if strings.HasSuffix(info.Name(), ext) && info.Name() != skip {
			names = append(names, info.Name())
		}
		return true, nil
	}
	if err := c.fs.Walk(ctx, dir, visitor); err != nil {
		return nil, fmt.Errorf("failed to list svgs in %s: %w", dir, err)
	}

	var files []*File
	for _, name := range names {
		location := filepath.Join(dir, name)
		src, err := c.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		components, err := c.inspector.InspectSource(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", location, err)
		}
		if len(components) == 0 {
			continue
		}
		slices.SortStableFunc(components, func(a, b *component.Component) int {
			return strings.Compare(a.Name, b.Name)
		})
		files = append(files, &File{Name: strings.TrimSuffix(name, ext), Components: components})
	}
	slices.SortStableFunc(files, func(a, b *File) int {
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

// Collate inspects dir and renders index and component map outputs, in write order
func (c *Collator) Collate(ctx context.Context, dir string) ([]*emitter.Output, error) {
	files, err := c.Inspect(ctx, dir)
	if err != nil {
		return nil, err
	}
	return []*emitter.Output{
		{Path: filepath.Join(dir, c.config.SourceFileName(indexName)), Content: c.EmitIndex(files)},
		{Path: filepath.Join(dir, c.config.SourceFileName(mapName)), Content: c.EmitComponentMap(files)},
	}, nil
}

// EmitIndex renders imports of every component and the declarations array
func (c *Collator) EmitIndex(files []*File) []byte {
	builder := &strings.Builder{}
	builder.WriteString(emitter.Header)
	var elements []string
	for _, file := range files {
		names := componentNames(file)
		c.emitter.Import(builder, names, file.Name)
		elements = append(elements, names...)
	}
	builder.WriteString("\n")
	c.emitter.Array(builder, declarations, "any[]", elements)
	return []byte(builder.String())
}

// EmitComponentMap renders the selector to component map, skipping the configured file
func (c *Collator) EmitComponentMap(files []*File) []byte {
	builder := &strings.Builder{}
	builder.WriteString(emitter.Header)
	var selected []*File
	for _, file := range files {
		if file.Name == c.config.SvgSkip {
			continue
		}
		selected = append(selected, file)
		c.emitter.Import(builder, componentNames(file), file.Name)
	}
	builder.WriteString("\nexport const " + componentMap + ": { [prop: string]: any } = {\n")
	for _, file := range selected {
		for _, item := range file.Components {
			key := strings.TrimPrefix(item.Selector, selectorTrim)
			builder.WriteString(c.emitter.Indent + "'" + key + "': " + item.Name + ",\n")
		}
	}
	builder.WriteString("};\n")
	builder.WriteString("\nexport const " + componentKeys + " = Object.keys(" + componentMap + ");\n")
	return []byte(builder.String())
}

func componentNames(file *File) []string {
	names := make([]string, 0, len(file.Components))
	for _, item := range file.Components {
		names = append(names, item.Name)
	}
	return names
}
