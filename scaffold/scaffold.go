package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/viant/afs"
	"github.com/viant/ngtooling/config"
)

var componentTemplate = template.Must(template.New("component").Parse(`import { ChangeDetectionStrategy, Component, OnInit, ViewEncapsulation } from '@angular/core';

@Component({
{{.Indent}}selector: '{{.Name}}',
{{.Indent}}templateUrl: './{{.Name}}.html',
{{.Indent}}styleUrls: ['./{{.Name}}.scss'],
{{.Indent}}encapsulation: ViewEncapsulation.None,
{{.Indent}}changeDetection: ChangeDetectionStrategy.OnPush,
{{.Indent}}host: {
{{.Indent}}{{.Indent}}'class': '{{.Name}}',
{{.Indent}}},
})
export class {{.Class}} implements OnInit {
{{.Indent}}constructor() { }

{{.Indent}}ngOnInit() { }
}
`))

var indexTemplate = template.Must(template.New("index").Parse(`import { {{.Class}} } from './{{.Name}}.component';

export const {{.Constant}}_DECLARATIONS: any[] = [
{{.Indent}}{{.Class}},
];
`))

// Component describes the names derived for a scaffolded component
type Component struct {
	Name     string // Folder and selector name, e.g. date-picker
	Class    string // e.g. DatePickerComponent
	Constant string // e.g. DATE_PICKER
	Indent   string
}

// NewComponent derives component names from a folder name
func NewComponent(name, indent string) *Component {
	return &Component{
		Name:     name,
		Class:    strcase.ToCamel(name) + "Component",
		Constant: strcase.ToScreamingSnake(name),
		Indent:   indent,
	}
}

// Result lists what was created
type Result struct {
	Folder    string
	Files     []string
	Component *Component
}

// Scaffolder creates component folders
type Scaffolder struct {
	fs     afs.Service
	config *config.Config
}

// New creates a scaffolder
func New(fs afs.Service, cfg *config.Config) *Scaffolder {
	if fs == nil {
		fs = afs.New()
	}
	return &Scaffolder{fs: fs, config: cfg}
}

// Create makes <parent>/<name>/ with component source, template, stylesheet and index file.
// It fails when the folder already exists.
func (s *Scaffolder) Create(ctx context.Context, parent, name string) (*Result, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid component name: %q", name)
	}
	folder := filepath.Join(parent, name)
	exists, err := s.fs.Exists(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", folder, err)
	}
	if exists {
		return nil, fmt.Errorf("folder already exists: %s", folder)
	}
	if err = s.fs.Create(ctx, folder, os.ModeDir|0o755, true); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", folder, err)
	}

	component := NewComponent(name, s.config.Indent)
	componentSource, err := render(componentTemplate, component)
	if err != nil {
		return nil, err
	}
	indexSource, err := render(indexTemplate, component)
	if err != nil {
		return nil, err
	}
	files := []struct {
		name    string
		content []byte
	}{
		{name: s.config.SourceFileName(name + ".component"), content: componentSource},
		{name: name + ".html"},
		{name: name + ".scss"},
		{name: s.config.IndexFileName(), content: indexSource},
	}
	result := &Result{Folder: folder, Component: component}
	for _, file := range files {
		location := filepath.Join(folder, file.name)
		if err = s.fs.Upload(ctx, location, 0o644, bytes.NewReader(file.content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", location, err)
		}
		result.Files = append(result.Files, location)
	}
	return result, nil
}

func render(tmpl *template.Template, component *Component) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := tmpl.Execute(buffer, component); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buffer.Bytes(), nil
}
