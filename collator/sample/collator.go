package sample

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/emitter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const metadataName = "metadata"

// Sample represents one sample directory
type Sample struct {
	State string // Directory name, used as the router state
	Name  string // Title cased display name
}

// Collator produces samples metadata from the sample directories
type Collator struct {
	fs     afs.Service
	config *config.Config
}

// New creates a samples collator
func New(fs afs.Service, cfg *config.Config) *Collator {
	return &Collator{fs: fs, config: cfg}
}

// Inspect lists direct sub-directories of dir, skipping the configured shared folder
func (c *Collator) Inspect(ctx context.Context, dir string) ([]*Sample, error) {
	var states []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if parent != "" || !info.IsDir() {
			return true, nil
		}
		if info.Name() != c.config.SampleSkip {
			states = append(states, info.Name())
		}
		return true, nil
	}
	if err := c.fs.Walk(ctx, dir, visitor); err != nil {
		return nil, fmt.Errorf("failed to list samples in %s: %w", dir, err)
	}
	sort.Strings(states)
	samples := make([]*Sample, 0, len(states))
	for _, state := range states {
		samples = append(samples, &Sample{State: state, Name: Title(state)})
	}
	return samples, nil
}

// Collate renders the samples metadata file
func (c *Collator) Collate(ctx context.Context, dir string) ([]*emitter.Output, error) {
	samples, err := c.Inspect(ctx, dir)
	if err != nil {
		return nil, err
	}
	return []*emitter.Output{
		{Path: filepath.Join(dir, c.config.SourceFileName(metadataName)), Content: c.Emit(samples)},
	}, nil
}

// Emit renders the SAMPLES array
func (c *Collator) Emit(samples []*Sample) []byte {
	indent := emitter.New(c.config.Indent).Indent
	builder := &strings.Builder{}
	builder.WriteString(emitter.Header)
	builder.WriteString("export const SAMPLES = [\n")
	for _, sample := range samples {
		builder.WriteString(fmt.Sprintf("%s{ state: '%s', name: '%s' },\n", indent, sample.State, sample.Name))
	}
	builder.WriteString("];\n")
	return []byte(builder.String())
}

// Title converts a directory name such as "date-picker" to "Date Picker"
func Title(name string) string {
	return cases.Title(language.English).String(strcase.ToDelimited(name, ' '))
}
