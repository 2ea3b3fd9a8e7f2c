package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/ngtooling/aggregate"
	"github.com/viant/ngtooling/collator/sample"
	"github.com/viant/ngtooling/collator/svg"
	"github.com/viant/ngtooling/config"
	"github.com/viant/ngtooling/discovery"
	"github.com/viant/ngtooling/emitter"
	"github.com/viant/ngtooling/inspector/exports"
	"github.com/viant/ngtooling/module"
)

var errCancelled = errors.New("run cancelled")

// Runner regenerates all outputs of one workspace. A run is sequential:
// boundaries are processed one at a time in discovery order.
type Runner struct {
	root      string
	config    *config.Config
	fs        afs.Service
	reporter  Reporter
	logger    *log.Logger
	check     bool
	finder    *discovery.Finder
	inspector *exports.Inspector
	emitter   *emitter.Emitter
}

// New creates a runner for the workspace root
func New(root string, cfg *config.Config, options ...Option) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	r := &Runner{
		root:      root,
		config:    cfg,
		reporter:  ReporterFunc(func(Progress) {}),
		inspector: exports.NewInspector(),
		emitter:   emitter.New(cfg.Indent),
	}
	for _, option := range options {
		option(r)
	}
	if r.fs == nil {
		r.fs = afs.New()
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "generator"})
	}
	r.finder = discovery.New(r.fs, cfg)
	return r
}

// run holds per-invocation state
type run struct {
	*Runner
	summary  *Summary
	progress float64
	// io is never cancelled so that reads and writes are not preempted;
	// cancellation is sampled only at checkpoints
	io context.Context
}

// Run executes the Svgs, Samples and Modules stages. Cancellation is checked
// before each stage, before each boundary and before each write; a cancelled
// run returns a summary with Cancelled set and a nil error. Only a
// DiscoveryError aborts the run with an error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	state := &run{Runner: r, summary: &Summary{}, io: context.WithoutCancel(ctx)}
	state.report("", 0)

	stages := []func(ctx context.Context) error{
		state.generateSvgs,
		state.generateSamples,
		state.generateModules,
	}
	for _, stage := range stages {
		if ctx.Err() != nil {
			return state.cancelled(), nil
		}
		if err := stage(ctx); err != nil {
			if errors.Is(err, errCancelled) {
				return state.cancelled(), nil
			}
			return state.summary, err
		}
	}
	state.report(messageDone, 100-state.progress)
	return state.summary, nil
}

func (r *run) report(message string, increment float64) {
	r.progress += increment
	r.reporter.Report(Progress{Message: message, Increment: increment})
}

func (r *run) cancelled() *Summary {
	r.summary.Cancelled = true
	r.logger.Info("run cancelled", "written", len(r.summary.Written))
	r.report(messageCancelled, 0)
	return r.summary
}

func (r *run) resolve(location string) string {
	if filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(r.root, location)
}

func (r *run) generateSvgs(ctx context.Context) error {
	r.report(messageSvgs, 0)
	if r.config.SvgsPath == "" {
		return nil
	}
	dir := r.resolve(r.config.SvgsPath)
	outputs, err := svg.New(r.fs, r.config).Collate(r.io, dir)
	if err != nil {
		r.fail(&Failure{Stage: messageSvgs, Path: dir, Err: err})
		return nil
	}
	return r.writeAll(ctx, messageSvgs, "", outputs)
}

func (r *run) generateSamples(ctx context.Context) error {
	r.report(messageSamples, samplesShare)
	if r.config.SamplesPath == "" {
		return nil
	}
	dir := r.resolve(r.config.SamplesPath)
	outputs, err := sample.New(r.fs, r.config).Collate(r.io, dir)
	if err != nil {
		r.fail(&Failure{Stage: messageSamples, Path: dir, Err: err})
		return nil
	}
	return r.writeAll(ctx, messageSamples, "", outputs)
}

func (r *run) generateModules(ctx context.Context) error {
	r.report(messageModules, modulesShare)
	boundaries, err := r.finder.Boundaries(r.io, r.root)
	if err != nil {
		return &DiscoveryError{Root: r.root, Err: err}
	}
	module.Nest(boundaries)
	r.logger.Debug("discovered boundaries", "count", len(boundaries))
	if len(boundaries) == 0 {
		return nil
	}

	weight := float64(boundariesShare) / float64(len(boundaries))
	for _, boundary := range boundaries {
		if ctx.Err() != nil {
			return errCancelled
		}
		r.report(fmt.Sprintf("%s (%s)", messageModules, boundary.Name), weight)
		if err = r.generateModule(ctx, boundary); err != nil {
			return err
		}
	}
	return nil
}

// generateModule locates, extracts, aggregates, renders and writes one boundary
func (r *run) generateModule(ctx context.Context, boundary *module.Boundary) error {
	files, err := r.finder.IndexFiles(r.io, boundary)
	if err != nil {
		return &DiscoveryError{Root: boundary.Dir, Err: err}
	}
	if len(files) == 0 {
		r.summary.Skipped = append(r.summary.Skipped, boundary.Path)
		r.logger.Debug("no index files", "boundary", boundary.Name)
		return nil
	}

	indexFiles := make([]*aggregate.IndexFile, 0, len(files))
	for _, location := range files {
		src, err := r.fs.DownloadWithURL(r.io, location)
		if err != nil {
			r.fail(&Failure{Stage: messageModules, Boundary: boundary.Name, Path: location, Err: err})
			return nil
		}
		relative, err := boundary.RelativePath(location)
		if err != nil {
			return &DiscoveryError{Root: boundary.Dir, Err: err}
		}
		indexFile := aggregate.NewIndexFile(location, relative)
		names, err := r.inspector.InspectSource(src)
		if err != nil {
			r.logger.Warn("failed to parse index file", "boundary", boundary.Name, "path", location, "err", err)
		}
		indexFile.Classify(names)
		if !indexFile.HasSymbols() {
			r.logger.Debug("no exported symbols", "boundary", boundary.Name, "path", location)
		}
		indexFiles = append(indexFiles, indexFile)
	}

	output := &emitter.Output{
		Path:    boundary.GeneratedPath(r.config.GeneratedFileName(boundary.Name)),
		Content: r.emitter.Emit(aggregate.Aggregate(indexFiles)),
	}
	return r.write(ctx, messageModules, boundary.Name, output)
}

func (r *run) writeAll(ctx context.Context, stage, boundary string, outputs []*emitter.Output) error {
	for _, output := range outputs {
		if err := r.write(ctx, stage, boundary, output); err != nil {
			return err
		}
	}
	return nil
}

// write overwrites output.Path, or compares it with the rendered content in check mode
func (r *run) write(ctx context.Context, stage, boundary string, output *emitter.Output) error {
	if ctx.Err() != nil {
		return errCancelled
	}
	if r.check {
		return r.compare(stage, boundary, output)
	}
	if err := r.fs.Upload(r.io, output.Path, 0o644, bytes.NewReader(output.Content)); err != nil {
		r.fail(&Failure{Stage: stage, Boundary: boundary, Path: output.Path, Err: err})
		return nil
	}
	r.summary.Written = append(r.summary.Written, output.Path)
	r.summary.Bytes += len(output.Content)
	r.logger.Debug("wrote", "path", output.Path, "bytes", len(output.Content))
	return nil
}

func (r *run) compare(stage, boundary string, output *emitter.Output) error {
	exists, err := r.fs.Exists(r.io, output.Path)
	if err != nil {
		r.fail(&Failure{Stage: stage, Boundary: boundary, Path: output.Path, Err: err})
		return nil
	}
	if !exists {
		r.summary.Stale = append(r.summary.Stale, output.Path)
		return nil
	}
	current, err := r.fs.DownloadWithURL(r.io, output.Path)
	if err != nil {
		r.fail(&Failure{Stage: stage, Boundary: boundary, Path: output.Path, Err: err})
		return nil
	}
	if !output.Matches(current) {
		r.summary.Stale = append(r.summary.Stale, output.Path)
		r.logger.Debug("stale", "path", output.Path)
		return nil
	}
	r.summary.Unchanged = append(r.summary.Unchanged, output.Path)
	return nil
}

func (r *run) fail(failure *Failure) {
	r.summary.Failures = append(r.summary.Failures, failure)
	r.logger.Warn("output skipped", "stage", failure.Stage, "boundary", failure.Boundary, "path", failure.Path, "err", failure.Err)
}
