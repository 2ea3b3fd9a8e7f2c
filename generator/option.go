package generator

import (
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
)

type Option func(*Runner)

// WithFS sets the file system used for every read, write and walk
func WithFS(fs afs.Service) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithReporter sets the progress reporter
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) {
		r.reporter = reporter
	}
}

// WithLogger sets the logger used for non-fatal parse and I/O failures
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithCheck makes the run compare rendered output with files on disk instead of writing
func WithCheck() Option {
	return func(r *Runner) {
		r.check = true
	}
}
