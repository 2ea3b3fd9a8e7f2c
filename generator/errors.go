package generator

import "fmt"

// DiscoveryError reports a traversal failure; it aborts the whole run
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed in %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Failure records an I/O error that aborted one output; the run continues
type Failure struct {
	Stage    string // Svgs, Samples or Modules
	Boundary string // Boundary name for the Modules stage
	Path     string
	Err      error
}

func (f *Failure) Error() string {
	if f.Boundary != "" {
		return fmt.Sprintf("%s (%s): %s: %v", f.Stage, f.Boundary, f.Path, f.Err)
	}
	return fmt.Sprintf("%s: %s: %v", f.Stage, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
