package generator

// Summary describes the outcome of one run
type Summary struct {
	Written   []string   // Files written, in write order
	Unchanged []string   // Check mode: files already up to date
	Stale     []string   // Check mode: files that would change
	Skipped   []string   // Boundaries without index files
	Failures  []*Failure // Outputs aborted by I/O errors
	Bytes     int        // Total bytes written
	Cancelled bool
}

// OK reports whether the run completed without failures, cancellation or stale files
func (s *Summary) OK() bool {
	return !s.Cancelled && len(s.Failures) == 0 && len(s.Stale) == 0
}
