package aggregate

import "path"

// RootRelativePath names the index file located directly in the boundary directory
const RootRelativePath = "index"

// IndexFile represents a directory-local index file belonging to one boundary
type IndexFile struct {
	Path         string // Absolute path of the file
	RelativePath string // Directory of the file relative to its boundary, or "index"
	symbols      [2]string
}

// NewIndexFile creates an index file record. relativeFile is the slash separated
// path of the file relative to the boundary directory.
func NewIndexFile(filePath, relativeFile string) *IndexFile {
	relativePath := path.Dir(relativeFile)
	if relativePath == "." || relativePath == "" {
		relativePath = RootRelativePath
	}
	return &IndexFile{Path: filePath, RelativePath: relativePath}
}

// Classify records exported names by kind. When a file exports several
// identifiers of the same kind the last one wins.
// TODO: report same-kind duplicates once callers can surface per-file warnings.
func (f *IndexFile) Classify(names []string) {
	for _, name := range names {
		if kind, ok := KindOf(name); ok {
			f.symbols[kind] = name
		}
	}
}

// Symbol returns the exported name of the given kind, or an empty string
func (f *IndexFile) Symbol(kind Kind) string {
	return f.symbols[kind]
}

// HasSymbols reports whether the file carries any symbol
func (f *IndexFile) HasSymbols() bool {
	for _, name := range f.symbols {
		if name != "" {
			return true
		}
	}
	return false
}
