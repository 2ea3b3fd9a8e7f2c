package aggregate

import "strconv"

// Symbol represents one exported array selected for aggregation
type Symbol struct {
	Path  string // RelativePath of the originating index file
	Kind  Kind
	Name  string
	Alias string // Set only when an earlier symbol in the same pass has the same name
}

// Ref returns the identifier used to reference the symbol in generated code
func (s *Symbol) Ref() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// uniquer counts occurrences of a name within one aggregation pass
type uniquer map[string]int

// alias returns an empty string for the first occurrence of name and
// name followed by the occurrence number for every repeat, starting at 2.
// The alias is not checked against other exported names, so FOO2 may repeat
// a literal FOO2 exported by another file.
func (u uniquer) alias(name string) string {
	u[name]++
	if count := u[name]; count > 1 {
		return name + strconv.Itoa(count)
	}
	return ""
}
