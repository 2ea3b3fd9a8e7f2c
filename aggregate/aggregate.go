package aggregate

import (
	"cmp"
	"slices"
)

// Group holds symbols imported from one relative path
type Group struct {
	Path    string
	Symbols []*Symbol
}

// KindGroup holds symbols exported under one kind
type KindGroup struct {
	Kind    Kind
	Symbols []*Symbol
}

// Aggregation represents the deduplicated symbol set of one boundary
type Aggregation struct {
	Symbols []*Symbol    // Symbols in processing order
	Imports []*Group     // By path ascending, members by name ascending
	Exports []*KindGroup // By kind name ascending, members by name ascending
}

// Aggregate orders files by absolute path, emits their symbols (declarations
// before states) and assigns aliases to repeated names. The alias counter is
// scoped to this call.
func Aggregate(files []*IndexFile) *Aggregation {
	ordered := slices.Clone(files)
	slices.SortStableFunc(ordered, func(a, b *IndexFile) int {
		return cmp.Compare(a.Path, b.Path)
	})

	names := uniquer{}
	result := &Aggregation{}
	for _, file := range ordered {
		for _, kind := range Kinds {
			name := file.Symbol(kind)
			if name == "" {
				continue
			}
			result.Symbols = append(result.Symbols, &Symbol{
				Path:  file.RelativePath,
				Kind:  kind,
				Name:  name,
				Alias: names.alias(name),
			})
		}
	}

	for _, group := range groupBy(result.Symbols, func(s *Symbol) string { return s.Path }) {
		result.Imports = append(result.Imports, &Group{Path: group.key, Symbols: group.list})
	}
	slices.SortStableFunc(result.Imports, func(a, b *Group) int {
		return cmp.Compare(a.Path, b.Path)
	})

	for _, group := range groupBy(result.Symbols, func(s *Symbol) Kind { return s.Kind }) {
		result.Exports = append(result.Exports, &KindGroup{Kind: group.key, Symbols: group.list})
	}
	slices.SortStableFunc(result.Exports, func(a, b *KindGroup) int {
		return cmp.Compare(a.Kind.String(), b.Kind.String())
	})
	return result
}

type grouped[K comparable] struct {
	key  K
	list []*Symbol
}

// groupBy groups symbols preserving first-seen key order; members are sorted
// by name with ties kept in processing order
func groupBy[K comparable](symbols []*Symbol, key func(*Symbol) K) []*grouped[K] {
	var groups []*grouped[K]
	index := map[K]*grouped[K]{}
	for _, symbol := range symbols {
		k := key(symbol)
		group, ok := index[k]
		if !ok {
			group = &grouped[K]{key: k}
			index[k] = group
			groups = append(groups, group)
		}
		group.list = append(group.list, symbol)
	}
	for _, group := range groups {
		slices.SortStableFunc(group.list, func(a, b *Symbol) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}
	return groups
}
