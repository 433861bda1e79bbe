package analysers

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// Registry maps data kinds to structure analysers.
type Registry struct {
	byKind map[domain.DataKind][]driven.StructureAnalyser
}

// NewRegistry creates an empty analyser registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[domain.DataKind][]driven.StructureAnalyser),
	}
}

// Register adds an analyser for every kind it supports.
// Analysers for a kind are kept ordered by descending priority.
func (r *Registry) Register(a driven.StructureAnalyser) {
	for _, k := range a.SupportedKinds() {
		list := append(r.byKind[k], a)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byKind[k] = list
	}
}

// For returns the preferred analyser for a kind.
func (r *Registry) For(kind domain.DataKind) (driven.StructureAnalyser, bool) {
	list := r.byKind[kind]
	if len(list) == 0 {
		return nil, false
	}
	return list[0], true
}

// Has returns true if any analyser handles the kind.
func (r *Registry) Has(kind domain.DataKind) bool {
	_, ok := r.For(kind)
	return ok
}

// Analyse runs the preferred analyser for in.Kind.
// It returns (nil, nil) when no analyser is registered for the kind.
func (r *Registry) Analyse(ctx context.Context, in driven.AnalysisInput) (domain.Details, error) {
	a, ok := r.For(in.Kind)
	if !ok {
		return nil, nil
	}
	d, err := a.Analyse(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s analyser: %w", a.Name(), err)
	}
	return d, nil
}

// Names returns the names of all registered analysers, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, list := range r.byKind {
		for _, a := range list {
			if !seen[a.Name()] {
				seen[a.Name()] = true
				names = append(names, a.Name())
			}
		}
	}
	sort.Strings(names)
	return names
}
