// Package formula holds the two-dimensional iterative maps that the renderer
// can sample.
//
// Every map is a pure function of the current point and four parameters:
//
//	x', y' = step(x, y, a, b, c, d)
//
// Maps are registered once, when a [Registry] is built, and never change
// afterwards. A step function may legitimately return NaN or ±Inf; detecting
// divergence is the sampler's job, not the formula's.
package formula

import (
	"errors"
	"fmt"
)

// Sentinel errors for the formula package.
var (
	// ErrNotFound is returned when a formula id is not registered.
	ErrNotFound = errors.New("formula: not found")

	// ErrInvalidFormula is returned when a registry is built from a formula
	// with an empty id or a nil step function.
	ErrInvalidFormula = errors.New("formula: invalid formula")

	// ErrDuplicateID is returned when two formulas share an id.
	ErrDuplicateID = errors.New("formula: duplicate id")
)

// StepFunc advances a point by one iteration of a map.
type StepFunc func(x, y, a, b, c, d float64) (float64, float64)

// Formula describes one registered map.
type Formula struct {
	ID     string   // stable identifier, e.g. "classic_sqrt"
	Name   string   // human readable name
	Desc   string   // the map written out
	Step   StepFunc // the map itself
	Domain Domain   // parameter hints for callers; zero means DefaultDomain
}

// Registry maps formula ids to step functions.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	byID  map[string]int
	items []Formula
}

// NewRegistry builds a registry from the given formulas, preserving their
// order for IDs.
func NewRegistry(formulas ...Formula) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]int, len(formulas)),
		items: make([]Formula, 0, len(formulas)),
	}
	for _, f := range formulas {
		if f.ID == "" || f.Step == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormula, f.ID)
		}
		if _, dup := r.byID[f.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, f.ID)
		}
		if f.Domain.IsZero() {
			f.Domain = DefaultDomain
		}
		r.byID[f.ID] = len(r.items)
		r.items = append(r.items, f)
	}
	return r, nil
}

// Lookup returns the step function registered under id.
func (r *Registry) Lookup(id string) (StepFunc, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return r.items[i].Step, nil
}

// Formula returns the full description registered under id.
func (r *Registry) Formula(id string) (Formula, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Formula{}, false
	}
	return r.items[i], true
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, f := range r.items {
		ids[i] = f.ID
	}
	return ids
}

// Len returns the number of registered formulas.
func (r *Registry) Len() int {
	return len(r.items)
}

var defaultRegistry = mustRegistry(builtins()...)

func mustRegistry(formulas ...Formula) *Registry {
	r, err := NewRegistry(formulas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry of built-in maps.
func Default() *Registry {
	return defaultRegistry
}

// Lookup looks id up in the default registry.
func Lookup(id string) (StepFunc, error) {
	return defaultRegistry.Lookup(id)
}
