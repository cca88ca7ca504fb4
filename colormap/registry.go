package colormap

import (
	"errors"
	"fmt"
	"sync"
)

// Registry errors.
var (
	// ErrEmptyRegistry is returned when a registry is built without maps.
	ErrEmptyRegistry = errors.New("colormap: registry has no maps")

	// ErrDuplicateName is returned when two maps normalize to the same key.
	ErrDuplicateName = errors.New("colormap: duplicate map name")

	// ErrUnknownTarget is returned when an alias or default names no map.
	ErrUnknownTarget = errors.New("colormap: unknown map")
)

// DefaultName is the fallback map of the built-in registry.
const DefaultName = "Turbo"

// Registry is an immutable set of named color maps.
//
// Names are matched through Normalize. Resolve never fails: names it does
// not know fall back to the default map.
type Registry struct {
	byKey map[string]*Map
	names []string
	def   *Map
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	aliases     [][2]string
	defaultName string
}

// WithAlias makes alias resolve to the map named target.
func WithAlias(alias, target string) RegistryOption {
	return func(o *registryOptions) {
		o.aliases = append(o.aliases, [2]string{alias, target})
	}
}

// WithDefault selects the fallback map. The first map is used otherwise.
func WithDefault(name string) RegistryOption {
	return func(o *registryOptions) {
		o.defaultName = name
	}
}

// NewRegistry builds a registry from maps, in display order.
func NewRegistry(maps []*Map, opts ...RegistryOption) (*Registry, error) {
	if len(maps) == 0 {
		return nil, ErrEmptyRegistry
	}
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		byKey: make(map[string]*Map, len(maps)+len(o.aliases)),
		names: make([]string, 0, len(maps)),
		def:   maps[0],
	}
	for _, m := range maps {
		if m == nil {
			return nil, fmt.Errorf("%w: nil map", ErrUnknownTarget)
		}
		key := Normalize(m.name)
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, m.name)
		}
		r.byKey[key] = m
		r.names = append(r.names, m.name)
	}

	for _, a := range o.aliases {
		target, ok := r.byKey[Normalize(a[1])]
		if !ok {
			return nil, fmt.Errorf("%w: alias %q -> %q", ErrUnknownTarget, a[0], a[1])
		}
		key := Normalize(a[0])
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%w: alias %q", ErrDuplicateName, a[0])
		}
		r.byKey[key] = target
	}

	if o.defaultName != "" {
		def, ok := r.byKey[Normalize(o.defaultName)]
		if !ok {
			return nil, fmt.Errorf("%w: default %q", ErrUnknownTarget, o.defaultName)
		}
		r.def = def
	}
	return r, nil
}

// Lookup returns the map registered under name or one of its aliases.
func (r *Registry) Lookup(name string) (*Map, bool) {
	m, ok := r.byKey[Normalize(name)]
	return m, ok
}

// Resolve returns the map for name, or the default map when name is unknown.
func (r *Registry) Resolve(name string) *Map {
	if m, ok := r.Lookup(name); ok {
		return m
	}
	return r.def
}

// Default returns the fallback map.
func (r *Registry) Default() *Map { return r.def }

// Names returns the display names in registration order. Aliases are not
// included.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Maps returns the maps in registration order.
func (r *Registry) Maps() []*Map {
	maps := make([]*Map, len(r.names))
	for i, name := range r.names {
		maps[i] = r.byKey[Normalize(name)]
	}
	return maps
}

// Len returns the number of maps, not counting aliases.
func (r *Registry) Len() int { return len(r.names) }

// Merge returns a new registry holding r's maps followed by extra. Aliases
// and the default of r are kept; a map in extra replaces the map of r with
// the same normalized name.
func (r *Registry) Merge(extra ...*Map) (*Registry, error) {
	out := &Registry{
		byKey: make(map[string]*Map, len(r.byKey)+len(extra)),
		names: append([]string(nil), r.names...),
		def:   r.def,
	}
	for k, m := range r.byKey {
		out.byKey[k] = m
	}

	seen := make(map[string]bool, len(extra))
	for _, m := range extra {
		if m == nil {
			continue
		}
		key := Normalize(m.name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, m.name)
		}
		seen[key] = true

		old, exists := out.byKey[key]
		// Repoint aliases of the replaced map.
		if exists {
			for k, v := range out.byKey {
				if v == old {
					out.byKey[k] = m
				}
			}
			if out.def == old {
				out.def = m
			}
			continue
		}
		out.byKey[key] = m
		out.names = append(out.names, m.name)
	}
	return out, nil
}

var builtin = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(builtinMaps(), builtinAliases()...)
	if err != nil {
		panic(err)
	}
	return r
})

// Builtin returns the registry of built-in maps.
func Builtin() *Registry { return builtin() }

// Resolve resolves name against the built-in registry.
func Resolve(name string) *Map { return Builtin().Resolve(name) }
