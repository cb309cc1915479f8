package godxf

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a zero-value record for one entity type.
type Constructor func() *EntityRecord

// Registry maps entity-type keywords to their schema and constructor. It is
// populated during initialization and read-only afterwards; Freeze makes the
// cutoff explicit.
type Registry struct {
	mu     sync.RWMutex
	m      map[string]registryEntry
	frozen bool
}

type registryEntry struct {
	schema *EntitySchema
	ctor   Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: map[string]registryEntry{}}
}

// Register binds a schema (and optionally a custom constructor; nil uses
// NewRecord) under its type keyword. Re-registration and registration after
// Freeze are errors.
func (rg *Registry) Register(sch *EntitySchema, ctor Constructor) error {
	if sch == nil {
		return preconditionError("nil schema registered")
	}
	if ctor == nil {
		ctor = func() *EntityRecord { return NewRecord(sch) }
	}
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if rg.frozen {
		return fmt.Errorf("godxf: registry frozen; cannot register %q", sch.Type)
	}
	if _, dup := rg.m[sch.Type]; dup {
		return fmt.Errorf("godxf: entity type %q already registered", sch.Type)
	}
	rg.m[sch.Type] = registryEntry{schema: sch, ctor: ctor}
	return nil
}

// MustRegister is Register panicking on error; intended for init-time tables.
func (rg *Registry) MustRegister(sch *EntitySchema, ctor Constructor) {
	if err := rg.Register(sch, ctor); err != nil {
		panic(err)
	}
}

// Freeze forbids further registration.
func (rg *Registry) Freeze() {
	rg.mu.Lock()
	rg.frozen = true
	rg.mu.Unlock()
}

// Lookup resolves an entity-type keyword.
func (rg *Registry) Lookup(keyword string) (*EntitySchema, Constructor, bool) {
	rg.mu.RLock()
	e, ok := rg.m[keyword]
	rg.mu.RUnlock()
	if !ok {
		return nil, nil, false
	}
	return e.schema, e.ctor, true
}

// Types lists registered keywords, sorted.
func (rg *Registry) Types() []string {
	rg.mu.RLock()
	out := make([]string, 0, len(rg.m))
	for k := range rg.m {
		out = append(out, k)
	}
	rg.mu.RUnlock()
	sort.Strings(out)
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry the builtin entity tables
// register into.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a schema to the default registry.
func Register(sch *EntitySchema, ctor Constructor) error {
	return defaultRegistry.Register(sch, ctor)
}

// MustRegister adds a schema to the default registry, panicking on error.
func MustRegister(sch *EntitySchema, ctor Constructor) {
	defaultRegistry.MustRegister(sch, ctor)
}

// Lookup resolves a keyword against the default registry.
func Lookup(keyword string) (*EntitySchema, Constructor, bool) {
	return defaultRegistry.Lookup(keyword)
}
