package wirebox

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Registry holds dependency bindings in four tables keyed by unqualified
// type name: instances, factories, constructors, and static types. A key
// maps to at most one binding per table, but may exist in several tables at
// once; resolution picks among them in a fixed precedence order.
//
// All methods are safe for concurrent use. The four tables are guarded as a
// single unit.
type Registry struct {
	mu sync.RWMutex
	id string

	instances    map[string]any
	factories    map[string]func() any
	constructors map[string]func() any
	staticTypes  map[string]reflect.Type
}

// New creates an empty, independent Registry. Instances created with New
// share nothing with the default registry or with each other.
func New() *Registry {
	return &Registry{
		id:           uuid.NewString(),
		instances:    make(map[string]any),
		factories:    make(map[string]func() any),
		constructors: make(map[string]func() any),
		staticTypes:  make(map[string]reflect.Type),
	}
}

// ID returns the registry's unique identifier.
func (r *Registry) ID() string {
	return r.id
}

// String implements fmt.Stringer.
func (r *Registry) String() string {
	return fmt.Sprintf("wirebox.Registry(%s, %d bindings)", r.id, r.Len())
}

// Len returns the total number of bindings across all four tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.instances) + len(r.factories) + len(r.constructors) + len(r.staticTypes)
}

// Reset removes every binding from all four tables.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances = make(map[string]any)
	r.factories = make(map[string]func() any)
	r.constructors = make(map[string]func() any)
	r.staticTypes = make(map[string]reflect.Type)
}

// putInstance stores an instance binding. With override, the key is first
// purged from all four tables; the insert itself never clobbers an existing
// instance binding.
func (r *Registry) putInstance(key string, instance any, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if override {
		r.removeAllLocked(key)
	}

	if _, ok := r.instances[key]; !ok {
		r.instances[key] = instance
	}
}

// putFactory stores a factory binding, same purge-then-insert-if-absent
// contract as putInstance.
func (r *Registry) putFactory(key string, factory func() any, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if override {
		r.removeAllLocked(key)
	}

	if _, ok := r.factories[key]; !ok {
		r.factories[key] = factory
	}
}

// putConstructor stores a constructor binding, same purge-then-insert-if-
// absent contract as putInstance.
func (r *Registry) putConstructor(key string, ctor func() any, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if override {
		r.removeAllLocked(key)
	}

	if _, ok := r.constructors[key]; !ok {
		r.constructors[key] = ctor
	}
}

// putStaticType stores a static-type binding under an already-suffixed key.
// Unlike the other three tables, override never purges: it only permits
// overwriting the static table's own slot. The asymmetry is part of the
// registry's contract; see RegisterStaticType.
func (r *Registry) putStaticType(key string, static reflect.Type, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staticTypes[key]; !ok || override {
		r.staticTypes[key] = static
	}
}

// removeAllLocked deletes the key's entry from all four tables. The static
// table stores entries under the derived key, so that is what gets deleted
// there. Caller must hold mu.
func (r *Registry) removeAllLocked(key string) {
	delete(r.instances, key)
	delete(r.factories, key)
	delete(r.constructors, key)
	delete(r.staticTypes, key+staticSuffix)
}

// removeAll deletes the key's entry from all four tables.
func (r *Registry) removeAll(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeAllLocked(key)
}

// containsKey reports whether any table holds a binding for the key.
func (r *Registry) containsKey(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.instances[key]; ok {
		return true
	}
	if _, ok := r.factories[key]; ok {
		return true
	}
	if _, ok := r.constructors[key]; ok {
		return true
	}
	if _, ok := r.staticTypes[key+staticSuffix]; ok {
		return true
	}

	return false
}

// resolve is the single resolution algorithm. It queries the tables in
// fixed precedence order (constructor, factory, instance, static type) and
// returns the first result assignable to want. A callable that is nil, or
// whose result is not assignable, is no match and resolution falls through
// to the next table.
//
// The key's entries are snapshotted under one read lock and the callables
// are invoked after it is released, so a factory or constructor may itself
// call Resolve without deadlocking against a pending writer.
func (r *Registry) resolve(key string, want reflect.Type) (any, error) {
	r.mu.RLock()
	ctor, hasCtor := r.constructors[key]
	factory, hasFactory := r.factories[key]
	instance, hasInstance := r.instances[key]
	static, hasStatic := r.staticTypes[key]
	r.mu.RUnlock()

	if hasCtor && ctor != nil {
		if v := ctor(); assignableTo(v, want) {
			return v, nil
		}
	}

	if hasFactory && factory != nil {
		if v := factory(); assignableTo(v, want) {
			return v, nil
		}
	}

	if hasInstance && assignableTo(instance, want) {
		return instance, nil
	}

	if hasStatic && static != nil && assignableTo(static, want) {
		return static, nil
	}

	return nil, UnregisteredTypeError{Key: key, Type: want}
}
