package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/toyz/waypoint/internal/errors"
	"github.com/toyz/waypoint/internal/reflector"
)

// RouteDocumenter is implemented by registered controllers to expose the doc
// comments of their methods, keyed by method name. Go keeps no doc comments at
// runtime, so this is where @Route annotations live for registered types.
type RouteDocumenter interface {
	RouteDocs() map[string]string
}

// Entry is one registered controller
type Entry struct {
	ID         string
	Type       *reflector.Type
	Controller any
}

// ControllerRegistry maps fully-qualified controller identifiers to type descriptions
type ControllerRegistry interface {
	Register(id string, controller any) error
	RegisterType(id string, t *reflector.Type) error
	Lookup(id string) (*reflector.Type, bool)
	IDs() []string
}

var _ ControllerRegistry = (*Registry)(nil)

// Registry is an explicit controller registry, usually filled from init-time
// tables before discovery runs
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewRegistry creates an empty controller registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register ensures controller is registered under id. Registering an id that is
// already present is a no-op and keeps the first registration.
func (r *Registry) Register(id string, controller any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return nil
	}
	t, err := describe(controller)
	if err != nil {
		return errors.WrapRegisterError(id, err)
	}
	r.add(Entry{ID: id, Type: t, Controller: controller})
	return nil
}

// MustRegister is Register for init-time tables; it panics on error
func (r *Registry) MustRegister(id string, controller any) {
	if err := r.Register(id, controller); err != nil {
		panic(err)
	}
}

// RegisterType registers a pre-built type description, such as one produced by a
// generator. Same idempotency rules as Register.
func (r *Registry) RegisterType(id string, t *reflector.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return nil
	}
	if t == nil {
		return errors.WrapRegisterError(id, fmt.Errorf("nil type description"))
	}
	r.add(Entry{ID: id, Type: t})
	return nil
}

// Lookup returns the type registered under id
func (r *Registry) Lookup(id string) (*reflector.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return entry.Type, true
}

// Get returns the full registry entry for id
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	return entry, ok
}

// IDs lists registered identifiers in registration order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Load resolves a controller file to its registered type. The file itself is not
// read; the identifier derived from it is the lookup key.
func (r *Registry) Load(path, typeName, id string) (*reflector.Type, error) {
	// a file without a registered controller is skipped, like a file without the type
	t, _ := r.Lookup(id)
	return t, nil
}

// add expects r.mu held
func (r *Registry) add(entry Entry) {
	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
}

// describe builds a type description from the method set of controller.
// reflect only exposes exported methods, sorted by name.
func describe(controller any) (*reflector.Type, error) {
	if controller == nil {
		return nil, fmt.Errorf("controller is nil")
	}

	rt := reflect.TypeOf(controller)
	name := rt.Name()
	if rt.Kind() == reflect.Pointer {
		name = rt.Elem().Name()
	}
	if name == "" {
		return nil, fmt.Errorf("controller of type %s is not a named type", rt)
	}

	var docs map[string]string
	if documenter, ok := controller.(RouteDocumenter); ok {
		docs = documenter.RouteDocs()
	}

	t := &reflector.Type{Name: name, Methods: make([]reflector.Method, 0, rt.NumMethod())}
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if m.Name == "RouteDocs" {
			continue
		}
		t.Methods = append(t.Methods, reflector.Method{
			Name:     m.Name,
			Doc:      docs[m.Name],
			Exported: m.IsExported(),
		})
	}

	for _, method := range sortedKeys(docs) {
		if _, ok := rt.MethodByName(method); !ok {
			return nil, fmt.Errorf("doc given for unknown method %s.%s", name, method)
		}
	}
	return t, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
