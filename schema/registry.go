package schema

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/leengari/typedframe/column"
)

// Registry resolves (types, names) signatures to shapes in a thread-safe way.
// An equivalent shape resolved earlier is reused rather than recreated; this
// is an optimization only, correctness never depends on deduplication.
type Registry struct {
	mu        sync.RWMutex
	shapes    map[string]*Schema
	observers []Observer
}

// NewRegistry creates a new empty shape registry
func NewRegistry() *Registry {
	return &Registry{
		shapes:    make(map[string]*Schema),
		observers: make([]Observer, 0),
	}
}

// defaultRegistry is the process-wide registry used by table constructors
// that are not handed an explicit one. It lives for the whole process.
var defaultRegistry = NewRegistry()

// Default returns the process-wide shape registry
func Default() *Registry { return defaultRegistry }

// AddObserver registers an observer for shape lifecycle events
func (r *Registry) AddObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Resolve returns the shape for the given column types and names, creating
// and registering it if no equivalent shape exists yet.
// If hint is non-empty it names a freshly created shape for diagnostics;
// otherwise a unique generated name is assigned. The hint never affects
// which cached shape is reused.
func (r *Registry) Resolve(types []column.DataType, names []string, hint string) (*Schema, error) {
	if len(types) != len(names) {
		return nil, NewCountMismatch(hint, len(types), len(names))
	}

	key := fingerprint(types, names)

	r.mu.RLock()
	cached, ok := r.shapes[key]
	r.mu.RUnlock()
	if ok {
		r.notify(Event{Type: EventShapeResolved, Shape: cached.name, Fingerprint: key})
		return cached, nil
	}

	name := hint
	if name == "" {
		name = "shape-" + uuid.NewString()[:8]
	}

	fields := make([]Field, len(names))
	for i := range names {
		fields[i] = Field{Name: names[i], Type: types[i]}
	}
	s, err := New(name, fields)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	// Another resolver may have won the race after the read above;
	// reuse its shape to keep identity stable.
	if cached, ok := r.shapes[key]; ok {
		r.mu.Unlock()
		r.notify(Event{Type: EventShapeResolved, Shape: cached.name, Fingerprint: key})
		return cached, nil
	}
	r.shapes[key] = s
	r.mu.Unlock()

	r.notify(Event{Type: EventShapeCreated, Shape: s.name, Fingerprint: key, Data: fmt.Sprintf("%d columns", len(fields))})
	return s, nil
}

// Len returns the number of distinct shapes registered so far
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shapes)
}

func (r *Registry) notify(event Event) {
	r.mu.RLock()
	obs := r.observers
	r.mu.RUnlock()
	for _, o := range obs {
		o.OnEvent(event)
	}
}
