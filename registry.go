package jpick

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// EmitFunc serializes projected documents to w. The KeySpec supplies column
// ordering for tabular formats; emitters that derive structure from the
// documents alone may ignore it.
type EmitFunc func(w io.Writer, keys KeySpec, records []D) error

// Format is a named output format together with the fixed filename its
// output is written to.
type Format struct {
	Name     string
	Filename string
	emit     EmitFunc
}

// Emit serializes the projected documents to w. Failures are wrapped as a
// *WriteError carrying the format name.
func (f Format) Emit(w io.Writer, keys KeySpec, records []D) error {
	if err := f.emit(w, keys, records); err != nil {
		return &WriteError{Format: f.Name, Err: err}
	}
	return nil
}

// Registry maps format names to registered output formats.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Format
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[string]Format)}
}

// Register adds a format under the given name. Registering a nil emit
// function, an empty filename, or reusing a name is an error.
func (r *Registry) Register(name, filename string, emit EmitFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("format %q already registered", name)
	}
	if emit == nil {
		return fmt.Errorf("format %q: nil emit function", name)
	}
	if filename == "" {
		return fmt.Errorf("format %q: empty output filename", name)
	}

	r.entries[name] = Format{Name: name, Filename: filename, emit: emit}
	return nil
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, error) {
	r.mu.RLock()
	f, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return Format{}, fmt.Errorf("format %q not registered", name)
	}
	return f, nil
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
