package jpick

// Registration is a deferred format registration. Packages that define
// output formats expose values of this type so callers opt in explicitly
// instead of relying on import side-effects (init functions).
//
// Usage:
//
//	r, _ := jpick.NewRegistry(jpick.Formats() /* , other formats... */)
//
// This keeps dependencies explicit and avoids global mutation at import time.
type Registration func(r *Registry) error

// NewFormat wraps Registry.Register into a Registration closure so that
// dependent packages can expose named formats without performing side
// effects at import time.
func NewFormat(name, filename string, emit EmitFunc) Registration {
	return func(r *Registry) error {
		return r.Register(name, filename, emit)
	}
}

// Group groups multiple registrations into one, e.g.:
//
//	jpick.Apply(r, jpick.Group(jpick.JSONFormat, jpick.CSVFormat), custom)
func Group(regs ...Registration) Registration {
	return func(r *Registry) error { return Apply(r, regs...) }
}

// Apply applies one or more registrations to an existing registry. Stops at
// the first error and returns it.
func Apply(r *Registry, regs ...Registration) error {
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry constructs a new registry and applies the provided
// registrations.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := newRegistry()
	if err := Apply(r, regs...); err != nil {
		return nil, err
	}
	return r, nil
}
