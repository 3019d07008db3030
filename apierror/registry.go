package apierror

// Builder wraps a decoded service error into a typed error.
type Builder func(base *ServiceError) error

type entry struct {
	code  string
	build Builder
}

// Registry maps service error codes to typed errors. Lookups walk the entries
// in registration order and stop at the first match, so a code always yields
// the same type. Registries are filled at package init and read-only afterwards.
type Registry struct {
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a code. Registering a code twice keeps the first builder.
func (r *Registry) Register(code string, build Builder) *Registry {
	r.entries = append(r.entries, entry{code: code, build: build})
	return r
}

// Resolve returns the typed error registered for base.Code, or base itself.
func (r *Registry) Resolve(base *ServiceError) error {
	if base == nil {
		return nil
	}
	for _, e := range r.entries {
		if e.code == base.Code {
			return e.build(base)
		}
	}
	return base
}

// Codes lists the registered codes in lookup order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		codes = append(codes, e.code)
	}
	return codes
}
