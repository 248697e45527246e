package canonical

// Registry is an append-only name→id map. Ids are assigned 1-based in
// first-seen order and are positional: a full reload rebuilds the registry
// from scratch, so ids are not stable identifiers across reloads.
type Registry struct {
	ids   map[string]int
	names []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]int)}
}

// Intern returns the id for name, assigning the next id on first sight.
func (r *Registry) Intern(name string) int {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := len(r.names) + 1
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

// Lookup returns the id for name, or 0 when unseen.
func (r *Registry) Lookup(name string) int {
	return r.ids[name]
}

// Name returns the name for a 1-based id, or "" when out of range.
func (r *Registry) Name(id int) string {
	if id < 1 || id > len(r.names) {
		return ""
	}
	return r.names[id-1]
}

// Len returns the number of interned names.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the interned names in id order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
