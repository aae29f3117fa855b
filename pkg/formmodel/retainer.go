package formmodel

// Retainer keeps models alive across form rebuilds, keyed by a caller tag.
// Hosts that tear down and rebuild their element tree (a screen rotation, a
// restored session) look the model up again and rebind it instead of
// starting from an empty store.
type Retainer struct {
	models map[string]*Model
}

// NewRetainer returns an empty retainer.
func NewRetainer() *Retainer {
	return &Retainer{models: make(map[string]*Model)}
}

// Model returns the model retained under tag, creating it on first use.
func (r *Retainer) Model(tag string) *Model {
	if r.models == nil {
		r.models = make(map[string]*Model)
	}
	if m, ok := r.models[tag]; ok {
		return m
	}
	m := New()
	r.models[tag] = m
	return m
}

// Has reports whether a model is retained under tag.
func (r *Retainer) Has(tag string) bool {
	_, ok := r.models[tag]
	return ok
}

// Release drops the model retained under tag.
func (r *Retainer) Release(tag string) {
	delete(r.models, tag)
}
