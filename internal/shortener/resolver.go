package shortener

import "context"

// Resolver is the read path: code in, mapping out. No retries, no side
// effects.
type Resolver struct {
	store Repository
}

// NewResolver creates a Resolver on top of the given store.
func NewResolver(store Repository) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the mapping for a code. Codes that are empty or contain
// characters outside Alphabet are rejected as ErrNotFound without touching
// the store, since they cannot match any mapping.
func (r *Resolver) Resolve(ctx context.Context, code Code) (*Mapping, error) {
	if !code.Valid() {
		return nil, ErrNotFound
	}

	return r.store.GetByCode(ctx, code)
}
