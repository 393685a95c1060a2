package shortener

import "context"

// Repository is the durable store for mappings. It is the sole arbiter of
// code uniqueness: Insert must fail with ErrCodeTaken when the code is
// already assigned, atomically with the write itself.
type Repository interface {
	// Insert persists a new mapping. Returns ErrCodeTaken if the code
	// already exists; any other error is a storage failure.
	Insert(ctx context.Context, m *Mapping) error

	// GetByCode returns the mapping for a code, or ErrNotFound.
	GetByCode(ctx context.Context, code Code) (*Mapping, error)
}
