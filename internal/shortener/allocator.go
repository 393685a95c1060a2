package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds the allocation retry loop.
const DefaultMaxAttempts = 5

// Allocator turns a target URL into exactly one newly persisted, globally
// unique mapping, or an explicit failure. Each call is independent; the
// Allocator keeps no state between calls.
type Allocator struct {
	store       Repository
	generate    Generator
	maxAttempts int
	logger      *zap.Logger
}

// NewAllocator creates an Allocator. maxAttempts values below 1 fall back
// to DefaultMaxAttempts.
func NewAllocator(store Repository, generate Generator, maxAttempts int, logger *zap.Logger) *Allocator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Allocator{
		store:       store,
		generate:    generate,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Allocate generates a candidate code and inserts the mapping, retrying on
// code collisions up to the attempt bound. Storage failures are propagated
// immediately and never retried here. Returns ErrEmptyURL for an empty URL
// and ErrNoFreeCode once the bound is exceeded.
func (a *Allocator) Allocate(ctx context.Context, targetURL string) (*Mapping, error) {
	if targetURL == "" {
		return nil, ErrEmptyURL
	}

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		m := &Mapping{
			Code:      a.generate(targetURL, attempt),
			TargetURL: targetURL,
			CreatedAt: time.Now().UTC(),
		}

		err := a.store.Insert(ctx, m)
		if err == nil {
			if attempt > 1 {
				a.logger.Debug("allocated code after collisions",
					zap.String("code", string(m.Code)),
					zap.Int("attempts", attempt),
				)
			}

			return m, nil
		}

		if errors.Is(err, ErrCodeTaken) {
			a.logger.Debug("short code collision",
				zap.String("code", string(m.Code)),
				zap.Int("attempt", attempt),
			)

			continue
		}

		return nil, fmt.Errorf("inserting mapping: %w", err)
	}

	a.logger.Warn("allocation attempts exhausted",
		zap.Int("maxAttempts", a.maxAttempts),
	)

	return nil, ErrNoFreeCode
}
