package domain

import "context"

// LabelOverrideRepository defines the interface for persisting label
// overrides. The catalog serves the applied state; the repository only has
// to survive restarts, so ListAll feeds the startup replay.
type LabelOverrideRepository interface {
	Upsert(ctx context.Context, o *LabelOverride) error
	Delete(ctx context.Context, locale string, key LabelKey) error
	ListAll(ctx context.Context) ([]*LabelOverride, error)
}
