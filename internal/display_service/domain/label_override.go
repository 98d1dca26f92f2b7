package domain

import (
	"time"

	"github.com/google/uuid"
)

// LabelOverride replaces one catalog string for one locale at runtime.
// Overrides sit on top of shipped locale bundles and the built-in defaults.
type LabelOverride struct {
	ID        uuid.UUID `json:"id"`
	Locale    string    `json:"locale"`
	LabelKey  LabelKey  `json:"label_key"`
	LabelText string    `json:"label_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLabelOverride creates a new LabelOverride instance.
// ID is typically generated before calling this.
func NewLabelOverride(id uuid.UUID, locale string, key LabelKey, text string) *LabelOverride {
	now := time.Now().UTC()
	return &LabelOverride{
		ID:        id,
		Locale:    locale,
		LabelKey:  key,
		LabelText: text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
