package domain

import "errors"

var (
	// ErrNilCatalog indicates the label service was wired without a string catalog.
	ErrNilCatalog = errors.New("string catalog is required")
	// ErrUnknownLabelKey indicates a key outside the catalog's closed key set.
	ErrUnknownLabelKey = errors.New("unknown label key")
	// ErrOverrideNotFound indicates that a requested label override was not found.
	ErrOverrideNotFound = errors.New("label override not found")
)
