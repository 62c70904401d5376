package db

import "errors"

// Domain-level database error sentinels.
var (
	// Mapping errors
	ErrMappingNotFound = errors.New("role mapping not found")

	// Taxonomy errors
	ErrTaxonomyEntryNotFound = errors.New("taxonomy entry not found")
)
