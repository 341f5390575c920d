package domain

import "errors"

var (
	// Currency errors
	ErrCurrencyNotFound = errors.New("target currency not found in commodities")

	// Report errors
	ErrInvalidCategoryLevel = errors.New("category level must be 1 or 2")

	// Sankey errors
	ErrSessionNotFound = errors.New("sankey session not found")
)
