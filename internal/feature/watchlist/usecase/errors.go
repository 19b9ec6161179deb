// Package usecase implements the business logic for the watchlist feature.
package usecase

import "errors"

var (
	// ErrEntryNotFound is returned when an entry does not exist or belongs to
	// another user. Both cases surface as 404 at the HTTP layer.
	ErrEntryNotFound = errors.New("watchlist entry not found")

	// ErrSymbolAlreadyWatched is returned when a user adds a symbol that is
	// already on their watchlist.
	ErrSymbolAlreadyWatched = errors.New("symbol already on watchlist")

	// ErrSymbolRequired is returned when an add request carries no symbol.
	ErrSymbolRequired = errors.New("stock symbol is required")
)
