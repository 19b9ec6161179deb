// Package usecase implements the business logic for the market feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrExchangeRequired is returned when a symbol listing is requested
	// without an exchange code.
	ErrExchangeRequired = errors.New("exchange query parameter is required")

	// ErrSymbolRequired is returned when a quote is requested without a symbol.
	ErrSymbolRequired = errors.New("stock symbol is required")

	// ErrUnknownRegion is returned for a top-100 region outside us/nifty/sensex.
	ErrUnknownRegion = errors.New("unknown top-100 region")
)

// UpstreamError reports a non-2xx reply from the market-data provider.
// The HTTP layer forwards StatusCode to the caller instead of masking it.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("market data provider returned status %d", e.StatusCode)
}
