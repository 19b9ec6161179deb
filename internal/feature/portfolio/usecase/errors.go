// Package usecase implements the business logic for the portfolio feature.
package usecase

import "errors"

var (
	// ErrHoldingNotFound is returned when a holding does not exist or does not
	// belong to the calling user. The two cases are indistinguishable to the
	// caller on purpose.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidPrice is returned when a buy price is negative.
	ErrInvalidPrice = errors.New("buy price must not be negative")
)
