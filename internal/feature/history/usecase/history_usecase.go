// Package usecase implements the business logic for the history feature.
package usecase

import (
	"context"

	"portfolio_backend/internal/feature/history/domain/entity"
)

// RecordRepository abstracts read access to the trade ledger. Writes happen
// only inside portfolio and watchlist transactions; there is no write API.
type RecordRepository interface {
	// ListByUser returns the user's records, newest transaction first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Record, error)
}

// historyUsecase exposes the ledger to the transport layer.
type historyUsecase struct {
	records RecordRepository
}

// NewHistoryUsecase creates a new historyUsecase instance.
func NewHistoryUsecase(records RecordRepository) *historyUsecase {
	return &historyUsecase{records: records}
}

// List returns the user's trade history, newest first.
func (u *historyUsecase) List(ctx context.Context, userID uint) ([]entity.Record, error) {
	return u.records.ListByUser(ctx, userID)
}
