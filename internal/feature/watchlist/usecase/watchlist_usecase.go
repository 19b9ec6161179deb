package usecase

import (
	"context"
	"strings"

	"portfolio_backend/internal/feature/watchlist/domain/entity"
)

// EntryRepository abstracts the watchlist store.
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type EntryRepository interface {
	// ListByUser returns every entry the user tracks.
	ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error)

	// Create persists a new entry. A duplicate (user, symbol) pair yields
	// ErrSymbolAlreadyWatched.
	Create(ctx context.Context, e *entity.Entry) error

	// Delete removes the user's entry. Missing or foreign rows yield
	// ErrEntryNotFound.
	Delete(ctx context.Context, userID, entryID uint) error

	// MoveToPortfolio converts the entry into a one-share portfolio holding
	// with a zero buy price and removes it from the watchlist, atomically.
	MoveToPortfolio(ctx context.Context, userID, entryID uint) error
}

// watchlistUsecase implements tracked-symbol operations.
type watchlistUsecase struct {
	entries EntryRepository
}

// NewWatchlistUsecase creates a new watchlistUsecase instance.
func NewWatchlistUsecase(entries EntryRepository) *watchlistUsecase {
	return &watchlistUsecase{entries: entries}
}

// List returns every symbol the user tracks.
func (u *watchlistUsecase) List(ctx context.Context, userID uint) ([]entity.Entry, error) {
	return u.entries.ListByUser(ctx, userID)
}

// Add starts tracking a symbol. The symbol is uppercased before storage and
// each user may track a symbol at most once.
func (u *watchlistUsecase) Add(ctx context.Context, userID uint, symbol string) (*entity.Entry, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}

	e := &entity.Entry{UserID: userID, StockSymbol: symbol}
	if err := u.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Remove stops tracking an entry. Removing the same entry twice fails with
// ErrEntryNotFound on the second call; the store is left unchanged.
func (u *watchlistUsecase) Remove(ctx context.Context, userID, entryID uint) error {
	return u.entries.Delete(ctx, userID, entryID)
}

// MoveToPortfolio turns a tracked symbol into a holding in one atomic step.
// The client previously issued an add followed by a remove, which could leave
// a duplicate on partial failure; doing both server-side closes that race.
func (u *watchlistUsecase) MoveToPortfolio(ctx context.Context, userID, entryID uint) error {
	return u.entries.MoveToPortfolio(ctx, userID, entryID)
}
