package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/history/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Record{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedRecord(t *testing.T, db *gorm.DB, userID uint, symbol, txType string, date time.Time) {
	t.Helper()

	rec := &entity.Record{
		UserID:          userID,
		StockSymbol:     symbol,
		Quantity:        decimal.NewFromInt(1),
		Price:           decimal.NewFromInt(100),
		TransactionType: txType,
		TransactionDate: date,
	}
	require.NoError(t, db.Create(rec).Error, "failed to seed record")
}

func TestHistoryMySQL_ListByUser(t *testing.T) {
	t.Run("returns records ordered newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewHistoryMySQL(db)

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		seedRecord(t, db, 1, "AAPL", entity.TransactionBuy, base)
		seedRecord(t, db, 1, "MSFT", entity.TransactionSell, base.Add(48*time.Hour))
		seedRecord(t, db, 1, "TSLA", entity.TransactionBuy, base.Add(24*time.Hour))

		records, err := repo.ListByUser(context.Background(), 1)

		require.NoError(t, err, "failed to list records")
		require.Len(t, records, 3, "unexpected number of records")
		assert.Equal(t, "MSFT", records[0].StockSymbol, "newest record must come first")
		assert.Equal(t, "TSLA", records[1].StockSymbol, "unexpected middle record")
		assert.Equal(t, "AAPL", records[2].StockSymbol, "oldest record must come last")
	})

	t.Run("returns only the user's records", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewHistoryMySQL(db)

		now := time.Now()
		seedRecord(t, db, 1, "AAPL", entity.TransactionBuy, now)
		seedRecord(t, db, 2, "MSFT", entity.TransactionSell, now)

		records, err := repo.ListByUser(context.Background(), 1)

		require.NoError(t, err, "failed to list records")
		require.Len(t, records, 1, "unexpected number of records")
		assert.Equal(t, uint(1), records[0].UserID, "record belongs to another user")
	})

	t.Run("empty ledger returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewHistoryMySQL(db)

		records, err := repo.ListByUser(context.Background(), 1)

		require.NoError(t, err, "failed to list records")
		assert.Empty(t, records, "expected no records")
	})
}
