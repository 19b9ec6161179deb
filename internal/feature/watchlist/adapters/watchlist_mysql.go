// Package adapters provides repository implementations for the watchlist feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	historyentity "portfolio_backend/internal/feature/history/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/watchlist/domain/entity"
	"portfolio_backend/internal/feature/watchlist/usecase"
)

// watchlistMySQL はEntryRepositoryインターフェースのMySQL実装です。
type watchlistMySQL struct {
	db *gorm.DB
}

// watchlistMySQLがEntryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EntryRepository = (*watchlistMySQL)(nil)

// NewWatchlistMySQL は指定されたgorm.DB接続でwatchlistMySQLの新しいインスタンスを生成します。
func NewWatchlistMySQL(db *gorm.DB) *watchlistMySQL {
	return &watchlistMySQL{db: db}
}

// isDuplicateKey はユニークキー重複エラーかどうかを判定します。
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// ListByUser は指定ユーザーの全エントリを返します。
func (r *watchlistMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error) {
	var entries []entity.Entry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Create はエントリを追加します。(user_id, stock_symbol)が重複する場合、
// usecase.ErrSymbolAlreadyWatchedを返します。
func (r *watchlistMySQL) Create(ctx context.Context, e *entity.Entry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrSymbolAlreadyWatched
		}
		return err
	}
	return nil
}

// Delete は(id, user_id)でエントリを削除します。
// 行が存在しないか他ユーザーの所有である場合、usecase.ErrEntryNotFoundを返します。
func (r *watchlistMySQL) Delete(ctx context.Context, userID, entryID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&entity.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}

// MoveToPortfolio はエントリを数量1・取得単価0の保有銘柄へ変換します。
// 保有行の作成、BUY履歴の追記、エントリの削除を単一トランザクションで行うため、
// 追加だけ成功して削除が失敗するような中間状態は残りません。
func (r *watchlistMySQL) MoveToPortfolio(ctx context.Context, userID, entryID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e entity.Entry
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&e).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrEntryNotFound
			}
			return err
		}

		now := time.Now()
		h := portfolioentity.Holding{
			UserID:      userID,
			StockSymbol: e.StockSymbol,
			Quantity:    decimal.NewFromInt(1),
			BuyPrice:    decimal.Zero,
			BuyDate:     now,
		}
		if err := tx.Create(&h).Error; err != nil {
			return err
		}

		rec := historyentity.Record{
			UserID:          userID,
			StockSymbol:     e.StockSymbol,
			Quantity:        h.Quantity,
			Price:           h.BuyPrice,
			TransactionType: historyentity.TransactionBuy,
			TransactionDate: now,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		// 並行する移動や削除がFirstの後に同じ行を消している可能性があるため、
		// 削除が0件ならトランザクションごと巻き戻します。
		res := tx.Delete(&entity.Entry{}, e.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrEntryNotFound
		}
		return nil
	})
}
