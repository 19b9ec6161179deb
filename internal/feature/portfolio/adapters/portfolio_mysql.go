// Package adapters はportfolioフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	historyentity "portfolio_backend/internal/feature/history/domain/entity"
	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
)

// portfolioMySQL はHoldingRepositoryインターフェースのMySQL実装です。
// 売買は保有行と履歴行をまたぐため、GORMのトランザクションで原子性を保証します。
type portfolioMySQL struct {
	db *gorm.DB
}

// portfolioMySQLがHoldingRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.HoldingRepository = (*portfolioMySQL)(nil)

// NewPortfolioMySQL は指定されたgorm.DB接続でportfolioMySQLの新しいインスタンスを生成します。
func NewPortfolioMySQL(db *gorm.DB) *portfolioMySQL {
	return &portfolioMySQL{db: db}
}

// ListByUser は指定ユーザーの全保有銘柄を返します。
func (r *portfolioMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Holding, error) {
	var holdings []entity.Holding
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// Buy は保有行の作成とBUY履歴の追記を単一トランザクションで行います。
func (r *portfolioMySQL) Buy(ctx context.Context, h *entity.Holding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		rec := historyentity.Record{
			UserID:          h.UserID,
			StockSymbol:     h.StockSymbol,
			Quantity:        h.Quantity,
			Price:           h.BuyPrice,
			TransactionType: historyentity.TransactionBuy,
			TransactionDate: time.Now(),
		}
		return tx.Create(&rec).Error
	})
}

// Update は保有者本人の行に限り数量と取得単価を更新します。
// 影響行が0件の場合、usecase.ErrHoldingNotFoundを返します。
func (r *portfolioMySQL) Update(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Where("id = ? AND user_id = ?", holdingID, userID).
		Updates(map[string]any{"quantity": quantity, "buy_price": buyPrice})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrHoldingNotFound
	}
	return nil
}

// Sell は(id, user_id)で保有行を特定し、SELL履歴の追記と行の削除を
// 単一トランザクションで行います。コミットかロールバックのみで、
// 履歴のない削除や重複履歴は発生しません。
func (r *portfolioMySQL) Sell(ctx context.Context, userID, holdingID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h entity.Holding
		if err := tx.Where("id = ? AND user_id = ?", holdingID, userID).First(&h).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrHoldingNotFound
			}
			return err
		}

		rec := historyentity.Record{
			UserID:          userID,
			StockSymbol:     h.StockSymbol,
			Quantity:        h.Quantity,
			Price:           h.BuyPrice,
			TransactionType: historyentity.TransactionSell,
			TransactionDate: time.Now(),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		// 並行する売却がFirstの後に同じ行を消している可能性があるため、
		// 削除が0件ならトランザクションごと巻き戻します。
		res := tx.Delete(&entity.Holding{}, h.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrHoldingNotFound
		}
		return nil
	})
}
