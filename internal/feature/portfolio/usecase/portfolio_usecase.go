// Package usecase はportfolioフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
)

// HoldingRepository は保有銘柄の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type HoldingRepository interface {
	// ListByUser は指定ユーザーの全保有銘柄を返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Holding, error)

	// Buy は保有銘柄を追加し、同一トランザクション内でBUY履歴を記録します。
	Buy(ctx context.Context, h *entity.Holding) error

	// Update は保有者本人の行に限り数量と取得単価を更新します。
	// 対象行がない場合、ErrHoldingNotFoundを返します。
	Update(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error

	// Sell は保有銘柄を売却します。SELL履歴の追記と行の削除を
	// 単一トランザクションで行い、両方成功するか両方失敗するかのいずれかです。
	Sell(ctx context.Context, userID, holdingID uint) error
}

// portfolioUsecase は保有銘柄操作のビジネスロジックを実装します。
type portfolioUsecase struct {
	holdings HoldingRepository
}

// NewPortfolioUsecase はportfolioUsecaseの新しいインスタンスを生成します。
func NewPortfolioUsecase(holdings HoldingRepository) *portfolioUsecase {
	return &portfolioUsecase{holdings: holdings}
}

// List は指定ユーザーの全保有銘柄を返します。順序は保証しません。
func (u *portfolioUsecase) List(ctx context.Context, userID uint) ([]entity.Holding, error) {
	return u.holdings.ListByUser(ctx, userID)
}

// Add は新しい保有銘柄（ロット）を追加します。
// 同じ銘柄の複数ロットを許容します。ユニーク制約はありません。
func (u *portfolioUsecase) Add(ctx context.Context, userID uint, symbol string, quantity, buyPrice decimal.Decimal, buyDate time.Time) (*entity.Holding, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidQuantity
	}
	if buyPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if buyDate.IsZero() {
		buyDate = time.Now()
	}

	h := &entity.Holding{
		UserID:      userID,
		StockSymbol: strings.ToUpper(symbol),
		Quantity:    quantity,
		BuyPrice:    buyPrice,
		BuyDate:     buyDate,
	}
	if err := u.holdings.Buy(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Update は保有者本人の行に限り数量と取得単価を更新します。
// 対象行がない場合はエラーです（サイレントな no-op にはしません）。
func (u *portfolioUsecase) Update(ctx context.Context, userID, holdingID uint, quantity, buyPrice decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}
	if buyPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return u.holdings.Update(ctx, userID, holdingID, quantity, buyPrice)
}

// Sell は保有銘柄を売却し履歴へ移します。
func (u *portfolioUsecase) Sell(ctx context.Context, userID, holdingID uint) error {
	return u.holdings.Sell(ctx, userID, holdingID)
}
